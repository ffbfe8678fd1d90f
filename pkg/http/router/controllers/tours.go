package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/tourx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 16 << 20

type tourAPI struct {
	tourService TourService
	log         *zap.Logger
}

func New(tourService TourService, log *zap.Logger) *tourAPI {
	return &tourAPI{
		tourService: tourService,
		log:         log,
	}
}

func (api *tourAPI) Routes(group *helper.RouteGroup) {
	group.POST("/solve", api.computeTours)
}

// computeTours. body: {"cities": [{"id": 1, "x": 0, "y": 0}, ...]}
func (api *tourAPI) computeTours(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request computeToursRequest
		err     error
	)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	solution, err := api.tourService.ComputeTours(r.Context(), request.ToCities())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeToursResponse(solution)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
