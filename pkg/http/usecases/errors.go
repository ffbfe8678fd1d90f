package usecases

import "errors"

var ErrDuplicateCityID = errors.New("duplicate city id")
