package solver

import (
	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/tourx/pkg/partitioner"
	"github.com/lintang-b-s/tourx/pkg/util"
	"github.com/spf13/viper"
)

const (
	ConstructionScan    = "scan"
	ConstructionIndexed = "indexed"

	PivotMiddle          = "middle"
	PivotMiddleTruncated = "middle_truncated"
)

type Options struct {
	Construction string `validate:"required,oneof=scan indexed"`
	Pivot        string `validate:"required,oneof=middle middle_truncated"`
	Parallel     bool
}

func DefaultOptions() Options {
	return Options{
		Construction: ConstructionScan,
		Pivot:        PivotMiddle,
		Parallel:     false,
	}
}

// OptionsFromConfig reads CONSTRUCTION, PIVOT and PARALLEL from viper.
func OptionsFromConfig() Options {
	def := DefaultOptions()
	viper.SetDefault("CONSTRUCTION", def.Construction)
	viper.SetDefault("PIVOT", def.Pivot)
	viper.SetDefault("PARALLEL", def.Parallel)

	return Options{
		Construction: viper.GetString("CONSTRUCTION"),
		Pivot:        viper.GetString("PIVOT"),
		Parallel:     viper.GetBool("PARALLEL"),
	}
}

func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "invalid solver options")
	}
	return nil
}

func (o Options) pivotSelector() partitioner.PivotSelector {
	if o.Pivot == PivotMiddleTruncated {
		return partitioner.MiddleIndexTruncatedPivot
	}
	return partitioner.MiddleIndexPivot
}
