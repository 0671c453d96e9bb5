package projection

import (
	"fmt"
	"strings"

	"github.com/fdg312/caloric-api/internal/units"
)

// Input is a validated request for the projection engine. Weights are in the
// caller's unit system; the engine converts internally.
type Input struct {
	InitialWeight float64
	WeeklyChange  float64 // signed; positive means loss
	Units         units.System
}

// WeightPoint is a single step in the projected trajectory, in the caller's
// unit system.
type WeightPoint struct {
	Week   int     `json:"week"`
	Weight float64 `json:"weight"`
}

// Result holds the projected 12-week trajectory. Points covers weeks 0..12;
// point 0 repeats the raw initial weight exactly as supplied.
type Result struct {
	InitialWeight   float64       `json:"initial_weight"`
	PredictedWeight []WeightPoint `json:"predicted_weight"`
	Recommendations string        `json:"recommendations"`
}

// PredictTimeSeriesRequest is the request body for POST /v1/predict-time-series.
type PredictTimeSeriesRequest struct {
	InitialWeight       float64 `json:"initial_weight"`
	WeightChangePerWeek float64 `json:"weight_change_per_week"`
	Units               string  `json:"units"`
}

// Validate applies range and enum checks and returns a typed Input.
func (r *PredictTimeSeriesRequest) Validate() (Input, error) {
	if r.InitialWeight < 1 {
		return Input{}, fmt.Errorf("initial_weight must be at least 1")
	}

	unitsRaw := r.Units
	if strings.TrimSpace(unitsRaw) == "" {
		unitsRaw = string(units.SystemMetric)
	}
	system, err := units.ParseSystem(unitsRaw)
	if err != nil {
		return Input{}, err
	}

	return Input{
		InitialWeight: r.InitialWeight,
		WeeklyChange:  r.WeightChangePerWeek,
		Units:         system,
	}, nil
}
