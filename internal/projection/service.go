package projection

import (
	"math"

	"github.com/fdg312/caloric-api/internal/units"
)

// Recommendation messages per total-projected-change band. The exact strings
// are part of the API contract.
const (
	recommendationSignificant = "Your projected weight loss is significant. Consider consulting a healthcare professional."
	recommendationHealthy     = "Your projected weight loss is healthy. Maintain your current plan."
	recommendationMinimal     = "Your projected weight loss is minimal. You might want to adjust your caloric intake or activity level."
)

const (
	horizonWeeks = 12
	// noiseMaxKg bounds the per-week perturbation. Applied on the metric
	// running weight even for imperial inputs.
	noiseMaxKg = 0.1
)

// Service projects a weight trajectory. Stateless apart from the injected
// random source; safe for concurrent use.
type Service struct {
	rng RandomSource
}

// NewService creates a projection service drawing noise from rng. Pass
// DefaultSource() outside of tests.
func NewService(rng RandomSource) *Service {
	return &Service{rng: rng}
}

// Project simulates a 12-week trajectory. The running weight is carried in
// metric between steps; each emitted point is converted back into the
// caller's unit system. Point 0 is the unmodified initial weight. Input is
// assumed valid; the only possible error is an unrecognized unit system.
func (s *Service) Project(in Input) (Result, error) {
	currentKg, err := units.ToMetric(in.InitialWeight, units.Weight, in.Units)
	if err != nil {
		return Result{}, err
	}
	weeklyChangeKg, err := units.ToMetric(in.WeeklyChange, units.Weight, in.Units)
	if err != nil {
		return Result{}, err
	}

	points := make([]WeightPoint, 0, horizonWeeks+1)
	points = append(points, WeightPoint{Week: 0, Weight: in.InitialWeight})

	for week := 1; week <= horizonWeeks; week++ {
		variation := (s.rng.Float64()*2 - 1) * noiseMaxKg
		currentKg -= weeklyChangeKg
		currentKg = round2(currentKg + variation)

		emitted, err := units.FromMetric(currentKg, units.Weight, in.Units)
		if err != nil {
			return Result{}, err
		}
		points = append(points, WeightPoint{Week: week, Weight: round2(emitted)})
	}

	return Result{
		InitialWeight:   in.InitialWeight,
		PredictedWeight: points,
		Recommendations: classifyTotalChange(in.WeeklyChange * horizonWeeks),
	}, nil
}

// classifyTotalChange maps the total projected change to a recommendation.
// The total is taken in the caller's raw unit, not converted to metric.
func classifyTotalChange(total float64) string {
	switch {
	case total > 10:
		return recommendationSignificant
	case total >= 5:
		return recommendationHealthy
	default:
		return recommendationMinimal
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
