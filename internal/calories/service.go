package calories

import (
	"math"

	"github.com/fdg312/caloric-api/internal/units"
)

// Recommendation messages per daily-caloric-needs band. The exact strings are
// part of the API contract.
const (
	recommendationLow      = "Your daily caloric needs are relatively low. Ensure you're getting enough nutrients."
	recommendationBalanced = "Your daily caloric needs are within the average range. Maintain a balanced diet."
	recommendationHigh     = "Your daily caloric needs are high. Consider consulting a nutritionist for personalized advice."
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// Service computes BMR and daily caloric needs. Stateless; safe for
// concurrent use.
type Service struct{}

// NewService creates a new calorie service.
func NewService() *Service {
	return &Service{}
}

// Compute calculates BMR via the Mifflin-St Jeor equation, scales it by the
// activity multiplier, and classifies the result. Input ranges and enums are
// assumed valid; the only possible error is an unrecognized unit system.
func (s *Service) Compute(in Input) (Result, error) {
	weightKg, err := units.ToMetric(in.Weight, units.Weight, in.Units)
	if err != nil {
		return Result{}, err
	}
	heightCm, err := units.ToMetric(in.Height, units.Height, in.Units)
	if err != nil {
		return Result{}, err
	}

	// Mifflin-St Jeor: 10W + 6.25H - 5A, +5 for male, -161 for female.
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(in.Age)
	if in.BiologicalSex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		multiplier = 1.2
	}
	dailyCaloricNeeds := bmr * multiplier

	return Result{
		BMR:               round2(bmr),
		DailyCaloricNeeds: round2(dailyCaloricNeeds),
		Recommendations:   classifyNeeds(dailyCaloricNeeds),
	}, nil
}

// classifyNeeds maps daily caloric needs (kcal/day) to a recommendation.
// Bounds are inclusive: 1500 and 2500 both fall in the balanced band.
func classifyNeeds(needs float64) string {
	switch {
	case needs < 1500:
		return recommendationLow
	case needs <= 2500:
		return recommendationBalanced
	default:
		return recommendationHigh
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
