package calories

import (
	"fmt"
	"strings"

	"github.com/fdg312/caloric-api/internal/units"
)

// BiologicalSex selects the Mifflin-St Jeor constant.
type BiologicalSex string

const (
	SexMale   BiologicalSex = "male"
	SexFemale BiologicalSex = "female"
)

// ActivityLevel keys the TDEE multiplier table.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtraActive      ActivityLevel = "extra_active"
)

// ParseBiologicalSex validates a biological sex string.
func ParseBiologicalSex(raw string) (BiologicalSex, error) {
	switch BiologicalSex(strings.ToLower(strings.TrimSpace(raw))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("biological_sex must be one of: male, female")
	}
}

// ParseActivityLevel validates an activity level string.
func ParseActivityLevel(raw string) (ActivityLevel, error) {
	switch ActivityLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtraActive:
		return ActivityLevel(strings.ToLower(strings.TrimSpace(raw))), nil
	default:
		return "", fmt.Errorf("activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extra_active")
	}
}

// Input is a validated request for the calorie engine. Weight and height are
// in the caller's unit system; the engine converts internally.
type Input struct {
	Age           int
	Weight        float64
	Height        float64
	BiologicalSex BiologicalSex
	ActivityLevel ActivityLevel
	Units         units.System
}

// Result holds the computed BMR and daily caloric needs, both in kcal/day and
// rounded to 2 decimal places.
type Result struct {
	BMR               float64 `json:"bmr"`
	DailyCaloricNeeds float64 `json:"daily_caloric_needs"`
	Recommendations   string  `json:"recommendations"`
}

// PredictRequest is the request body for POST /v1/predict.
type PredictRequest struct {
	Age           int     `json:"age"`
	BiologicalSex string  `json:"biological_sex"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	ActivityLevel string  `json:"activity_level"`
	Units         string  `json:"units"`
}

// Validate applies the range and enum checks the engine assumes have already
// been performed, and returns a typed Input on success.
func (r *PredictRequest) Validate() (Input, error) {
	if r.Age < 1 || r.Age > 150 {
		return Input{}, fmt.Errorf("age must be between 1 and 150")
	}
	if r.Weight < 1 {
		return Input{}, fmt.Errorf("weight must be at least 1")
	}
	if r.Height < 1 {
		return Input{}, fmt.Errorf("height must be at least 1")
	}

	sex, err := ParseBiologicalSex(r.BiologicalSex)
	if err != nil {
		return Input{}, err
	}

	activity, err := ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return Input{}, err
	}

	// Units default to metric (kg/cm) when omitted.
	unitsRaw := r.Units
	if strings.TrimSpace(unitsRaw) == "" {
		unitsRaw = string(units.SystemMetric)
	}
	system, err := units.ParseSystem(unitsRaw)
	if err != nil {
		return Input{}, err
	}

	return Input{
		Age:           r.Age,
		Weight:        r.Weight,
		Height:        r.Height,
		BiologicalSex: sex,
		ActivityLevel: activity,
		Units:         system,
	}, nil
}
