// Package calorie computes the daily calorie balance from intake, exercise
// and step count.
package calorie

import (
	"math"
)

// StepsCaloriesFactor is the estimated energy burned per step, in calories.
const StepsCaloriesFactor = 0.04

// Field names used in validation errors. They match the JSON and form keys.
const (
	FieldCaloriesIn     = "calories_in"
	FieldCaloriesBurned = "calories_burned"
	FieldSteps          = "steps"
)

// Validation messages shown next to the offending field.
const (
	msgRequired         = "Calories consumed is required"
	msgCaloriesNegative = "Calories must be 0 or positive"
	msgStepsNegative    = "Steps must be 0 or positive"
	msgNotFinite        = "Must be a finite number"
	msgNotNumber        = "Must be a number"
)

// Input is one form submission. Nil optional fields are absent.
type Input struct {
	CaloriesIn     *float64 `json:"calories_in"`
	CaloriesBurned *float64 `json:"calories_burned,omitempty"`
	Steps          *float64 `json:"steps,omitempty"`
}

// Result is the derived balance for one Input.
type Result struct {
	TotalIn          float64 `json:"total_in"`
	StepsCalories    float64 `json:"steps_calories"`
	ExerciseCalories float64 `json:"exercise_calories"`
	TotalOut         float64 `json:"total_out"`
	NetCalories      float64 `json:"net_calories"`
	Balance          Balance `json:"balance"`
}

// Amount returns a pointer to v, for filling optional Input fields.
func Amount(v float64) *float64 {
	return &v
}

// Validate checks every field of in and reports all violations together.
func Validate(in Input) error {
	var errs ValidationErrors

	if in.CaloriesIn == nil {
		errs = append(errs, &FieldError{Field: FieldCaloriesIn, Message: msgRequired})
	} else if fe := checkAmount(FieldCaloriesIn, *in.CaloriesIn, msgCaloriesNegative); fe != nil {
		errs = append(errs, fe)
	}
	if in.CaloriesBurned != nil {
		if fe := checkAmount(FieldCaloriesBurned, *in.CaloriesBurned, msgCaloriesNegative); fe != nil {
			errs = append(errs, fe)
		}
	}
	if in.Steps != nil {
		if fe := checkAmount(FieldSteps, *in.Steps, msgStepsNegative); fe != nil {
			errs = append(errs, fe)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkAmount(field string, v float64, negativeMsg string) *FieldError {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &FieldError{Field: field, Message: msgNotFinite}
	case v < 0:
		return &FieldError{Field: field, Message: negativeMsg}
	}
	return nil
}

// Compute validates in and derives its Result. Nothing is computed when
// validation fails.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	var exercise, steps float64
	if in.CaloriesBurned != nil {
		exercise = *in.CaloriesBurned
	}
	if in.Steps != nil {
		steps = *in.Steps
	}

	stepsCalories := StepsCalories(steps)
	totalIn := *in.CaloriesIn
	totalOut := exercise + stepsCalories
	net := totalIn - totalOut

	return Result{
		TotalIn:          totalIn,
		StepsCalories:    stepsCalories,
		ExerciseCalories: exercise,
		TotalOut:         totalOut,
		NetCalories:      net,
		Balance:          Classify(net),
	}, nil
}

// StepsCalories converts a step count to calories, rounded to the nearest
// whole calorie. Halves round up.
func StepsCalories(steps float64) float64 {
	return math.Round(steps * StepsCaloriesFactor)
}
