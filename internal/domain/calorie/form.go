package calorie

import (
	"strconv"
	"strings"
)

// ParseForm builds an Input from raw text fields. Blank optional fields are
// absent; a blank calories_in is reported as missing. Every field is checked,
// so the returned error lists all problems at once.
func ParseForm(caloriesIn, caloriesBurned, steps string) (Input, error) {
	var (
		in   Input
		errs ValidationErrors
	)

	parse := func(field, raw string, dst **float64) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, &FieldError{Field: field, Message: msgNotNumber})
			return
		}
		*dst = &v
	}
	parse(FieldCaloriesIn, caloriesIn, &in.CaloriesIn)
	parse(FieldCaloriesBurned, caloriesBurned, &in.CaloriesBurned)
	parse(FieldSteps, steps, &in.Steps)

	if err := Validate(in); err != nil {
		ve, _ := AsValidation(err)
		errs = mergeErrors(errs, ve)
	}
	if len(errs) > 0 {
		return in, errs
	}
	return in, nil
}

// mergeErrors appends the errors of extra whose field is not already reported.
func mergeErrors(base, extra ValidationErrors) ValidationErrors {
	seen := make(map[string]bool, len(base))
	for _, fe := range base {
		seen[fe.Field] = true
	}
	for _, fe := range extra {
		if !seen[fe.Field] {
			base = append(base, fe)
		}
	}
	return base
}
