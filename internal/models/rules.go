package models

import (
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Rules for payload fields decoded into `any`. JSON numbers arrive as float64.

var isString = validation.By(func(value any) error {
	if _, ok := value.(string); !ok {
		return validation.NewError("validation_is_string", "must be a string")
	}
	return nil
})

var notBlank = validation.By(func(value any) error {
	if s, _ := value.(string); strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "must not be empty")
	}
	return nil
})

var isInteger = validation.By(func(value any) error {
	f, ok := value.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) || math.Trunc(f) != f {
		return validation.NewError("validation_is_integer", "must be an integer")
	}
	return nil
})

func yearBetween(min, max int) validation.Rule {
	msg := "must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max)
	return validation.By(func(value any) error {
		f, _ := value.(float64)
		if f < float64(min) || f > float64(max) {
			return validation.NewError("validation_year_range", msg)
		}
		return nil
	})
}
