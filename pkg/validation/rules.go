package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Форматы даты проверки, которые принимает API.
var InspectionDateLayouts = []string{"2006-01-02", time.RFC3339}

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("inspection_date", isInspectionDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("sort_direction", isSortDirection); err != nil {
		return err
	}
	return nil
}

// ParseInspectionDate разбирает дату в любом из InspectionDateLayouts.
func ParseInspectionDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range InspectionDateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func isInspectionDate(fl validator.FieldLevel) bool {
	_, err := ParseInspectionDate(fl.Field().String())
	return err == nil
}

func isSortDirection(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "asc", "desc":
		return true
	}
	return false
}
