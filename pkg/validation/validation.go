package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"habit-reminder/pkg/localtime"

	"github.com/go-playground/validator/v10"
)

// HabitInput is the user-supplied part of a habit.
type HabitInput struct {
	Title    string `validate:"required,max=200"`
	Hour     int    `validate:"min=0,max=23"`
	Minute   int    `validate:"min=0,max=59"`
	DaysMask int    `validate:"min=1,max=127"`
}

// UserInput is the user-supplied part of a user.
type UserInput struct {
	ExternalID string `validate:"required,max=64,printascii"`
	Timezone   string `validate:"required,max=64"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateHabit checks title (trimmed, 1..200 characters), time of day and
// weekday mask.
func ValidateHabit(title string, hour, minute, daysMask int) error {
	in := HabitInput{
		Title:    strings.TrimSpace(title),
		Hour:     hour,
		Minute:   minute,
		DaysMask: daysMask,
	}
	if err := instance().Struct(in); err != nil {
		return describe(err)
	}
	return nil
}

// ValidateUser checks the external id and that the timezone resolves.
func ValidateUser(externalID, tz string) error {
	in := UserInput{
		ExternalID: strings.TrimSpace(externalID),
		Timezone:   strings.TrimSpace(tz),
	}
	if err := instance().Struct(in); err != nil {
		return describe(err)
	}
	return ValidateTimezone(tz)
}

// ValidateTimezone checks that tz resolves to a location.
func ValidateTimezone(tz string) error {
	_, err := localtime.LoadLocation(tz)
	return err
}

// describe turns the first field error into a short message.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch field {
	case "daysmask":
		if fe.Tag() == "min" {
			return fmt.Errorf("at least one weekday must be selected")
		}
		return fmt.Errorf("days mask must be between 1 and 127")
	case "externalid":
		field = "external id"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min", "max":
		if fe.Kind() == reflect.String {
			return fmt.Errorf("%s is too long (max %s characters)", field, fe.Param())
		}
		return fmt.Errorf("%s must be between %s", field, rangeOf(field))
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}

func rangeOf(field string) string {
	switch field {
	case "hour":
		return "0 and 23"
	case "minute":
		return "0 and 59"
	default:
		return "allowed bounds"
	}
}
