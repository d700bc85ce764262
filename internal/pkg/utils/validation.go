package utils

import (
	"errors"
	"regexp"

	"clinicore-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("entity_type", validateEntityType)
	validate.RegisterValidation("day_of_week", validateDayOfWeek)
	validate.RegisterValidation("conflict_strategy", validateConflictStrategy)
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClockTime(fl validator.FieldLevel) bool {
	return IsValidClockTime(fl.Field().String())
}

func validateEntityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "organization", "complex", "clinic", "user":
		return true
	}
	return false
}

func validateDayOfWeek(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday":
		return true
	}
	return false
}

func validateConflictStrategy(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ConflictStrategyReschedule, constvars.ConflictStrategyNotify, constvars.ConflictStrategyCancel:
		return true
	}
	return false
}

var objectIDRegex = regexp.MustCompile(constvars.RegexObjectIDHex)

func validateObjectID(fl validator.FieldLevel) bool {
	return objectIDRegex.MatchString(fl.Field().String())
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	if !objectIDRegex.MatchString(param) {
		return errors.New("parameter is not a valid object id")
	}

	return nil
}
