package exceptions

import (
	"strings"

	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) bilingual.Message {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrClientCannotProcessRequest
	}

	var en, ar []string
	for _, fieldErr := range validationErrors {
		message := formatFieldError(fieldErr)
		en = append(en, message.En)
		ar = append(ar, message.Ar)
	}
	return bilingual.New(strings.Join(en, ", "), strings.Join(ar, "، "))
}

func FormatFirstValidationError(err error) bilingual.Message {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		return formatFieldError(validationErrors[0])
	}
	return constvars.ErrClientCannotProcessRequest
}

func formatFieldError(fieldErr validator.FieldError) bilingual.Message {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()

	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = bilingual.New("is invalid", "غير صالح")
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = bilingual.New(
			strings.Replace(customMessage.En, "%s", param, 1),
			strings.Replace(customMessage.Ar, "%s", param, 1),
		)
	}
	return bilingual.New(fieldName+" "+customMessage.En, fieldName+" "+customMessage.Ar)
}
