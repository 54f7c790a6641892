package handler

import (
	m "tradetalk/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	_ = validate.RegisterValidation("pair", func(fl validator.FieldLevel) bool {
		return m.IsValidPair(fl.Field().String())
	})
	_ = validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return m.IsValidMood(fl.Field().String())
	})
}

func validCheck(param any) error {
	return validate.Struct(param)
}
