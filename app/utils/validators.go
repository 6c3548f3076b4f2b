package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct validation against the shared validator instance.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
