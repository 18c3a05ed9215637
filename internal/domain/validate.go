package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("account_type", func(fl validator.FieldLevel) bool {
		return AccountType(fl.Field().String()).Valid()
	})
	return v
}

// Validate verifica os campos obrigatórios do cliente
func (c Client) Validate() error {
	return validate.Struct(c)
}

// Validate verifica o formato do comentário (exatamente três pontos de performance)
func (c Commentary) Validate() error {
	return validate.Struct(c)
}
