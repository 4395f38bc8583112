package validation

import (
	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires domain validations into gin's binding
// engine. Must run before the first request is bound.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// privateccy: ISO 4217 private-use shape, X followed by two letters.
	_ = v.RegisterValidation("privateccy", func(fl validator.FieldLevel) bool {
		return domain.IsPrivateUseCode(domain.NormalizeCode(fl.Field().String()))
	})
}
