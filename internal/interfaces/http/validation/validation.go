package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cordwain/internal/domain/specification"
)

// RegisterCustomValidators installs domain-aware binding rules on gin's
// validator engine. Safe to call more than once.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("viewkey", func(fl validator.FieldLevel) bool {
		return specification.ViewKey(fl.Field().String()).IsValid()
	})
}
