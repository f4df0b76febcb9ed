package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"crm-commissions/internal/services/commissions/engine"
)

var registerOnce sync.Once

// RegisterValidators adds the `periode` tag (YYYY-MM) to gin's binding validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		err = v.RegisterValidation("periode", validatePeriode)
	})
	return err
}

func validatePeriode(fl validator.FieldLevel) bool {
	return engine.ValiderPeriode(fl.Field().String()) == nil
}
