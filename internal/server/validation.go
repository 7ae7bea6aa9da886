package server

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validationsOnce sync.Once

// registerValidations adds the custom binding validations to gin's
// validator engine. Registered once; RegisterRoutes may run several
// times in tests.
func registerValidations() {
	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("worktype", validWorkType)
	})
}

// validWorkType accepts the three work arrangements job postings use.
func validWorkType(fl validator.FieldLevel) bool {
	return workTypeAllowed(fl.Field().String())
}

func workTypeAllowed(value string) bool {
	switch value {
	case "Remote", "Onsite", "Hybrid":
		return true
	}
	return false
}
