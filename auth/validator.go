package auth

import (
	"fmt"
	"forum-lab/domain"
	"forum-lab/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// A removal reason made only of spaces is as good as none.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateOperation checks the payload of an operation before anything is read.
func ValidateOperation(op domain.Operation) error {
	if op == nil {
		return errors.ErrInvalidOperation
	}
	if err := validate.Struct(op); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrInvalidOperation, op.Kind(), err)
	}
	return nil
}
