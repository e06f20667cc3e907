package usecases

import (
	"errors"
	"fmt"
)

// ErrValidation agrupa os erros de entrada inválida dos casos de uso
var ErrValidation = errors.New("validation failed")

// ValidationError aponta o campo inválido e a mensagem mostrada ao cliente
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
