package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/company-site-api/internal/media"
	"github.com/company-site-api/internal/validation"
)

// Domain errors surfaced to the API layer
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
)

// InvalidInputError carries the field errors of a rejected payload.
// errors.Is(err, ErrValidation) holds for every InvalidInputError.
type InvalidInputError struct {
	Fields []validation.ValidationError
}

func (e *InvalidInputError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *InvalidInputError) Unwrap() error {
	return ErrValidation
}

func invalidInput(fields []validation.ValidationError) error {
	return &InvalidInputError{Fields: fields}
}

// uploadError turns media rejections into field errors; anything else is a storage failure.
func uploadError(field, name string, err error) error {
	var msg string
	switch {
	case errors.Is(err, media.ErrUnsupportedType):
		msg = media.ErrUnsupportedType.Error()
	case errors.Is(err, media.ErrFileTooLarge):
		msg = media.ErrFileTooLarge.Error()
	case errors.Is(err, media.ErrInvalidName):
		msg = media.ErrInvalidName.Error()
	default:
		return fmt.Errorf("failed to store %s: %w", name, err)
	}
	return invalidInput([]validation.ValidationError{{Field: field, Message: msg, Value: name}})
}
