package customer

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("customer not found")
)
