package warranty

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("warranty not found")
)
