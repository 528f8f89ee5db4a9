package intake

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("device entry not found")
)
