package billing

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("invoice not found")
	ErrDuplicateNumber = errors.New("invoice number already exists")
)
