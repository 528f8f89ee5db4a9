package track

import "errors"

var ErrValidation = errors.New("validation error")
