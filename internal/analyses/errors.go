package analyses

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrMalformedReference = errors.New("malformed repository reference")
)
