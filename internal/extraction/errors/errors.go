package errors

import "errors"

var (
	ErrorNotImplemented  = errors.New("not implemented")
	ErrorUnknownProvider = errors.New("unknown provider")
	ErrorUnknownCode     = errors.New("unknown SSR code")
)
