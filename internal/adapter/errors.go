package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable configuration")
	ErrInternalServerError = errors.New("internal server error")
)
