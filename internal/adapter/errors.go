package adapter

import "errors"

var (
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)
