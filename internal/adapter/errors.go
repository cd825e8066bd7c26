package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable configuration")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrInvalidResponseHash is returned when the HashSHA256 header of a
	// response does not match its body.
	ErrInvalidResponseHash = errors.New("response hash mismatch")
)
