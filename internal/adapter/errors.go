package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("vault not found on remote store")
	ErrConflict            = errors.New("remote vault conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("remote store internal error")
)
