package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("progress service rejected request")
	ErrUnauthorized        = errors.New("progress service unauthorized")
	ErrForbidden           = errors.New("progress service forbidden")
	ErrNotFound            = errors.New("progress service resource not found")
	ErrConflict            = errors.New("progress service conflict")
	ErrBadGateway          = errors.New("progress service bad gateway")
	ErrInternalServerError = errors.New("progress service internal error")
	ErrUnexpectedStatus    = errors.New("progress service unexpected status")

	ErrEmptyStudentID   = errors.New("empty student id")
	ErrDecodingResponse = errors.New("error decoding progress service response")
)
