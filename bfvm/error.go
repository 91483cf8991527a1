package bfvm

import "errors"

var (
	ErrNoWriter             = errors.New("no output stream configured")
	ErrNoReader             = errors.New("no input stream configured")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)
