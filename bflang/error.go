package bflang

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidLoop   = errors.New("invalid loop")
)

type Pos struct {
	Line   int
	Column int
}

type SyntaxError struct {
	Err error
	Pos Pos
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d", s.Err.Error(), s.Pos.Line, s.Pos.Column)
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}
