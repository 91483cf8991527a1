// Package bfvm executes parsed brainfuck programs against a fixed-size
// byte tape with ring pointer semantics.
package bfvm

import (
	"io"

	"github.com/reusee/bf/bflang"
)

// VM owns the execution state of one program run. Input and Output are
// optional capabilities supplied by the caller; nil means not configured.
// The VM never closes them. After a failed Run the Pointer, Cursor and
// Memory fields still hold the state at the point of failure.
type VM struct {
	Program bflang.Program
	Memory  []byte
	Pointer int
	Cursor  int

	Input  io.Reader
	Output io.Writer

	ioBuf [1]byte
}

const DefaultTapeCapacity = 30000

func New(program bflang.Program, capacity int) *VM {
	if capacity <= 0 {
		capacity = DefaultTapeCapacity
	}
	return &VM{
		Program: program,
		Memory:  make([]byte, capacity),
	}
}
