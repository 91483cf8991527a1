// Package bflang parses brainfuck source into an executable instruction
// sequence with loop jump targets resolved ahead of time.
package bflang

import "fmt"

// OpCode packs an instruction into a uint32: the operation in the low 8
// bits, the loop jump target in the upper 24.
type OpCode uint32

const (
	OpMoveRight OpCode = iota + 1
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoopOpen
	OpLoopClose
)

func (o OpCode) With(arg int) OpCode {
	return o | (OpCode(arg) << 8)
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(o >> 8)
}

func (o OpCode) String() string {
	switch o.Op() {
	case OpMoveRight:
		return ">"
	case OpMoveLeft:
		return "<"
	case OpIncrement:
		return "+"
	case OpDecrement:
		return "-"
	case OpOutput:
		return "."
	case OpInput:
		return ","
	case OpLoopOpen:
		return fmt.Sprintf("[@%d", o.Arg())
	case OpLoopClose:
		return fmt.Sprintf("]@%d", o.Arg())
	}
	return fmt.Sprintf("op(%d)", uint32(o))
}

// Program is the immutable instruction sequence produced by Parse.
type Program []OpCode
