package bfvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bf/bflang"
)

// Run interprets the program until the cursor leaves it. All errors are
// fatal to the run. End of input during ',' is an error, not a sentinel:
// the current cell keeps its value and ErrUnexpectedEndOfInput is
// returned. A non-terminating program runs forever.
func (v *VM) Run() error {
	prog := v.Program
	mem := v.Memory
	last := len(mem) - 1

	for v.Cursor >= 0 && v.Cursor < len(prog) {
		inst := prog[v.Cursor]
		v.Cursor++

		switch inst & 0xff {

		case bflang.OpMoveRight:
			if v.Pointer == last {
				v.Pointer = 0
			} else {
				v.Pointer++
			}

		case bflang.OpMoveLeft:
			if v.Pointer == 0 {
				v.Pointer = last
			} else {
				v.Pointer--
			}

		case bflang.OpIncrement:
			mem[v.Pointer]++

		case bflang.OpDecrement:
			mem[v.Pointer]--

		case bflang.OpOutput:
			if v.Output == nil {
				return ErrNoWriter
			}
			v.ioBuf[0] = mem[v.Pointer]
			if _, err := v.Output.Write(v.ioBuf[:]); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

		case bflang.OpInput:
			if v.Input == nil {
				return ErrNoReader
			}
			if _, err := io.ReadFull(v.Input, v.ioBuf[:]); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return ErrUnexpectedEndOfInput
				}
				return fmt.Errorf("read input: %w", err)
			}
			mem[v.Pointer] = v.ioBuf[0]

		case bflang.OpLoopOpen:
			if mem[v.Pointer] == 0 {
				// resume just past the matching close
				v.Cursor = inst.Arg() + 1
			}

		case bflang.OpLoopClose:
			if mem[v.Pointer] != 0 {
				// back to the matching open, which re-evaluates
				v.Cursor = inst.Arg()
			}

		default:
			return fmt.Errorf("invalid instruction at %d: %v", v.Cursor-1, inst)
		}
	}

	return nil
}
