package bflang

import "fmt"

// Policy controls what Parse does with characters outside the eight
// recognized instructions.
type Policy uint8

const (
	// PolicyPermissive skips unrecognized characters, treating them as
	// comments. This is the default the CLI uses.
	PolicyPermissive Policy = iota
	// PolicyStrict fails with ErrInvalidSymbol on any unrecognized
	// character, including interior whitespace.
	PolicyStrict
)

// loop targets must fit in the upper 24 bits of an OpCode
const maxTarget = 1<<24 - 1

// Parse converts source text into a Program. The caller is expected to
// have trimmed surrounding whitespace. Every '[' carries the index of its
// matching ']' and vice versa, so the engine dispatches loops as indexed
// jumps without rescanning.
func Parse(src []byte, policy Policy) (Program, error) {
	prog := make(Program, 0, len(src))

	type openLoop struct {
		index int
		pos   Pos
	}
	var opens []openLoop

	pos := Pos{Line: 1, Column: 1}
	for _, c := range src {
		op, ok := opForByte(c)
		if !ok {
			if policy == PolicyStrict {
				return nil, &SyntaxError{
					Err: fmt.Errorf("%w: %q", ErrInvalidSymbol, c),
					Pos: pos,
				}
			}
			advance(&pos, c)
			continue
		}

		if len(prog) > maxTarget {
			return nil, fmt.Errorf("program too long: more than %d instructions", maxTarget)
		}

		switch op {

		case OpLoopOpen:
			opens = append(opens, openLoop{
				index: len(prog),
				pos:   pos,
			})
			prog = append(prog, OpLoopOpen)

		case OpLoopClose:
			if len(opens) == 0 {
				return nil, &SyntaxError{
					Err: fmt.Errorf("%w: unmatched ']'", ErrInvalidLoop),
					Pos: pos,
				}
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			prog[open.index] = OpLoopOpen.With(len(prog))
			prog = append(prog, OpLoopClose.With(open.index))

		default:
			prog = append(prog, op)
		}

		advance(&pos, c)
	}

	if len(opens) > 0 {
		open := opens[len(opens)-1]
		return nil, &SyntaxError{
			Err: fmt.Errorf("%w: unmatched '['", ErrInvalidLoop),
			Pos: open.pos,
		}
	}

	return prog, nil
}

func opForByte(c byte) (OpCode, bool) {
	switch c {
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '+':
		return OpIncrement, true
	case '-':
		return OpDecrement, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpLoopOpen, true
	case ']':
		return OpLoopClose, true
	}
	return 0, false
}

func advance(pos *Pos, c byte) {
	if c == '\n' {
		pos.Line++
		pos.Column = 1
	} else {
		pos.Column++
	}
}
