package bfvm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bf/bflang"
)

func mustParse(t testing.TB, src string) bflang.Program {
	t.Helper()
	prog, err := bflang.Parse([]byte(src), bflang.PolicyStrict)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestPointerWraparound(t *testing.T) {
	vm := New(mustParse(t, "<"), 5)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if vm.Pointer != 4 {
		t.Fatalf("got %d", vm.Pointer)
	}

	vm = New(mustParse(t, "<>"), 5)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if vm.Pointer != 0 {
		t.Fatalf("got %d", vm.Pointer)
	}
}

func TestArithmeticWraparound(t *testing.T) {
	vm := New(mustParse(t, strings.Repeat("+", 256)), 5)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if vm.Memory[0] != 0 {
		t.Fatalf("got %d", vm.Memory[0])
	}

	vm = New(mustParse(t, "-"), 5)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if vm.Memory[0] != 255 {
		t.Fatalf("got %d", vm.Memory[0])
	}
}

func TestNoStreamErrors(t *testing.T) {
	vm := New(mustParse(t, "."), 5)
	if err := vm.Run(); !errors.Is(err, ErrNoWriter) {
		t.Fatalf("got %v", err)
	}

	vm = New(mustParse(t, ","), 5)
	if err := vm.Run(); !errors.Is(err, ErrNoReader) {
		t.Fatalf("got %v", err)
	}
}

func TestLoopSkippedWhenZero(t *testing.T) {
	// the body never executes, so the missing output sink is not an error
	vm := New(mustParse(t, "[.]"), 5)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if vm.Cursor != 3 {
		t.Fatalf("got %d", vm.Cursor)
	}
}

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+."

func TestHelloWorld(t *testing.T) {
	vm := New(mustParse(t, helloWorld), DefaultTapeCapacity)
	var out bytes.Buffer
	vm.Output = &out
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello World!" {
		t.Fatalf("got %q", out.String())
	}
}

func TestCat(t *testing.T) {
	vm := New(mustParse(t, ",[.,]"), 5)
	vm.Input = strings.NewReader("ab")
	var out bytes.Buffer
	vm.Output = &out
	err := vm.Run()
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("got %v", err)
	}
	if out.String() != "ab" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEndOfInputKeepsCell(t *testing.T) {
	vm := New(mustParse(t, "+++++,"), 5)
	vm.Input = strings.NewReader("")
	err := vm.Run()
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("got %v", err)
	}
	if vm.Memory[0] != 5 {
		t.Fatalf("got %d", vm.Memory[0])
	}
}

func TestStateAfterFailure(t *testing.T) {
	vm := New(mustParse(t, "++>+."), 5)
	err := vm.Run()
	if !errors.Is(err, ErrNoWriter) {
		t.Fatalf("got %v", err)
	}
	if vm.Pointer != 1 {
		t.Fatalf("got %d", vm.Pointer)
	}
	if vm.Cursor != 5 {
		t.Fatalf("got %d", vm.Cursor)
	}
	if vm.Memory[0] != 2 || vm.Memory[1] != 1 {
		t.Fatalf("got %v", vm.Memory)
	}
}

func TestSnapshotRestore(t *testing.T) {
	vm := New(mustParse(t, "++>+"), 5)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := vm.Snapshot(&buf); err != nil {
		t.Fatal(err)
	}

	restored := New(nil, 1)
	if err := restored.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if restored.Pointer != vm.Pointer {
		t.Fatal()
	}
	if restored.Cursor != vm.Cursor {
		t.Fatal()
	}
	if !bytes.Equal(restored.Memory, vm.Memory) {
		t.Fatal()
	}
	if len(restored.Program) != len(vm.Program) {
		t.Fatal()
	}
}

func TestDefaultCapacity(t *testing.T) {
	vm := New(nil, 0)
	if len(vm.Memory) != DefaultTapeCapacity {
		t.Fatalf("got %d", len(vm.Memory))
	}
}

// helloWorldCommented is the long form of the same program: the seeding
// loops and the emit sequence of helloWorld embedded in prose that a
// permissive parse skips as comments. The recognized instructions are
// identical.
const helloWorldCommented = `a twelve byte greeting printed the long way

the program runs in two phases
the first phase seeds the tape with nested counting loops
the outer loop runs eight times and each pass feeds an inner loop
that runs four times so the cells after the head of the tape end
up holding products of those counters
the inner body bumps four neighbouring cells by different amounts
which leaves the tape holding values close to the ascii codes of
the letters that the second phase wants to emit
the final corrections inside the outer loop nudge a few cells by
one unit per pass and a small scan walks the head back to cell
zero so the next pass starts from a known position

seeding phase
++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
emit phase
every dot below writes the cell under the head as one byte
between writes the head moves along the seeded region and the
signs adjust the current cell by a handful of units so that it
lands on the code of the next letter
the double dot prints the same letter twice which is why the
greeting needs fewer cells than letters
>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.
notes
the program reads nothing from its input stream so it can run
with no reader attached at all
the head never travels past the first dozen cells so any tape of
reasonable capacity will do
cell arithmetic wraps modulo two hundred and fifty six and the
head wraps at the ends of the tape although neither kind of
wraparound is actually exercised by this particular program
the instruction count is fixed and every run emits the same
twelve bytes in the same order
there is no trailing line break after the final byte
the program halts when the last write has been performed
the seeding phase accounts for nearly all of the steps taken
because the nested loops revisit their bodies many times while
the emit phase is a single straight pass over the seeded cells
a reader tracing this run by hand should expect the whole greeting to appear at once
`

func TestHelloWorldCommented(t *testing.T) {
	if len(helloWorldCommented) != 1961 {
		t.Fatalf("got %d", len(helloWorldCommented))
	}
	prog, err := bflang.Parse([]byte(helloWorldCommented), bflang.PolicyPermissive)
	if err != nil {
		t.Fatal(err)
	}
	short := mustParse(t, helloWorld)
	if len(prog) != len(short) {
		t.Fatalf("got %d instructions", len(prog))
	}
	vm := New(prog, DefaultTapeCapacity)
	var out bytes.Buffer
	vm.Output = &out
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello World!" {
		t.Fatalf("got %q", out.String())
	}
}
