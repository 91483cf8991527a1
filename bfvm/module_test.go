package bfvm

import (
	"bytes"
	"testing"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		newVM NewVM,
		capacity TapeCapacity,
	) {
		prog, err := bflang.Parse([]byte("++."), bflang.PolicyStrict)
		if err != nil {
			t.Fatal(err)
		}
		vm := newVM(prog)
		if len(vm.Memory) != int(capacity) {
			t.Fatalf("got %d", len(vm.Memory))
		}

		var out bytes.Buffer
		vm.Output = &out
		if err := vm.Run(); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out.Bytes(), []byte{2}) {
			t.Fatalf("got %v", out.Bytes())
		}
	})
}
