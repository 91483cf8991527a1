package bfvm

import (
	"encoding/gob"
	"io"

	"github.com/reusee/bf/bflang"
)

// State is the gob-encodable part of a VM, used for failure dumps.
type State struct {
	Program bflang.Program
	Memory  []byte
	Pointer int
	Cursor  int
}

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	return enc.Encode(State{
		Program: v.Program,
		Memory:  v.Memory,
		Pointer: v.Pointer,
		Cursor:  v.Cursor,
	})
}

func (v *VM) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var state State
	if err := dec.Decode(&state); err != nil {
		return err
	}
	v.Program = state.Program
	v.Memory = state.Memory
	v.Pointer = state.Pointer
	v.Cursor = state.Cursor
	return nil
}
