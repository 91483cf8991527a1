package bfvm

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

type NewVM func(program bflang.Program) *VM

func (Module) NewVM(
	capacity TapeCapacity,
) NewVM {
	return func(program bflang.Program) *VM {
		return New(program, int(capacity))
	}
}
