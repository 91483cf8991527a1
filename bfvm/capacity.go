package bfvm

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/vars"
)

// TapeCapacity is the number of cells on the memory tape. The tape never
// grows; the pointer wraps at both ends.
type TapeCapacity int

var capacityFlag = cmds.Var[int]("-tape-capacity")

func (Module) TapeCapacity(
	loader configs.Loader,
	logger logs.Logger,
) (ret TapeCapacity) {
	defer func() {
		logger.Debug("tape capacity", "cells", int(ret))
	}()

	return TapeCapacity(vars.FirstNonZero(
		*capacityFlag,
		configs.First[int](loader, "tape_capacity"),
		DefaultTapeCapacity,
	))
}
