package debugs

import (
	"context"
	"os"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

// Tap dumps the execution state of a failed run to the diagnostic stream
// and writes a gob snapshot to a temp file. It returns the snapshot path,
// or "" if none could be written.
type Tap func(ctx context.Context, what string, vm *bfvm.VM) string

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, vm *bfvm.VM) string {
		var nonZero int
		for _, cell := range vm.Memory {
			if cell != 0 {
				nonZero++
			}
		}
		logger.ErrorContext(ctx, "tap: "+what,
			"pointer", vm.Pointer,
			"cursor", vm.Cursor,
			"instructions", len(vm.Program),
			"cells", len(vm.Memory),
			"non_zero_cells", nonZero,
		)

		f, err := os.CreateTemp("", "bf-state-*.gob")
		if err != nil {
			logger.WarnContext(ctx, "create snapshot file", "error", err)
			return ""
		}
		defer f.Close()
		if err := vm.Snapshot(f); err != nil {
			logger.WarnContext(ctx, "write snapshot", "error", err)
			os.Remove(f.Name())
			return ""
		}
		logger.InfoContext(ctx, "state snapshot written", "path", f.Name())
		return f.Name()
	}
}
