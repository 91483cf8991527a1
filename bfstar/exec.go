package bfstar

import (
	"fmt"
	"os"

	"github.com/reusee/bf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

type ExecFile func(path string) (starlark.StringDict, error)

func (Module) ExecFile(
	builtins Builtins,
	logger logs.Logger,
) ExecFile {
	return func(path string) (starlark.StringDict, error) {
		logger.Debug("exec script", "path", path)
		thread := &starlark.Thread{
			Name: path,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(os.Stdout, msg)
			},
		}
		globals, err := starlark.ExecFileOptions(
			fileOptions,
			thread,
			path,
			nil,
			starlark.StringDict(builtins),
		)
		if err != nil {
			return nil, fmt.Errorf("exec %s: %w", path, err)
		}
		return globals, nil
	}
}
