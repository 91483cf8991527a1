package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var ErrNoProgramFile = errors.New("no program file given")

var programFiles []string

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		programFiles = append(programFiles, path)
	}).Desc("execute a program file"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if len(programFiles) == 0 {
		fmt.Fprintln(os.Stderr, ErrNoProgramFile)
		cmds.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	ctx := context.Background()
	var failed bool
	scope.Call(func(
		run Run,
	) {
		for _, path := range programFiles {
			if err := run(ctx, path); err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed = true
				return
			}
		}
	})
	if failed {
		os.Exit(1)
	}
}
