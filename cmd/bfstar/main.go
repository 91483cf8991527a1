package main

import (
	"os"

	"github.com/reusee/bf/bfstar"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func main() {

	if len(os.Args) < 2 {
		os.Stderr.WriteString("usage: bfstar <script.star> ...\n")
		os.Exit(-1)
	}

	scope := dscope.New(
		new(bfstar.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		execFile bfstar.ExecFile,
	) {
		for _, path := range os.Args[1:] {
			if _, err := execFile(path); err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				os.Exit(-1)
			}
		}
	})

}
