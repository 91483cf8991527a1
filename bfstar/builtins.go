package bfstar

import (
	"bytes"
	"strings"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Builtins are the host functions exposed to scripts.
//
//	run(source, input) -> output string
//	parse(source) -> instruction count
//	log(message)
type Builtins starlark.StringDict

func (Module) Builtins(
	newVM bfvm.NewVM,
	policy bflang.Policy,
	logger logs.Logger,
) Builtins {

	// run and parse can fail, so they are written as raw builtins: the
	// error goes through the builtin's error return and becomes a script
	// error instead of a tuple element.
	run := starlark.NewBuiltin("run", func(
		_ *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var source, input string
		if err := starlark.UnpackPositionalArgs(
			b.Name(), args, kwargs, 2,
			&source, &input,
		); err != nil {
			return nil, err
		}
		program, err := bflang.Parse([]byte(source), policy)
		if err != nil {
			return nil, err
		}
		vm := newVM(program)
		vm.Input = strings.NewReader(input)
		var out bytes.Buffer
		vm.Output = &out
		if err := vm.Run(); err != nil {
			return nil, err
		}
		return starlark.String(out.String()), nil
	})

	parse := starlark.NewBuiltin("parse", func(
		_ *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var source string
		if err := starlark.UnpackPositionalArgs(
			b.Name(), args, kwargs, 1,
			&source,
		); err != nil {
			return nil, err
		}
		program, err := bflang.Parse([]byte(source), policy)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(len(program)), nil
	})

	logFunc := func(message string) {
		logger.Info(message)
	}

	return Builtins{
		"run":   run,
		"parse": parse,
		"log":   starlarkutil.MakeFunc("log", logFunc),
	}
}
