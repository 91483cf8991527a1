package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/bfio"
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
)

type Run func(ctx context.Context, path string) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	policy bflang.Policy,
	newVM bfvm.NewVM,
	openStreams bfio.OpenStreams,
	inSpec bfio.InputSpec,
	outSpec bfio.OutputSpec,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, path string) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read program: %w", err)
		}
		source = bytes.TrimSpace(source)

		program, err := bflang.Parse(source, policy)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "program loaded",
			"path", path,
			"source_bytes", len(source),
			"instructions", len(program),
		)
		logger.DebugContext(ctx, "source",
			"text", string(source),
		)

		streams, err := openStreams(string(inSpec), string(outSpec))
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := streams.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		vm := newVM(program)
		vm.Input = streams.In
		echo := &bfio.BoundedBuffer{Limit: 256}
		if streams.Out != nil {
			vm.Output = io.MultiWriter(streams.Out, echo)
		}

		if err := vm.Run(); err != nil {
			tap(ctx, "run failed", vm)
			logger.DebugContext(ctx, "output before failure",
				"bytes", echo.Total(),
				"head", string(echo.Bytes()),
				"truncated", echo.Truncated(),
			)
			return err
		}

		logger.InfoContext(ctx, "program finished",
			"path", path,
			"output_bytes", echo.Total(),
		)
		logger.DebugContext(ctx, "output",
			"head", string(echo.Bytes()),
			"truncated", echo.Truncated(),
		)
		return nil
	}
}
