package logs

import (
	"io"
	"os"
)

// Writer is where the diagnostic stream goes. It is separate from any
// program output sink.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
