package logs

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		if span == "" {
			t.Fatal()
		}
		if v := ctx.Value(SpanKey); v.(Span) != span {
			t.Fatal()
		}

		ctx2, span2 := newSpan(ctx, "")
		if span2 == span {
			t.Fatal()
		}
		if v := ctx2.Value(SpanKey); v.(Span) != span2 {
			t.Fatal()
		}

		err := WrapSpan(ctx2, errTest)
		if err == nil {
			t.Fatal()
		}
	})
}

var errTest = context.DeadlineExceeded
