//go:build !debug

package dbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabled_OperationsAreInert(t *testing.T) {
	req := require.New(t)
	req.False(Enabled)

	// SetSink is a no-op, so nothing below may reach the sink
	sink := &recordSink{}
	SetSink(sink)
	SetPresenter(func(short, detail, stack string) {
		t.Fatal("presenter invoked in a release build")
	})

	Write("x")
	WriteLine("x", "CAT")
	WriteIf(true, "x")
	WriteLineIf(true, "x")
	Assert(false, "S", "L")
	Assertf(false, "S", "%d", 1)
	Fail("S", "L")

	req.Empty(sink.recorded())
}
