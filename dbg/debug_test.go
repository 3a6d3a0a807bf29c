//go:build debug

package dbg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// capture wires a fresh record sink into the package singleton and
// restores the default channel afterwards.
func capture(t *testing.T) *recordSink {
	t.Helper()
	sink := &recordSink{}
	SetSink(sink)
	t.Cleanup(func() { SetSink(newDebugChannel()) })
	return sink
}

func silencePresenter(t *testing.T) *[]string {
	t.Helper()
	var calls []string
	SetPresenter(func(short, detail, stack string) {
		calls = append(calls, short, detail, stack)
	})
	t.Cleanup(func() { SetPresenter(stderrPresenter) })
	return &calls
}

func TestWrite_CategoryPrefix(t *testing.T) {
	tests := []struct {
		name     string
		run      func()
		expected []string
	}{
		{
			name:     "No category means no prefix",
			run:      func() { Write("hello") },
			expected: []string{"hello"},
		},
		{
			name:     "Category is rendered before a colon",
			run:      func() { Write("hello", "CAT") },
			expected: []string{"CAT:hello"},
		},
		{
			name:     "Empty category still prefixes",
			run:      func() { Write("hello", "") },
			expected: []string{":hello"},
		},
		{
			name:     "WriteLine keeps the prefix and terminates",
			run:      func() { WriteLine("hello", "CAT") },
			expected: []string{"CAT:hello\r\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			sink := capture(t)

			tt.run()

			req.Equal(tt.expected, sink.recorded())
		})
	}
}

func TestWrite_ValueConversion(t *testing.T) {
	req := require.New(t)
	sink := capture(t)

	Write(nil)
	WriteLine(nil)
	Write(42)
	WriteLine(3.5, "NUM")

	req.Equal([]string{"", "\r\n", "42", "NUM:3.5\r\n"}, sink.recorded())
}

func TestWriteIf_FalseGateNeverTouchesTheSink(t *testing.T) {
	req := require.New(t)
	sink := capture(t)

	WriteIf(false, "x")
	WriteLineIf(false, "x", "CAT")

	req.Empty(sink.recorded())

	WriteIf(true, "x")
	WriteLineIf(true, "y")
	req.Equal([]string{"x", "y\r\n"}, sink.recorded())
}

func TestWriteLine_AlwaysEndsWithCRLF(t *testing.T) {
	req := require.New(t)
	sink := capture(t)

	WriteLine("x")

	chunks := sink.recorded()
	req.Len(chunks, 1)
	req.True(strings.HasSuffix(chunks[0], "\r\n"))
}

func TestAssert_ComposesBannerInOrder(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	presented := silencePresenter(t)

	Assert(false, "S", "L")

	output := strings.Join(sink.recorded(), "")
	iFailure := strings.Index(output, failureBanner)
	iShort := strings.Index(output, shortBanner+"\r\nS\r\n")
	iDetail := strings.Index(output, detailBanner+"\r\nL\r\n")
	req.GreaterOrEqual(iFailure, 0)
	req.Greater(iShort, iFailure)
	req.Greater(iDetail, iShort)
	// Stack text trails the banner
	req.Contains(output[iDetail:], "goroutine")
	req.True(strings.HasSuffix(output, "\r\n"))

	// Presenter got the same three strings
	req.Len(*presented, 3)
	req.Equal("S", (*presented)[0])
	req.Equal("L", (*presented)[1])
	req.Contains((*presented)[2], "goroutine")
}

func TestAssert_TrueIsSilent(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	presented := silencePresenter(t)

	Assert(true, "S", "L")
	Assertf(true, "S", "%d", 1)

	req.Empty(sink.recorded())
	req.Empty(*presented)
}

func TestAssert_MessageAndDetailAreOptional(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	silencePresenter(t)

	Assert(false)

	output := strings.Join(sink.recorded(), "")
	req.Contains(output, failureBanner)
	req.Contains(output, shortBanner+"\r\n\r\n")
	req.Contains(output, detailBanner+"\r\n\r\n")
}

func TestAssertf_FormatsDetail(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	silencePresenter(t)

	Assertf(false, "boom", "code=%d room=%s", 7, "kitchen")

	req.Contains(strings.Join(sink.recorded(), ""), "code=7 room=kitchen")
}

func TestAssertf_MalformedFormatSurfacesInBand(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	silencePresenter(t)

	// fmt reports the caller bug inside the text instead of panicking
	Assertf(false, "boom", "%d", "not-a-number")

	req.Contains(strings.Join(sink.recorded(), ""), "%!d(")
}

func TestFail_AlwaysEmits(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	presented := silencePresenter(t)

	Fail("it broke", "badly")

	output := strings.Join(sink.recorded(), "")
	req.Contains(output, shortBanner+"\r\nit broke\r\n")
	req.Contains(output, detailBanner+"\r\nbadly\r\n")
	req.Len(*presented, 3)
}

func TestAssert_StackProviderFailureKeepsBanner(t *testing.T) {
	req := require.New(t)
	sink := capture(t)
	silencePresenter(t)

	original := stackText
	stackText = func() (string, error) { return "", errors.New("no stack available") }
	t.Cleanup(func() { stackText = original })

	Assert(false, "S", "L")

	output := strings.Join(sink.recorded(), "")
	req.Contains(output, shortBanner+"\r\nS\r\n")
	req.Contains(output, detailBanner+"\r\nL\r\n")
	req.NotContains(output, "goroutine")
}

func TestEnabled_IsTrueInDebugBuilds(t *testing.T) {
	require.New(t).True(Enabled)
}
