package utils

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_ShouldPrintStopMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner("rendering", time.Millisecond, false)
	s.SetWriter(&buf)
	s.StopMsg = "done"

	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()

	// A second stop is a no-op.
	s.Stop()

	s.mu.RLock()
	out := buf.String()
	s.mu.RUnlock()

	assert.True(t, strings.HasSuffix(out, "done"))
	assert.Equal(t, 1, strings.Count(out, "done"))
}

func TestSpinner_StopRestoresCursor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the cursor is not hidden on windows")
	}
	var buf bytes.Buffer

	s := NewSpinner("rendering", time.Millisecond, true)
	s.SetWriter(&buf)

	s.Start()
	s.Stop()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\033[?25l"))
	assert.Contains(t, out, "\033[?25h")
}
