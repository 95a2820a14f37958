//go:build !tickwheel_debug

package wheel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestItemOf_OutOfRangeDegradesToFirst(t *testing.T) {
	w := New(Config{Items: numbered(4), Value: "2"})

	assert.Equal(t, 0, w.itemOf(-1))
	assert.Equal(t, 0, w.itemOf(99))
	assert.Equal(t, 3, w.itemOf(3))
}

func TestInvariant_LogsComponentOnce(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	w := New(Config{Items: numbered(4), Logger: &log})

	w.itemOf(99)

	line := buf.String()
	assert.Contains(t, line, "rendered row 99 outside [0,4)")
	assert.Equal(t, 1, strings.Count(line, `"component":"wheel"`))
}
