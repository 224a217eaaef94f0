package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_MinMaxClamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 3))
	assert.Equal(3, Max(2, 3))
	assert.Equal(1.5, Abs(-1.5))
	assert.Equal(255, Clamp(300, 0, 255))
	assert.Equal(0, Clamp(-4, 0, 255))
	assert.Equal(42, Clamp(42, 0, 255))
}
