package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAmount(t *testing.T) {
	assert.Equal(t, float64(0), ToAmount(nil))
	assert.Equal(t, float64(0), ToAmount("abc"))
	assert.Equal(t, float64(42), ToAmount(42))
	assert.Equal(t, float64(42), ToAmount("42"))
	assert.Equal(t, 150.5, ToAmount("150.5"))
	assert.Equal(t, 5500.0, ToAmount(5500.0))
	assert.Equal(t, float64(0), ToAmount(map[string]any{}))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "10:00", FormatClock(600))
	assert.Equal(t, "10:10", FormatClock(610))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:00", FormatClock(-5))
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦5,500", FormatNaira(5500))
	assert.Equal(t, "₦0", FormatNaira(0))
	assert.Equal(t, "₦1,234.5", FormatNaira(1234.5))
}
