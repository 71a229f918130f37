package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// ToAmount coerces a loosely typed amount (string from a prompt, int, float,
// json.Number) to a float64. Anything non-numeric becomes 0.
func ToAmount(v any) float64 {
	if v == nil {
		return 0
	}

	amount, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return amount
}

// FormatNaira renders an amount the way the wallet displays prices,
// e.g. 5500 -> "₦5,500".
func FormatNaira(amount float64) string {
	return "₦" + humanize.Commaf(amount)
}

// FormatClock renders remaining seconds as MM:SS for the countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
