package geom

import (
	"math"
	"strconv"
	"strings"
)

// FormatComponent renders a single component the way vectors print them:
// the shortest decimal that round-trips, with no trailing ".0" for whole
// numbers. Very large or very small magnitudes switch to exponent form.
func FormatComponent(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		// Covers -0 as well
		return "0"
	}

	abs := math.Abs(value)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits (1e-07), trim it back down.
	formatted := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(formatted, "e")
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}

	return mantissa + "e" + sign + digits
}

func formatComponents(values ...float64) string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, value := range values {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(FormatComponent(value))
	}
	builder.WriteByte(']')
	return builder.String()
}
