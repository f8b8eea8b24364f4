package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Angles are reported truncated toward zero to two decimals, areas rounded
// half away from zero to two decimals.

func TruncateAngle(degrees float64) float64 {
	return positiveZero(math.Trunc(degrees*100) / 100)
}

func RoundArea(area float64) float64 {
	return positiveZero(math.Round(area*100) / 100)
}

func (b OrientedBox) Rounded() OrientedBox {
	b.Angle = TruncateAngle(b.Angle)
	b.Area = RoundArea(b.Area)
	return b
}

// The one-line result form, "{angle} {area}". Values are written as given, so
// round first.
func (b OrientedBox) Format() string {
	return fmt.Sprintf("%s %s", FormatDecimal(b.Angle), FormatDecimal(b.Area))
}

// Shortest representation that round-trips, always with a fractional part
// ("90.0", not "90").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(positiveZero(v), 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
