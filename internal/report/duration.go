package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// WorkedDuration converts a (start, end) time-of-day pair into elapsed
// "HH:MM". Inputs are HH:MM or HH:MM:SS strings; seconds are ignored.
// A missing bound yields "00:00". An end before the start is treated as
// crossing midnight: 22:00 → 02:00 is 04:00.
func WorkedDuration(start, end string) string {
	if start == "" || end == "" {
		return "00:00"
	}

	startMin, ok1 := clockMinutes(start)
	endMin, ok2 := clockMinutes(end)
	if !ok1 || !ok2 {
		return "00:00"
	}

	diff := endMin - startMin
	if diff < 0 {
		diff += 24 * 60
	}

	return fmt.Sprintf("%02d:%02d", diff/60, diff%60)
}

// clockMinutes parses the leading "HH:MM" of a time-of-day string into
// minutes since midnight.
func clockMinutes(s string) (int, bool) {
	if len(s) > 5 {
		s = s[:5]
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}

var sixty = decimal.NewFromInt(60)

// DurationHours converts an "HH:MM" duration into fractional hours
// (hours + minutes/60) for grand-total accumulation.
func DurationHours(d string) decimal.Decimal {
	parts := strings.Split(d, ":")
	if len(parts) != 2 {
		return decimal.Zero
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(h)).Add(decimal.NewFromInt(int64(m)).Div(sixty))
}

// FormatHours renders a fractional-hour total back to "HH:MM", rounding the
// minute remainder; 59.6 minutes rounds up into the next hour.
func FormatHours(total decimal.Decimal) string {
	hours := total.IntPart()
	minutes := total.Sub(decimal.NewFromInt(hours)).Mul(sixty).Round(0).IntPart()
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
