package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWorkedDuration(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       string
	}{
		{"simple", "08:00", "16:30", "08:30"},
		{"with seconds", "08:00:00", "16:45:30", "08:45"},
		{"same time", "09:15", "09:15", "00:00"},
		{"midnight rollover", "22:00", "02:00", "04:00"},
		{"rollover with minutes", "23:30", "00:15", "00:45"},
		{"full day minus one", "00:00", "23:59", "23:59"},
		{"missing start", "", "16:00", "00:00"},
		{"missing end", "08:00", "", "00:00"},
		{"both missing", "", "", "00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WorkedDuration(tc.start, tc.end))
		})
	}
}

func TestWorkedDurationMalformed(t *testing.T) {
	assert.Equal(t, "00:00", WorkedDuration("8am", "16:00"))
	assert.Equal(t, "00:00", WorkedDuration("08:00", "late"))
}

func TestDurationHoursSum(t *testing.T) {
	// Three 20-minute rows sum to exactly one hour.
	total := decimal.Zero
	for i := 0; i < 3; i++ {
		total = total.Add(DurationHours("00:20"))
	}
	assert.Equal(t, "01:00", FormatHours(total))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "00:00", FormatHours(decimal.Zero))
	assert.Equal(t, "08:30", FormatHours(decimal.RequireFromString("8.5")))
	// Minute remainder rounds; 7.999 hours is 07:59.94 → 08:00.
	assert.Equal(t, "08:00", FormatHours(decimal.RequireFromString("7.999")))
}

func TestTotalMatchesPerRowDurations(t *testing.T) {
	rows := [][2]string{
		{"08:00", "16:30"}, // 08:30
		{"22:00", "02:00"}, // 04:00
		{"09:10", "09:30"}, // 00:20
		{"", ""},           // 00:00
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(DurationHours(WorkedDuration(r[0], r[1])))
	}
	assert.Equal(t, "12:50", FormatHours(total))
}
