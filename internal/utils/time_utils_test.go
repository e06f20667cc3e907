package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHourFraction(t *testing.T) {
	cases := map[string]float64{
		"00:00":    0,
		"09:00":    9,
		"09:29":    9,
		"09:30":    9.5,
		"22:45":    22.5,
		"23:59":    23.5,
		"7:05":     7,
		"06:30:00": 6.5,
	}
	for input, want := range cases {
		got, err := ToHourFraction(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, input := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:3x", "-1:00", "123:00", "12:00:61", "1:2:3:4",
		"+9:05", "09:+5", "-0:00", "9:5", "09:5", "12:00:1", "09: 5"} {
		_, _, err := ParseClock(input)
		require.Error(t, err, input)

		var malformed *MalformedTimeError
		assert.True(t, errors.As(err, &malformed), input)
		assert.Equal(t, input, malformed.Value)
		assert.ErrorIs(t, err, ErrMalformedTime)
	}
}

func TestClockMinutes(t *testing.T) {
	minutes, err := ClockMinutes("17:45")
	require.NoError(t, err)
	assert.Equal(t, 17*60+45, minutes)
	assert.Equal(t, "07:05", FormatClock(7, 5))
}

func TestDaysFrom(t *testing.T) {
	days, err := DaysFrom("2024-02-27", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, days)

	days, err = DaysFrom("2024-02-27", 0)
	require.NoError(t, err)
	assert.Empty(t, days)

	_, err = DaysFrom("27/02/2024", 3)
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	next, err := AddDays("2024-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", next)

	prev, err := AddDays("2024-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", prev)
}
