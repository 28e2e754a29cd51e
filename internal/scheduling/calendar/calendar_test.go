package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedHolidays map[string]bool

func (f fixedHolidays) IsHoliday(t time.Time) bool {
	return f[t.Format("2006-01-02")]
}

func TestBuildFeb2025(t *testing.T) {
	cal, err := Build(2025, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 28, cal.NumDays())

	day1, ok := cal.Day(1)
	require.True(t, ok)
	// Feb 1 2025 is a Saturday.
	assert.True(t, day1.IsSat)
	assert.Equal(t, 5, day1.Weekday) // Mon=0..Sun=6, Saturday=5

	_, ok = cal.Day(29)
	assert.False(t, ok)
}

func TestWeekendUnitsPairSaturdayWithInMonthSunday(t *testing.T) {
	cal, err := Build(2025, 2, nil)
	require.NoError(t, err)

	// Feb 2025: Sat 1, Sun 2, Sat 8, Sun 9, Sat 15, Sun 16, Sat 22, Sun 23.
	require.Len(t, cal.WeekendUnits, 4)
	assert.Equal(t, []int{1, 2}, cal.WeekendUnits[0].Days)
	assert.Equal(t, []int{8, 9}, cal.WeekendUnits[1].Days)
}

func TestWeekendUnitIsolatedWhenSundayOutOfMonth(t *testing.T) {
	// May 2025 ends on Saturday the 31st; its Sunday falls in June, so the
	// last weekend unit is that Saturday on its own.
	cal, err := Build(2025, 5, nil)
	require.NoError(t, err)
	last := cal.Days[len(cal.Days)-1]
	assert.True(t, last.IsSat)
	require.NotEmpty(t, cal.WeekendUnits)
	assert.Equal(t, []int{31}, cal.WeekendUnits[len(cal.WeekendUnits)-1].Days)

	// No weekend unit may contain a Sunday whose day number isn't
	// immediately after its Saturday.
	for _, u := range cal.WeekendUnits {
		if len(u.Days) == 2 {
			assert.Equal(t, u.Days[0]+1, u.Days[1])
		}
	}
}

func TestHolidayFlagFromProvider(t *testing.T) {
	holidays := fixedHolidays{"2025-02-14": true}
	cal, err := Build(2025, 2, holidays)
	require.NoError(t, err)
	d, _ := cal.Day(14)
	assert.True(t, d.IsHoliday)
	d, _ = cal.Day(13)
	assert.False(t, d.IsHoliday)
}

func TestInvalidMonth(t *testing.T) {
	_, err := Build(2025, 13, nil)
	assert.Error(t, err)
}
