package logbook_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nicolagi/logbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestPeriodFilename(t *testing.T) {
	jan15 := date(2024, time.January, 15)
	testCases := []struct {
		period   logbook.Period
		expected string
	}{
		{logbook.Day, filepath.Join("2024", "01", "15.todo")},
		{logbook.Week, filepath.Join("2024", "W03.todo")},
		{logbook.Month, "2024-01.todo"},
		{logbook.Quarter, "2024-Q1.todo"},
		{logbook.Year, "2024.todo"},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.period.Filename(jan15))
		})
	}
}

func TestPeriodFilenameDistinct(t *testing.T) {
	// Dates one granularity step apart must map to different files.
	testCases := []struct {
		period logbook.Period
		d1, d2 time.Time
	}{
		{logbook.Day, date(2024, time.January, 15), date(2024, time.January, 16)},
		{logbook.Week, date(2024, time.January, 15), date(2024, time.January, 22)},
		{logbook.Month, date(2024, time.January, 15), date(2024, time.February, 15)},
		{logbook.Quarter, date(2024, time.March, 31), date(2024, time.April, 1)},
		{logbook.Year, date(2024, time.December, 31), date(2025, time.January, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			assert.NotEqual(t, tc.period.Filename(tc.d1), tc.period.Filename(tc.d2))
		})
	}
}

func TestPeriodParseFilename(t *testing.T) {
	// Filename followed by ParseFilename must land in the same period.
	dates := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.December, 30), // ISO week 1 of 2025
		date(2025, time.January, 1),
		date(2024, time.June, 9),
	}
	for _, period := range []logbook.Period{logbook.Day, logbook.Week, logbook.Month, logbook.Quarter, logbook.Year} {
		for _, d := range dates {
			parsed, ok := period.ParseFilename(period.Filename(d))
			require.True(t, ok, "period %v date %v", period, d)
			assert.True(t, period.Contains(parsed, d), "period %v date %v parsed %v", period, d, parsed)
		}
	}
}

func TestPeriodParseFilenameRejectsForeign(t *testing.T) {
	_, ok := logbook.Day.ParseFilename("2024-01.todo")
	assert.False(t, ok)
	_, ok = logbook.Month.ParseFilename(filepath.ToSlash(filepath.Join("2024", "01", "15.todo")))
	assert.False(t, ok)
	_, ok = logbook.Quarter.ParseFilename("2024-Q7.todo")
	assert.False(t, ok)
}

func TestPeriodContains(t *testing.T) {
	testCases := []struct {
		period   logbook.Period
		t, now   time.Time
		expected bool
	}{
		{logbook.Day, date(2024, time.January, 15), date(2024, time.January, 15), true},
		{logbook.Day, date(2024, time.January, 15), date(2024, time.January, 16), false},
		{logbook.Week, date(2024, time.January, 15), date(2024, time.January, 21), true},
		{logbook.Week, date(2024, time.January, 15), date(2024, time.January, 22), false},
		// Dec 30 2024 and Jan 1 2025 share ISO week 1 of 2025.
		{logbook.Week, date(2024, time.December, 30), date(2025, time.January, 1), true},
		{logbook.Month, date(2024, time.January, 1), date(2024, time.January, 31), true},
		{logbook.Month, date(2024, time.January, 31), date(2024, time.February, 1), false},
		{logbook.Month, date(2024, time.January, 15), date(2025, time.January, 15), false},
		{logbook.Quarter, date(2024, time.January, 1), date(2024, time.March, 31), true},
		{logbook.Quarter, date(2024, time.March, 31), date(2024, time.April, 1), false},
		{logbook.Year, date(2024, time.January, 1), date(2024, time.December, 31), true},
		{logbook.Year, date(2024, time.December, 31), date(2025, time.January, 1), false},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.period.Contains(tc.t, tc.now))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for name, expected := range map[string]logbook.Period{
		"":        logbook.Day,
		"day":     logbook.Day,
		"Week":    logbook.Week,
		"month":   logbook.Month,
		"quarter": logbook.Quarter,
		"year":    logbook.Year,
	} {
		p, err := logbook.ParsePeriod(name)
		require.Nil(t, err)
		assert.Equal(t, expected, p)
	}
	_, err := logbook.ParsePeriod("fortnight")
	assert.True(t, errors.Is(err, logbook.ErrBadPeriod))
}
