// Copyright 2026 Peter Edge
//
// All rights reserved.

package xtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "2026-08-25", Date{2026, 8, 25}.String())
	require.Equal(t, "2026-01-02", Date{2026, 1, 2}.String())
	// Years below 1000 are zero-padded to four digits.
	require.Equal(t, "0999-01-26", Date{999, 1, 26}.String())
}

func TestTimeToDate(t *testing.T) {
	t.Parallel()
	// The time-of-day is discarded; the date is taken in the time's location.
	date := TimeToDate(time.Date(2026, time.August, 25, 23, 59, 59, 0, time.UTC))
	require.Equal(t, Date{2026, 8, 25}, date)
}

func TestDateIn(t *testing.T) {
	t.Parallel()
	got := Date{2026, 8, 25}.In(time.UTC)
	require.True(t, got.Equal(time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2026-08-25", want: Date{2026, 8, 25}},
		{input: "2024-02-29", want: Date{2024, 2, 29}},
		{input: "0003-02-04", want: Date{3, 2, 4}},
		// The year must be four digits.
		{input: "999-01-26", wantErr: true},
		{input: "", wantErr: true},
		{input: "2026-08-25x", wantErr: true},
		{input: "2026-13-01", wantErr: true},
	} {
		got, err := ParseDate(test.input)
		if test.wantErr {
			require.Error(t, err, "input %q", test.input)
			continue
		}
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.want, got, "input %q", test.input)
	}
}

func TestDateIsValid(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		date Date
		want bool
	}{
		{date: Date{2026, 8, 25}, want: true},
		// Leap day in a leap year.
		{date: Date{2024, 2, 29}, want: true},
		// Leap day in a non-leap year.
		{date: Date{2025, 2, 29}, want: false},
		{date: Date{2026, 0, 1}, want: false},
		{date: Date{2026, 1, 0}, want: false},
		{date: Date{2026, 1, 32}, want: false},
		{date: Date{2026, 13, 1}, want: false},
	} {
		require.Equal(t, test.want, test.date.IsValid(), "date %#v", test.date)
	}
}

func TestDateIsZero(t *testing.T) {
	t.Parallel()
	require.True(t, Date{}.IsZero())
	require.False(t, Date{2026, 8, 25}.IsZero())
	require.False(t, Date{-1, 0, 0}.IsZero())
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc  string
		start Date
		end   Date
		days  int
	}{
		{
			desc:  "same day",
			start: Date{2026, 8, 25},
			end:   Date{2026, 8, 25},
			days:  0,
		},
		{
			desc:  "across a year boundary",
			start: Date{2025, 12, 31},
			end:   Date{2026, 1, 1},
			days:  1,
		},
		{
			desc:  "negative days",
			start: Date{2026, 1, 1},
			end:   Date{2025, 12, 31},
			days:  -1,
		},
		{
			desc:  "full leap year",
			start: Date{2024, 1, 1},
			end:   Date{2025, 1, 1},
			days:  366,
		},
		{
			desc:  "full non-leap year",
			start: Date{2025, 1, 1},
			end:   Date{2026, 1, 1},
			days:  365,
		},
	} {
		require.Equal(t, test.end, test.start.AddDays(test.days), test.desc)
		require.Equal(t, test.days, test.end.DaysSince(test.start), test.desc)
	}
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()
	earlier := Date{2025, 12, 31}
	later := Date{2026, 1, 1}
	require.True(t, earlier.Before(later))
	require.False(t, later.Before(earlier))
	require.False(t, earlier.Before(earlier))
	require.True(t, later.After(earlier))
	require.False(t, earlier.After(later))
	require.True(t, earlier.EqualOrBefore(earlier))
	require.True(t, earlier.EqualOrBefore(later))
	require.False(t, later.EqualOrBefore(earlier))
	require.True(t, later.EqualOrAfter(later))
	require.True(t, later.EqualOrAfter(earlier))
	require.False(t, earlier.EqualOrAfter(later))
	require.Equal(t, -1, earlier.Compare(later))
	require.Equal(t, 0, earlier.Compare(earlier))
	require.Equal(t, +1, later.Compare(earlier))
}

func TestDateJSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(Date{2026, 8, 25})
	require.NoError(t, err)
	require.Equal(t, `"2026-08-25"`, string(data))

	var date Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-25"`), &date))
	require.Empty(t, cmp.Diff(Date{2026, 8, 25}, date))

	for _, bad := range []string{
		``,
		`""`,
		`"bad"`,
		`"2026-08-25x"`,
		// A JSON number is not a valid encoding.
		`20260825`,
	} {
		require.Error(t, json.Unmarshal([]byte(bad), &date), "input %s", bad)
	}
}
