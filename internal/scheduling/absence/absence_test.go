package absence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSingleToken(t *testing.T) {
	entries, err := Expand(RawStrings{SL: "7.2."}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Day: 7, Month: 2, Kind: SL}, entries[0])
}

func TestExpandCommaSeparated(t *testing.T) {
	entries, err := Expand(RawStrings{Fe: "1.2., 3.2."}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestExpandRangeWithinMonth(t *testing.T) {
	entries, err := Expand(RawStrings{Fe: "10.2.-12.2."}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 10, entries[0].Day)
	assert.Equal(t, 12, entries[2].Day)
}

func TestExpandRangeWithEnDash(t *testing.T) {
	entries, err := Expand(RawStrings{Fe: "10.2.–12.2."}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestExpandRangeCrossingMonthBoundary(t *testing.T) {
	// Mirrors spec scenario E3: Fe = "28.2.-2.3." for a February run.
	entries, err := Expand(RawStrings{Fe: "28.2.-2.3."}, nil)
	require.NoError(t, err)

	var febDays, marDays []int
	for _, e := range entries {
		if e.Month == 2 {
			febDays = append(febDays, e.Day)
		} else if e.Month == 3 {
			marDays = append(marDays, e.Day)
		}
	}
	assert.Equal(t, []int{28}, febDays)
	assert.Equal(t, []int{1, 2}, marDays)
	for _, e := range entries {
		assert.True(t, e.Kind.CreditsWorkday())
	}
}

func TestMultiMonthSpanBeyondTwoMonthsRejected(t *testing.T) {
	// The span touches three months: the token is rejected (skipped with a
	// warning) and, like any malformed token, does not fail the expansion.
	var warnings []string
	entries, err := Expand(RawStrings{Fe: "28.1.-2.3."}, func(msg string) {
		warnings = append(warnings, msg)
	})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotEmpty(t, warnings)
}

func TestMalformedTokenSkippedNotFatal(t *testing.T) {
	var warnings []string
	entries, err := Expand(RawStrings{W: "not-a-date, 5.2."}, func(msg string) {
		warnings = append(warnings, msg)
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Day)
	assert.NotEmpty(t, warnings)
}

func TestOnlyFeAndSLCreditWorkday(t *testing.T) {
	assert.True(t, Fe.CreditsWorkday())
	assert.True(t, SL.CreditsWorkday())
	assert.False(t, UW.CreditsWorkday())
	assert.False(t, W.CreditsWorkday())
}

func TestCanonicalize(t *testing.T) {
	e := Entry{Day: 7, Month: 2, Kind: SL}
	assert.Equal(t, "07.02.", e.Canonicalize())
}

func TestEmptyColumnYieldsNoEntries(t *testing.T) {
	entries, err := Expand(RawStrings{}, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
