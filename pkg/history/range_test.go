package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/pkg/history"
)

func TestParseDateRangeUnbounded(t *testing.T) {
	t.Parallel()

	dateRange, err := history.ParseDateRange("", "")
	require.NoError(t, err)

	assert.False(t, dateRange.IsBounded())
	assert.True(t, dateRange.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, dateRange.Contains(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRangeHalfOpenRejected(t *testing.T) {
	t.Parallel()

	_, err := history.ParseDateRange("2024-01-01", "")
	require.ErrorIs(t, err, history.ErrHalfOpenRange)

	_, err = history.ParseDateRange("", "2024-01-31")
	require.ErrorIs(t, err, history.ErrHalfOpenRange)
}

func TestParseDateRangeMalformed(t *testing.T) {
	t.Parallel()

	_, err := history.ParseDateRange("01/02/2024", "2024-01-31")
	require.ErrorIs(t, err, history.ErrInvalidDate)

	_, err = history.ParseDateRange("2024-01-01", "soon")
	require.ErrorIs(t, err, history.ErrInvalidDate)
}

func TestParseDateRangeEndBeforeStart(t *testing.T) {
	t.Parallel()

	_, err := history.ParseDateRange("2024-02-01", "2024-01-01")
	require.ErrorIs(t, err, history.ErrInvalidDate)
}

func TestSingleDayRangeCoversWholeDay(t *testing.T) {
	t.Parallel()

	dateRange, err := history.ParseDateRange("2024-03-15", "2024-03-15")
	require.NoError(t, err)
	require.True(t, dateRange.IsBounded())

	assert.True(t, dateRange.Contains(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, dateRange.Contains(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, dateRange.Contains(time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC)))
	assert.False(t, dateRange.Contains(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestRangeBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	dateRange, err := history.ParseDateRange("2024-01-10", "2024-01-20")
	require.NoError(t, err)

	assert.True(t, dateRange.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, dateRange.Contains(time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)))
	assert.False(t, dateRange.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)))
}

func TestContainsNormalizesZone(t *testing.T) {
	t.Parallel()

	dateRange, err := history.ParseDateRange("2024-06-01", "2024-06-01")
	require.NoError(t, err)

	// 2024-06-01 02:00 +0300 is 2024-05-31 23:00 UTC, outside the range.
	zone := time.FixedZone("EEST", 3*60*60)
	assert.False(t, dateRange.Contains(time.Date(2024, 6, 1, 2, 0, 0, 0, zone)))
}
