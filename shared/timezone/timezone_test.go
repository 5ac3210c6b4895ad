package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"
	"tripdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.Location(), now.Location())
}

func TestResolve(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Resolve(""))
	assert.Equal(t, time.UTC, timezone.Resolve("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Jakarta", timezone.Resolve("Asia/Jakarta").String())
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 12, 15, 0, 0, 0, 0, timezone.Location())

	assert.Equal(t, "2024-12-15", timezone.Format(testTime, "2006-01-02"))
}

func TestParseTravelDate(t *testing.T) {
	departure, err := timezone.ParseTravelDate("2024-11-20")
	require.NoError(t, err)

	back, err := timezone.ParseTravelDate("2024-11-23")
	require.NoError(t, err)

	assert.True(t, departure.Before(back))
	assert.Equal(t, time.November, departure.Month())
	assert.Equal(t, timezone.Location(), departure.Location())

	_, err = timezone.ParseTravelDate("20/11/2024")
	assert.Error(t, err)
}
