package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-01-30")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 30, d.Day())

	_, err = Parse("30-01-2024")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestAddDaysCrossesMonth(t *testing.T) {
	d := New(2024, time.January, 31)
	assert.Equal(t, "2024-02-01", d.AddDays(1).String())

	// Leap year February.
	d = New(2024, time.February, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
}

func TestDaysUntil(t *testing.T) {
	start := New(2024, time.January, 30)
	end := New(2024, time.February, 2)
	assert.Equal(t, 3, start.DaysUntil(end))
	assert.Equal(t, 0, start.DaysUntil(start))
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.February, 2)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-02"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 5, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan([]byte("2024-12-31")))
	assert.Equal(t, "2024-12-31", d.String())

	assert.Error(t, d.Scan(42))
}
