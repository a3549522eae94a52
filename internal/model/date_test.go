package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 4)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-04"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestTimestampIsMidnightLocal(t *testing.T) {
	ts := NewDate(2024, time.March, 15).Timestamp()

	assert.Equal(t, 0, ts.Hour())
	assert.Equal(t, 0, ts.Minute())
	y, m, day := ts.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 15, day)
}

func TestNights(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.January, 4)

	assert.Equal(t, 3, Nights(start, end))
	assert.Equal(t, 0, Nights(start, start))
}

func TestNightsAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	day := func(y int, m time.Month, d int) Date {
		return Date{time.Date(y, m, d, 0, 0, 0, 0, loc)}
	}

	// Spring forward (2024-03-10): the local night is 23 hours, but it is
	// still one calendar night.
	assert.Equal(t, 1, Nights(day(2024, time.March, 10), day(2024, time.March, 11)))
	assert.Equal(t, 7, Nights(day(2024, time.March, 8), day(2024, time.March, 15)))

	// Fall back (2024-11-03): a 25-hour local night is also one night.
	assert.Equal(t, 1, Nights(day(2024, time.November, 3), day(2024, time.November, 4)))
}

func TestDateOfTruncatesTime(t *testing.T) {
	ts := time.Date(2024, time.July, 9, 17, 45, 12, 0, time.Local)
	assert.Equal(t, "2024-07-09", DateOf(ts).Format(DateLayout))
}
