package models

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGranularity_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		granularity Granularity
		expected    time.Duration
	}{
		{
			name:        "day granularity",
			granularity: GranularityDay,
			expected:    24 * time.Hour,
		},
		{
			name:        "hour granularity",
			granularity: GranularityHour,
			expected:    time.Hour,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.granularity.Duration())
		})
	}
}

func TestGranularity_Duration_Invalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Granularity("week").Duration()
	}, "Duration should panic on invalid Granularity")
}

func TestGranularity_BucketKey(t *testing.T) {
	t.Parallel()

	testTime := time.Date(2025, 12, 28, 18, 3, 45, 123456789, time.UTC)

	tests := []struct {
		name        string
		granularity Granularity
		input       time.Time
		expected    string
	}{
		{
			name:        "day drops the time of day",
			granularity: GranularityDay,
			input:       testTime,
			expected:    "2025-12-28",
		},
		{
			name:        "hour keeps the hour",
			granularity: GranularityHour,
			input:       testTime,
			expected:    "2025-12-28T18",
		},
		{
			name:        "hour at midnight is zero padded",
			granularity: GranularityHour,
			input:       time.Date(2025, 1, 2, 0, 59, 0, 0, time.UTC),
			expected:    "2025-01-02T00",
		},
		{
			name:        "timestamp location is used as given",
			granularity: GranularityDay,
			input:       time.Date(2025, 12, 28, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected:    "2025-12-28",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.granularity.BucketKey(tt.input))
		})
	}
}

func TestGranularity_BucketKey_SortsChronologically(t *testing.T) {
	t.Parallel()

	times := []time.Time{
		time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 28, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
	}

	keys := make([]string, 0, len(times))
	for _, ts := range times {
		keys = append(keys, GranularityHour.BucketKey(ts))
	}
	sort.Strings(keys)

	assert.Equal(t, []string{"2024-12-31T23", "2025-02-01T23", "2025-12-28T09", "2025-12-28T10"}, keys)
}

func TestGranularity_BucketKey_InvalidGranularity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Granularity("invalid").BucketKey(time.Now())
	}, "BucketKey should panic on invalid Granularity")
}

func TestGranularity_IsDayGrained(t *testing.T) {
	t.Parallel()

	assert.True(t, GranularityDay.IsDayGrained())
	assert.False(t, GranularityHour.IsDayGrained())
}
