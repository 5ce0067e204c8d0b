package analytics

import (
	"testing"
	"time"

	"qrmenu-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketEvents_Day(t *testing.T) {
	t.Parallel()

	events := []*models.Event{
		newEvent("e1", "A", models.EventQRScan, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)),
		newEvent("e2", "A", models.EventMenuView, time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)),
		newEvent("e3", "A", models.EventProductView, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)),
		newEvent("e4", "A", models.EventContactClick, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)),
	}

	points := BucketEvents(events, models.GranularityDay, nil)
	require.Len(t, points, 2, "empty day 2025-03-11 is not zero-filled")

	assert.Equal(t, "2025-03-10", points[0].Bucket)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), points[0].BucketStart)
	assert.Equal(t, int64(2), points[0].Total)
	assert.Equal(t, int64(1), points[0].MenuViews)
	assert.Equal(t, int64(1), points[0].ProductViews)

	assert.Equal(t, "2025-03-12", points[1].Bucket)
	assert.Equal(t, int64(2), points[1].Total)
	assert.Equal(t, int64(1), points[1].QRScans)
	assert.Zero(t, points[1].MenuViews, "contact clicks only count towards the total")
}

func TestBucketEvents_Hour(t *testing.T) {
	t.Parallel()

	events := []*models.Event{
		newEvent("e1", "A", models.EventQRScan, time.Date(2025, 3, 10, 18, 59, 59, 0, time.UTC)),
		newEvent("e2", "A", models.EventQRScan, time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)),
		newEvent("e3", "A", models.EventQRScan, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)),
	}

	points := BucketEvents(events, models.GranularityHour, time.UTC)
	require.Len(t, points, 2)
	assert.Equal(t, "2025-03-10T09", points[0].Bucket)
	assert.Equal(t, "2025-03-10T18", points[1].Bucket)
	assert.Equal(t, int64(2), points[1].QRScans)
	assert.Equal(t, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), points[1].BucketStart)
}

func TestBucketEvents_ConvertsIntoReportingLocation(t *testing.T) {
	t.Parallel()

	ict := time.FixedZone("ICT", 7*60*60)
	// 20:00 UTC on the 10th is 03:00 on the 11th in ICT
	events := []*models.Event{newEvent("e1", "A", models.EventQRScan, time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC))}

	utc := BucketEvents(events, models.GranularityDay, time.UTC)
	local := BucketEvents(events, models.GranularityDay, ict)

	assert.Equal(t, "2025-03-10", utc[0].Bucket)
	assert.Equal(t, "2025-03-11", local[0].Bucket)
	assert.Equal(t, ict, local[0].BucketStart.Location())
}

func TestBucketEvents_Empty(t *testing.T) {
	t.Parallel()

	points := BucketEvents(nil, models.GranularityHour, nil)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestHourlyHistogram(t *testing.T) {
	t.Parallel()

	events := []*models.Event{
		newEvent("e1", "A", models.EventQRScan, time.Date(2025, 3, 10, 0, 15, 0, 0, time.UTC)),
		newEvent("e2", "A", models.EventQRScan, time.Date(2025, 3, 11, 0, 45, 0, 0, time.UTC)),
		newEvent("e3", "A", models.EventQRScan, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)),
		newEvent("bad", "A", models.EventQRScan, time.Time{}),
	}

	hours := HourlyHistogram(events, nil)
	require.Len(t, hours, 24)
	for h, slot := range hours {
		assert.Equal(t, h, slot.Hour)
	}
	assert.Equal(t, int64(2), hours[0].Count)
	assert.Equal(t, int64(1), hours[23].Count)

	var total int64
	for _, slot := range hours {
		total += slot.Count
	}
	assert.Equal(t, int64(3), total)
}

func TestHourlyHistogram_Empty(t *testing.T) {
	t.Parallel()

	hours := HourlyHistogram(nil, time.UTC)
	require.Len(t, hours, 24)
	for _, slot := range hours {
		assert.Zero(t, slot.Count)
	}
}
