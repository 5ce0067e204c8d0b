package analytics

import (
	"slices"
	"strings"
	"time"

	"qrmenu-analytics/internal/models"
)

const hoursPerDay = 24

// BucketEvents aggregates events per calendar bucket of granularity g. Timestamps are
// converted into loc (UTC when nil) before the bucket key is derived. Only buckets holding at
// least one event are returned, ascending by key.
func BucketEvents(events []*models.Event, g models.Granularity, loc *time.Location) []models.TimeSeriesPoint {
	loc = locationOrUTC(loc)

	byKey := make(map[string]*models.TimeSeriesPoint)
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			continue
		}
		t := e.OccurredAt.In(loc)
		key := g.BucketKey(t)

		point, ok := byKey[key]
		if !ok {
			point = &models.TimeSeriesPoint{Bucket: key, BucketStart: bucketStart(t, g)}
			byKey[key] = point
		}

		point.Total++
		switch e.EventType {
		case models.EventQRScan:
			point.QRScans++
		case models.EventMenuView:
			point.MenuViews++
		case models.EventProductView:
			point.ProductViews++
		}
	}

	points := make([]models.TimeSeriesPoint, 0, len(byKey))
	for _, p := range byKey {
		points = append(points, *p)
	}
	slices.SortFunc(points, func(a, b models.TimeSeriesPoint) int {
		return strings.Compare(a.Bucket, b.Bucket)
	})
	return points
}

// HourlyHistogram counts events per hour of day in loc. All 24 slots are always present.
func HourlyHistogram(events []*models.Event, loc *time.Location) []models.HourlyActivity {
	loc = locationOrUTC(loc)

	hours := make([]models.HourlyActivity, hoursPerDay)
	for h := range hours {
		hours[h].Hour = h
	}
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			continue
		}
		hours[e.OccurredAt.In(loc).Hour()].Count++
	}
	return hours
}

func bucketStart(t time.Time, g models.Granularity) time.Time {
	y, m, d := t.Date()
	if g == models.GranularityHour {
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
	}
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
