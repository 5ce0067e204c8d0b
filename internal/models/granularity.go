package models

import (
	"fmt"
	"time"
)

// Granularity is the calendar unit a time series is bucketed by.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityHour Granularity = "hour"
)

func (g Granularity) Duration() time.Duration {
	switch g {
	case GranularityDay:
		return 24 * time.Hour
	case GranularityHour:
		return time.Hour
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// BucketKey formats t as a zero-padded, date-major key so that lexicographic order
// matches chronological order. The timestamp is used in whatever location it carries.
//
//	day:  "2025-12-28"
//	hour: "2025-12-28T18"
func (g Granularity) BucketKey(t time.Time) string {
	switch g.Duration() {
	case 24 * time.Hour:
		return t.Format("2006-01-02")
	case time.Hour:
		return t.Format("2006-01-02T15")
	}
	return ""
}

// IsDayGrained reports whether exports at this granularity render dates without a time of day.
func (g Granularity) IsDayGrained() bool {
	return g == GranularityDay
}
