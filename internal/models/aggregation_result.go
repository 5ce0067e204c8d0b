package models

import "time"

// MetricComparison holds one metric over the queried window and the preceding window of
// equal length.
type MetricComparison struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange float64 `json:"percentChange"`
}

// Summary is the KPI card set for a window.
//
// Example JSON:
//
//	{
//	  "totalVisits":    {"current": 120, "previous": 80, "percentChange": 50},
//	  "uniqueVisitors": {"current": 40, "previous": 40, "percentChange": 0},
//	  "qrScans":        {"current": 30, "previous": 0, "percentChange": 100},
//	  "menuViews": 50,
//	  "productViews": 35,
//	  "contactClicks": 5,
//	  "totalSessions": 44,
//	  "bounceRate": 25,
//	  "avgSessionDuration": 92.5
//	}
type Summary struct {
	TotalVisits        MetricComparison `json:"totalVisits"`
	UniqueVisitors     MetricComparison `json:"uniqueVisitors"`
	QRScans            MetricComparison `json:"qrScans"`
	MenuViews          int64            `json:"menuViews"`
	ProductViews       int64            `json:"productViews"`
	ContactClicks      int64            `json:"contactClicks"`
	TotalSessions      int64            `json:"totalSessions"`
	BounceRate         float64          `json:"bounceRate"`
	AvgSessionDuration float64          `json:"avgSessionDuration"`
}

// EventTypeCounts are exact-match counts of the recognised event types.
type EventTypeCounts struct {
	QRScans       int64 `json:"qrScans"`
	MenuViews     int64 `json:"menuViews"`
	ProductViews  int64 `json:"productViews"`
	ContactClicks int64 `json:"contactClicks"`
}

func (c EventTypeCounts) Sum() int64 {
	return c.QRScans + c.MenuViews + c.ProductViews + c.ContactClicks
}

// TimeSeriesPoint aggregates one non-empty calendar bucket. Bucket is the sortable key,
// BucketStart the instant the bucket begins in the reporting location.
type TimeSeriesPoint struct {
	Bucket       string    `json:"bucket"`
	BucketStart  time.Time `json:"bucketStart"`
	Total        int64     `json:"total"`
	QRScans      int64     `json:"qrScans"`
	MenuViews    int64     `json:"menuViews"`
	ProductViews int64     `json:"productViews"`
}

type RestaurantPerformance struct {
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Slug           string     `json:"slug"`
	TotalVisits    int64      `json:"totalVisits"`
	QRScans        int64      `json:"qrScans"`
	UniqueVisitors int64      `json:"uniqueVisitors"`
	ProductViews   int64      `json:"productViews"`
	ContactClicks  int64      `json:"contactClicks"`
	LastActivity   *time.Time `json:"lastActivity"`
}

type LeaderboardPage struct {
	Items    []RestaurantPerformance `json:"items"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
}

type DeviceBreakdown struct {
	Mobile  int64 `json:"mobile"`
	Desktop int64 `json:"desktop"`
	Tablet  int64 `json:"tablet"`
	Unknown int64 `json:"unknown"`
}

type HourlyActivity struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type TopProduct struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	CategoryName   string `json:"categoryName"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	Views          int64  `json:"views"`
}

// CSVExport is a rendered export and the filename suggested for the download header.
type CSVExport struct {
	Filename string
	Content  string
}
