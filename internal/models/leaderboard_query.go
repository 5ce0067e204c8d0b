package models

// SortField is a leaderboard column restaurants can be ranked by.
type SortField string

const (
	SortByTotalVisits    SortField = "totalVisits"
	SortByQRScans        SortField = "qrScans"
	SortByUniqueVisitors SortField = "uniqueVisitors"
	SortByProductViews   SortField = "productViews"
	SortByContactClicks  SortField = "contactClicks"
	SortByLastActivity   SortField = "lastActivity"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

type LeaderboardQuery struct {
	SortBy   SortField
	Order    SortOrder
	Page     int // 1-based
	PageSize int
}

// Normalized fills zero values with defaults: totalVisits, desc, page 1, DefaultPageSize.
func (q LeaderboardQuery) Normalized() LeaderboardQuery {
	if q.SortBy == "" {
		q.SortBy = SortByTotalVisits
	}
	if q.Order == "" {
		q.Order = SortDesc
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	return q
}

// ExportKind selects what an analytics CSV export contains.
type ExportKind string

const (
	ExportEvents      ExportKind = "events"
	ExportTimeSeries  ExportKind = "timeseries"
	ExportLeaderboard ExportKind = "leaderboard"
)

type ExportRequest struct {
	Kind        ExportKind
	Granularity Granularity      // timeseries only, day when empty
	Leaderboard LeaderboardQuery // leaderboard only; paging is ignored, every restaurant is exported
}
