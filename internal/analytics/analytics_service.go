package analytics

import (
	"context"
	"strconv"
	"time"

	"qrmenu-analytics/internal/csvexport"
	"qrmenu-analytics/internal/models"
	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/shared/metrics"
	"qrmenu-analytics/internal/shared/svcerrors"
	"qrmenu-analytics/internal/stores"

	"golang.org/x/sync/errgroup"
)

const (
	querySummary           = "summary"
	queryTimeSeries        = "timeseries"
	queryLeaderboard       = "leaderboard"
	queryDeviceBreakdown   = "devices"
	queryHourlyActivity    = "hourly"
	queryTopProducts       = "top_products"
	queryExport            = "export"
	queryExportMemberships = "export_memberships"
)

var (
	eventsExportHeader = []string{
		"id", "restaurantId", "eventType", "occurredAt", "sessionId", "visitorId",
		"deviceType", "source", "productId", "tableNo", "pagePath",
	}
	timeSeriesExportHeader  = []string{"bucket", "total", "qrScans", "menuViews", "productViews"}
	leaderboardExportHeader = []string{
		"restaurantId", "restaurantName", "slug", "totalVisits", "qrScans", "uniqueVisitors",
		"productViews", "contactClicks", "lastActivity",
	}
	membershipsExportHeader = []string{"Restaurant", "Email", "Role", "Status", "Joined"}
)

// AnalyticsService answers the analytics query shapes over a window and filters. Every call
// reads the matching events once, computes in memory and keeps nothing afterwards. Errors are
// *svcerrors.ServiceError; store failures keep the store error as cause and are not retried.
//
//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	// Summary returns KPIs for filter.Window, compared against the preceding window of equal
	// length where noted on models.Summary.
	Summary(ctx context.Context, filter models.Filter) (*models.Summary, error)
	TimeSeries(ctx context.Context, filter models.Filter, granularity models.Granularity) ([]models.TimeSeriesPoint, error)
	Leaderboard(ctx context.Context, filter models.Filter, query models.LeaderboardQuery) (*models.LeaderboardPage, error)
	DeviceBreakdown(ctx context.Context, filter models.Filter) (*models.DeviceBreakdown, error)
	HourlyActivity(ctx context.Context, filter models.Filter) ([]models.HourlyActivity, error)
	// TopProducts returns at most limit products; limit < 1 uses the configured default.
	TopProducts(ctx context.Context, filter models.Filter, limit int) ([]models.TopProduct, error)
	Export(ctx context.Context, filter models.Filter, req models.ExportRequest) (*models.CSVExport, error)
	ExportMemberships(ctx context.Context, status string) (*models.CSVExport, error)
}

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	Location           *time.Location
	LeaderboardWorkers int
	TopProductsLimit   int
	Now                func() time.Time
}

type analyticsService struct {
	eventStore   stores.EventStore
	catalogStore stores.CatalogStore

	loc     *time.Location
	workers int
	topN    int
	now     func() time.Time
}

func NewAnalyticsService(eventStore stores.EventStore, catalogStore stores.CatalogStore, opts Options) AnalyticsService {
	s := &analyticsService{
		eventStore:   eventStore,
		catalogStore: catalogStore,
		loc:          locationOrUTC(opts.Location),
		workers:      opts.LeaderboardWorkers,
		topN:         opts.TopProductsLimit,
		now:          opts.Now,
	}
	if s.workers < 1 {
		s.workers = defaultLeaderboardWorkers
	}
	if s.topN < 1 {
		s.topN = defaultTopProductsLimit
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *analyticsService) Summary(ctx context.Context, filter models.Filter) (_ *models.Summary, err error) {
	defer s.observe(ctx, querySummary, time.Now(), &err)

	var current, previous []*models.Event
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.fetchEvents(gctx, querySummary, filter)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.fetchEvents(gctx, querySummary, filter.WithWindow(filter.Window.Previous()))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sessions := ReconstructSessions(ctx, current)
	counts := CountTypes(current)

	return &models.Summary{
		TotalVisits:        CompareMetric(current, previous, TotalVisits),
		UniqueVisitors:     CompareMetric(current, previous, UniqueVisitors),
		QRScans:            Compare(float64(counts.QRScans), float64(CountByType(previous, models.EventQRScan))),
		MenuViews:          counts.MenuViews,
		ProductViews:       counts.ProductViews,
		ContactClicks:      counts.ContactClicks,
		TotalSessions:      int64(len(sessions)),
		BounceRate:         BounceRate(sessions),
		AvgSessionDuration: AvgSessionDuration(sessions),
	}, nil
}

func (s *analyticsService) TimeSeries(ctx context.Context, filter models.Filter, granularity models.Granularity) (_ []models.TimeSeriesPoint, err error) {
	defer s.observe(ctx, queryTimeSeries, time.Now(), &err)

	events, err := s.fetchEvents(ctx, queryTimeSeries, filter)
	if err != nil {
		return nil, err
	}
	return BucketEvents(events, granularityOrDay(granularity), s.loc), nil
}

func (s *analyticsService) Leaderboard(ctx context.Context, filter models.Filter, query models.LeaderboardQuery) (_ *models.LeaderboardPage, err error) {
	defer s.observe(ctx, queryLeaderboard, time.Now(), &err)

	restaurants, events, err := s.fetchRestaurantsAndEvents(ctx, queryLeaderboard, filter)
	if err != nil {
		return nil, err
	}

	page, err := BuildLeaderboard(ctx, restaurants, events, query, s.workers)
	if err != nil {
		return nil, errInternalRankingFailed(err)
	}
	return page, nil
}

func (s *analyticsService) DeviceBreakdown(ctx context.Context, filter models.Filter) (_ *models.DeviceBreakdown, err error) {
	defer s.observe(ctx, queryDeviceBreakdown, time.Now(), &err)

	events, err := s.fetchEvents(ctx, queryDeviceBreakdown, filter)
	if err != nil {
		return nil, err
	}
	breakdown := CountDevices(events)
	return &breakdown, nil
}

func (s *analyticsService) HourlyActivity(ctx context.Context, filter models.Filter) (_ []models.HourlyActivity, err error) {
	defer s.observe(ctx, queryHourlyActivity, time.Now(), &err)

	events, err := s.fetchEvents(ctx, queryHourlyActivity, filter)
	if err != nil {
		return nil, err
	}
	return HourlyHistogram(events, s.loc), nil
}

func (s *analyticsService) TopProducts(ctx context.Context, filter models.Filter, limit int) (_ []models.TopProduct, err error) {
	defer s.observe(ctx, queryTopProducts, time.Now(), &err)

	if limit < 1 {
		limit = s.topN
	}

	events, err := s.fetchEvents(ctx, queryTopProducts, filter)
	if err != nil {
		return nil, err
	}

	ranked := RankProducts(events, limit)
	if len(ranked) == 0 {
		return []models.TopProduct{}, nil
	}

	metadata, err := s.catalogStore.FetchProductMetadata(ctx, productIDs(ranked))
	if err != nil {
		return nil, errUpstreamCatalogFailed(err)
	}
	return JoinProductMetadata(ranked, metadata), nil
}

func (s *analyticsService) Export(ctx context.Context, filter models.Filter, req models.ExportRequest) (_ *models.CSVExport, err error) {
	defer s.observe(ctx, queryExport, time.Now(), &err)

	var content string
	switch req.Kind {
	case models.ExportEvents:
		events, err := s.fetchEvents(ctx, queryExport, filter)
		if err != nil {
			return nil, err
		}
		content = csvexport.Serialize(eventsExportHeader, eventRows(events))

	case models.ExportTimeSeries:
		events, err := s.fetchEvents(ctx, queryExport, filter)
		if err != nil {
			return nil, err
		}
		granularity := granularityOrDay(req.Granularity)
		points := BucketEvents(events, granularity, s.loc)
		content = csvexport.Serialize(timeSeriesExportHeader, timeSeriesRows(points, granularity.IsDayGrained()))

	case models.ExportLeaderboard:
		restaurants, events, err := s.fetchRestaurantsAndEvents(ctx, queryExport, filter)
		if err != nil {
			return nil, err
		}
		query := req.Leaderboard.Normalized()
		ranked, err := RankRestaurants(ctx, restaurants, events, query.SortBy, query.Order, s.workers)
		if err != nil {
			return nil, errInternalRankingFailed(err)
		}
		content = csvexport.Serialize(leaderboardExportHeader, leaderboardRows(ranked))

	default:
		return nil, errInvalidExportKind(string(req.Kind))
	}

	return &models.CSVExport{
		Filename: csvexport.AnalyticsFilename(s.now()),
		Content:  content,
	}, nil
}

func (s *analyticsService) ExportMemberships(ctx context.Context, status string) (_ *models.CSVExport, err error) {
	defer s.observe(ctx, queryExportMemberships, time.Now(), &err)

	if status == "" {
		status = models.MembershipStatusAll
	}

	memberships, err := s.catalogStore.FetchMemberships(ctx, status)
	if err != nil {
		return nil, errUpstreamCatalogFailed(err)
	}

	rows := make([][]string, len(memberships))
	for i, m := range memberships {
		rows[i] = []string{m.RestaurantName, m.Email, m.Role, m.Status, csvexport.FormatTime(&m.CreatedAt, true)}
	}

	return &models.CSVExport{
		Filename: csvexport.MembershipsFilename(status, s.now()),
		Content:  csvexport.Serialize(membershipsExportHeader, rows),
	}, nil
}

func (s *analyticsService) fetchEvents(ctx context.Context, query string, filter models.Filter) ([]*models.Event, error) {
	events, err := s.eventStore.FetchEvents(ctx, filter)
	if err != nil {
		return nil, errUpstreamEventStoreFailed(err)
	}
	metricQueryEvents.WithLabelValues(query).Observe(float64(len(events)))
	return events, nil
}

// fetchRestaurantsAndEvents reads the catalog and the events concurrently. A restaurant
// filter narrows the ranked restaurants to that one entry.
func (s *analyticsService) fetchRestaurantsAndEvents(ctx context.Context, query string, filter models.Filter) ([]models.RestaurantSummary, []*models.Event, error) {
	var restaurants []models.RestaurantSummary
	var events []*models.Event

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurants, err = s.catalogStore.FetchRestaurants(gctx)
		if err != nil {
			return errUpstreamCatalogFailed(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.fetchEvents(gctx, query, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if filter.RestaurantID != "" {
		restaurants = narrowRestaurants(restaurants, filter.RestaurantID)
	}
	return restaurants, events, nil
}

func (s *analyticsService) observe(ctx context.Context, query string, start time.Time, err *error) {
	elapsed := time.Since(start)
	metricQueryDurationSeconds.WithLabelValues(query).Observe(elapsed.Seconds())

	code := metrics.ValueNoError
	if *err != nil {
		code = svcerrors.CodeOf(*err)
	}
	metricQueriesTotal.WithLabelValues(query, code).Inc()

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldQuery, query).
		Dur(loggers.FieldDuration, elapsed).
		Str(loggers.FieldErrorCode, code).
		Msg("analytics query finished")
}

func granularityOrDay(g models.Granularity) models.Granularity {
	if g == "" {
		return models.GranularityDay
	}
	return g
}

func narrowRestaurants(restaurants []models.RestaurantSummary, restaurantID string) []models.RestaurantSummary {
	for _, r := range restaurants {
		if r.ID == restaurantID {
			return []models.RestaurantSummary{r}
		}
	}
	return nil
}

func eventRows(events []*models.Event) [][]string {
	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{
			e.ID,
			e.RestaurantID,
			string(e.EventType),
			csvexport.FormatTime(&e.OccurredAt, false),
			e.SessionID,
			e.VisitorID,
			string(e.DeviceType),
			e.Source,
			e.ProductID,
			e.TableNo,
			e.PagePath,
		}
	}
	return rows
}

func timeSeriesRows(points []models.TimeSeriesPoint, dayGrained bool) [][]string {
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{
			csvexport.FormatTime(&p.BucketStart, dayGrained),
			strconv.FormatInt(p.Total, 10),
			strconv.FormatInt(p.QRScans, 10),
			strconv.FormatInt(p.MenuViews, 10),
			strconv.FormatInt(p.ProductViews, 10),
		}
	}
	return rows
}

func leaderboardRows(items []models.RestaurantPerformance) [][]string {
	rows := make([][]string, len(items))
	for i, p := range items {
		rows[i] = []string{
			p.RestaurantID,
			p.RestaurantName,
			p.Slug,
			strconv.FormatInt(p.TotalVisits, 10),
			strconv.FormatInt(p.QRScans, 10),
			strconv.FormatInt(p.UniqueVisitors, 10),
			strconv.FormatInt(p.ProductViews, 10),
			strconv.FormatInt(p.ContactClicks, 10),
			csvexport.FormatTime(p.LastActivity, false),
		}
	}
	return rows
}
