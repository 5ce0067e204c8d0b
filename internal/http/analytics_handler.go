package http

import (
	"net/http"
	"strings"
	"time"

	"qrmenu-analytics/internal/analytics"
	"qrmenu-analytics/internal/shared/validators"
)

// analyticsHandler serves the read side: one method per query shape plus the CSV exports.
type analyticsHandler struct {
	analyticsService analytics.AnalyticsService
	validate         *validators.Validate
	loc              *time.Location
}

// newAnalyticsHandler builds the analytics routes' handler. loc is the reporting location
// bare dates in from/to are read in.
func newAnalyticsHandler(analyticsService analytics.AnalyticsService, loc *time.Location) *analyticsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsHandler{
		analyticsService: analyticsService,
		validate:         validators.New(),
		loc:              loc,
	}
}

func (h *analyticsHandler) readFilter(r *http.Request) (*queryReader, filterParams, error) {
	q := newQueryReader(r.URL.Query(), h.loc)
	fp := q.filterParams()
	if q.err != nil {
		return nil, fp, q.err
	}
	return q, fp, nil
}

// Summary handles GET /analytics/summary.
func (h *analyticsHandler) Summary(w http.ResponseWriter, r *http.Request) error {
	_, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	if err := validateParams(h.validate, fp); err != nil {
		return err
	}

	summary, err := h.analyticsService.Summary(r.Context(), fp.filter())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, summary)
}

// TimeSeries handles GET /analytics/timeseries.
func (h *analyticsHandler) TimeSeries(w http.ResponseWriter, r *http.Request) error {
	q, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	tp := q.timeSeriesParams()
	if err := validateParams(h.validate, fp, tp); err != nil {
		return err
	}

	points, err := h.analyticsService.TimeSeries(r.Context(), fp.filter(), tp.granularity())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, points)
}

// Leaderboard handles GET /analytics/leaderboard.
func (h *analyticsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) error {
	q, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	lp := q.leaderboardParams()
	if q.err != nil {
		return q.err
	}
	if err := validateParams(h.validate, fp, lp); err != nil {
		return err
	}

	page, err := h.analyticsService.Leaderboard(r.Context(), fp.filter(), lp.query())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, page)
}

// DeviceBreakdown handles GET /analytics/devices.
func (h *analyticsHandler) DeviceBreakdown(w http.ResponseWriter, r *http.Request) error {
	_, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	if err := validateParams(h.validate, fp); err != nil {
		return err
	}

	breakdown, err := h.analyticsService.DeviceBreakdown(r.Context(), fp.filter())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, breakdown)
}

// HourlyActivity handles GET /analytics/hourly.
func (h *analyticsHandler) HourlyActivity(w http.ResponseWriter, r *http.Request) error {
	_, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	if err := validateParams(h.validate, fp); err != nil {
		return err
	}

	hours, err := h.analyticsService.HourlyActivity(r.Context(), fp.filter())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, hours)
}

// TopProducts handles GET /analytics/top-products.
func (h *analyticsHandler) TopProducts(w http.ResponseWriter, r *http.Request) error {
	q, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	tp := topProductsParams{Limit: q.integer("limit")}
	if q.err != nil {
		return q.err
	}
	if err := validateParams(h.validate, fp, tp); err != nil {
		return err
	}

	products, err := h.analyticsService.TopProducts(r.Context(), fp.filter(), tp.Limit)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, products)
}

// Export handles GET /analytics/export?kind=events|timeseries|leaderboard.
func (h *analyticsHandler) Export(w http.ResponseWriter, r *http.Request) error {
	q, fp, err := h.readFilter(r)
	if err != nil {
		return err
	}
	ep := exportParams{
		Kind:              strings.ToLower(q.str("kind")),
		timeSeriesParams:  q.timeSeriesParams(),
		leaderboardParams: q.leaderboardParams(),
	}
	if q.err != nil {
		return q.err
	}
	if err := validateParams(h.validate, fp, ep); err != nil {
		return err
	}

	export, err := h.analyticsService.Export(r.Context(), fp.filter(), ep.request())
	if err != nil {
		return err
	}
	return writeCSV(w, r, export)
}

// ExportMemberships handles GET /memberships/export?status=<status>|all.
func (h *analyticsHandler) ExportMemberships(w http.ResponseWriter, r *http.Request) error {
	q := newQueryReader(r.URL.Query(), h.loc)
	mp := membershipsParams{Status: strings.ToLower(q.str("status"))}
	if err := validateParams(h.validate, mp); err != nil {
		return err
	}

	export, err := h.analyticsService.ExportMemberships(r.Context(), mp.Status)
	if err != nil {
		return err
	}
	return writeCSV(w, r, export)
}
