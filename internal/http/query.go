package http

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"qrmenu-analytics/internal/models"
	"qrmenu-analytics/internal/shared/validators"
)

const dateLayout = "2006-01-02"

// filterParams are the query parameters shared by every analytics route.
type filterParams struct {
	From         time.Time `json:"from" validate:"required"`
	To           time.Time `json:"to" validate:"required,gtefield=From"`
	RestaurantID string    `json:"restaurantId" validate:"max=64"`
	DeviceType   string    `json:"deviceType" validate:"omitempty,oneof=MOBILE DESKTOP TABLET"`
	Source       string    `json:"source" validate:"max=64"`
}

func (p filterParams) filter() models.Filter {
	return models.Filter{
		Window:       models.Window{From: p.From, To: p.To},
		RestaurantID: p.RestaurantID,
		DeviceType:   models.DeviceType(p.DeviceType),
		Source:       p.Source,
	}
}

type leaderboardParams struct {
	SortBy   string `json:"sortBy" validate:"omitempty,oneof=totalVisits qrScans uniqueVisitors productViews contactClicks lastActivity"`
	Order    string `json:"order" validate:"omitempty,oneof=asc desc"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	PageSize int    `json:"pageSize" validate:"omitempty,min=1,max=100"`
}

func (p leaderboardParams) query() models.LeaderboardQuery {
	return models.LeaderboardQuery{
		SortBy:   models.SortField(p.SortBy),
		Order:    models.SortOrder(p.Order),
		Page:     p.Page,
		PageSize: p.PageSize,
	}.Normalized()
}

type timeSeriesParams struct {
	Granularity string `json:"granularity" validate:"omitempty,oneof=day hour"`
}

func (p timeSeriesParams) granularity() models.Granularity {
	if p.Granularity == "" {
		return models.GranularityDay
	}
	return models.Granularity(p.Granularity)
}

type topProductsParams struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

type exportParams struct {
	Kind string `json:"kind" validate:"required,oneof=events timeseries leaderboard"`
	timeSeriesParams
	leaderboardParams
}

func (p exportParams) request() models.ExportRequest {
	return models.ExportRequest{
		Kind:        models.ExportKind(p.Kind),
		Granularity: p.granularity(),
		Leaderboard: p.leaderboardParams.query(),
	}
}

type membershipsParams struct {
	Status string `json:"status" validate:"omitempty,max=32,alphanum"`
}

// queryReader reads typed values out of a query string and keeps the first parse error.
type queryReader struct {
	values url.Values
	loc    *time.Location
	err    error
}

func newQueryReader(values url.Values, loc *time.Location) *queryReader {
	if loc == nil {
		loc = time.UTC
	}
	return &queryReader{values: values, loc: loc}
}

func (q *queryReader) str(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *queryReader) integer(name string) int {
	raw := q.str(name)
	if raw == "" || q.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.err = errInvalidQuery(fmt.Sprintf("%s: must be an integer", name), err)
		return 0
	}
	return n
}

// timestamp accepts RFC3339 or a bare date in the reporting location. A bare date used as the
// upper bound covers the whole day, so to=2025-12-31 includes events on the 31st.
func (q *queryReader) timestamp(name string, upperBound bool) time.Time {
	raw := q.str(name)
	if raw == "" || q.err != nil {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	d, err := time.ParseInLocation(dateLayout, raw, q.loc)
	if err != nil {
		q.err = errInvalidQuery(fmt.Sprintf("%s: must be RFC3339 or YYYY-MM-DD", name), err)
		return time.Time{}
	}
	if upperBound {
		return d.AddDate(0, 0, 1)
	}
	return d
}

func (q *queryReader) filterParams() filterParams {
	return filterParams{
		From:         q.timestamp("from", false),
		To:           q.timestamp("to", true),
		RestaurantID: q.str("restaurantId"),
		DeviceType:   strings.ToUpper(q.str("deviceType")),
		Source:       strings.ToLower(q.str("source")),
	}
}

func (q *queryReader) leaderboardParams() leaderboardParams {
	return leaderboardParams{
		SortBy:   q.str("sortBy"),
		Order:    strings.ToLower(q.str("order")),
		Page:     q.integer("page"),
		PageSize: q.integer("pageSize"),
	}
}

func (q *queryReader) timeSeriesParams() timeSeriesParams {
	return timeSeriesParams{Granularity: strings.ToLower(q.str("granularity"))}
}

// validateParams runs the struct tags of every params value and reports the first failure.
func validateParams(validate *validators.Validate, params ...any) error {
	for _, p := range params {
		if err := validate.Struct(p); err != nil {
			return errInvalidQuery(describeValidationError(err), err)
		}
	}
	return nil
}

func describeValidationError(err error) string {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		switch {
		case fe.Field() == "to" && fe.Tag() == "gtefield":
			return "to: must not be before from"
		case fe.Tag() == "required":
			return fmt.Sprintf("%s: is required", fe.Field())
		case fe.Tag() == "oneof":
			return fmt.Sprintf("%s: must be one of [%s]", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}
