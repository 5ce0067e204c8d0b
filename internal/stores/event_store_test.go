package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"qrmenu-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	rows    [][]any
	pos     int
	scanErr error
	closed  bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.rows[r.pos-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *time.Time:
			*p = row[i].(time.Time)
		}
	}
	return nil
}

func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { r.closed = true; return nil }

type fakeBatch struct {
	appended [][]any
	sent     bool
	aborted  bool
	sendErr  error
}

func (b *fakeBatch) Append(v ...any) error {
	b.appended = append(b.appended, v)
	return nil
}

func (b *fakeBatch) Send() error {
	b.sent = true
	return b.sendErr
}

func (b *fakeBatch) Abort() error {
	b.aborted = true
	return nil
}

type fakeConn struct {
	rows       *fakeRows
	queryErr   error
	batch      *fakeBatch
	lastQuery  string
	lastArgs   []any
	lastInsert string
	execs      []string
}

func (c *fakeConn) Exec(_ context.Context, query string, _ ...any) error {
	c.execs = append(c.execs, query)
	return nil
}

func (c *fakeConn) Query(_ context.Context, query string, args ...any) (rowScanner, error) {
	c.lastQuery = query
	c.lastArgs = args
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.rows, nil
}

func (c *fakeConn) PrepareBatch(_ context.Context, query string) (batchAppender, error) {
	c.lastInsert = query
	return c.batch, nil
}

func TestBuildFetchEventsQuery(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	window := models.Window{From: from, To: to}

	tests := []struct {
		name          string
		filter        models.Filter
		wantPredicate string
		wantArgs      []any
	}{
		{
			name:          "window only",
			filter:        models.Filter{Window: window},
			wantPredicate: "WHERE occurred_at >= ? AND occurred_at < ? ORDER BY",
			wantArgs:      []any{from, to},
		},
		{
			name: "all filters",
			filter: models.Filter{
				Window:       window,
				RestaurantID: "rst-bistro",
				DeviceType:   models.DeviceMobile,
				Source:       "qr",
			},
			wantPredicate: "WHERE occurred_at >= ? AND occurred_at < ? AND restaurant_id = ? AND device_type = ? AND source = ? ORDER BY",
			wantArgs:      []any{from, to, "rst-bistro", "MOBILE", "qr"},
		},
		{
			name:          "source without restaurant",
			filter:        models.Filter{Window: window, Source: "link"},
			wantPredicate: "WHERE occurred_at >= ? AND occurred_at < ? AND source = ? ORDER BY",
			wantArgs:      []any{from, to, "link"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, args := buildFetchEventsQuery(tt.filter)
			assert.Contains(t, query, "FROM tracking_events")
			assert.Contains(t, query, tt.wantPredicate)
			assert.Contains(t, query, "ORDER BY occurred_at ASC, event_id ASC")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildFetchEventsQuery_ConvertsWindowToUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("ICT", 7*60*60)
	from := time.Date(2025, 1, 1, 7, 0, 0, 0, loc)

	_, args := buildFetchEventsQuery(models.Filter{Window: models.Window{From: from, To: from.Add(time.Hour)}})
	require.Len(t, args, 2)
	assert.Equal(t, time.UTC, args[0].(time.Time).Location())
	assert.True(t, args[0].(time.Time).Equal(from))
}

func TestEventStore_FetchEvents(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	rows := &fakeRows{rows: [][]any{
		{"e1", "rst-bistro", "QR_SCAN", at, "s-1", "v-1", "MOBILE", "qr", "", "7", "/m/rst-bistro"},
		{"e2", "rst-bistro", "PRODUCT_VIEW", at.Add(time.Minute), "s-1", "v-1", "", "", "prd-1", "", ""},
	}}
	conn := &fakeConn{rows: rows}
	store := &eventStore{conn: conn}

	events, err := store.FetchEvents(context.Background(), models.Filter{
		Window:       models.Window{From: at, To: at.Add(time.Hour)},
		RestaurantID: "rst-bistro",
	})
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, models.EventQRScan, events[0].EventType)
	assert.Equal(t, models.DeviceMobile, events[0].DeviceType)
	assert.Equal(t, "7", events[0].TableNo)
	assert.Equal(t, "/m/rst-bistro", events[0].PagePath)
	assert.Equal(t, models.EventProductView, events[1].EventType)
	assert.Equal(t, models.DeviceUnknown, events[1].DeviceType)
	assert.Equal(t, "prd-1", events[1].ProductID)
	assert.NotSame(t, events[0], events[1])
	assert.True(t, rows.closed)
	assert.Equal(t, []any{at, at.Add(time.Hour), "rst-bistro"}, conn.lastArgs)
}

func TestEventStore_FetchEvents_Errors(t *testing.T) {
	t.Parallel()

	queryErr := errors.New("connection reset")
	scanErr := errors.New("unexpected column type")

	tests := []struct {
		name    string
		conn    *fakeConn
		wantErr error
	}{
		{
			name:    "query fails",
			conn:    &fakeConn{queryErr: queryErr},
			wantErr: queryErr,
		},
		{
			name:    "scan fails",
			conn:    &fakeConn{rows: &fakeRows{rows: [][]any{{}}, scanErr: scanErr}},
			wantErr: scanErr,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &eventStore{conn: tt.conn}
			events, err := store.FetchEvents(context.Background(), models.Filter{})
			assert.Nil(t, events)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEventStore_Insert(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("ICT", 7*60*60)
	at := time.Date(2025, 1, 2, 17, 0, 0, 0, loc)
	batch := &fakeBatch{}
	conn := &fakeConn{batch: batch}
	store := &eventStore{conn: conn}

	err := store.Insert(context.Background(), []*models.Event{
		{ID: "e1", RestaurantID: "rst-bistro", EventType: models.EventQRScan, OccurredAt: at, DeviceType: models.DeviceTablet},
		{ID: "e2", RestaurantID: "rst-bistro", EventType: models.EventContactClick, OccurredAt: at},
	})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO tracking_events ("+eventColumns+")", conn.lastInsert)
	assert.True(t, batch.sent)
	require.Len(t, batch.appended, 2)
	first := batch.appended[0]
	require.Len(t, first, 11)
	assert.Equal(t, "e1", first[0])
	assert.Equal(t, "QR_SCAN", first[2])
	assert.Equal(t, at.UTC(), first[3])
	assert.Equal(t, "TABLET", first[6])
}

func TestEventStore_Insert_Empty(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	store := &eventStore{conn: conn}

	require.NoError(t, store.Insert(context.Background(), nil))
	assert.Empty(t, conn.lastInsert)
}

func TestEventStore_Insert_SendFails(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("too many parts")
	store := &eventStore{conn: &fakeConn{batch: &fakeBatch{sendErr: sendErr}}}

	err := store.Insert(context.Background(), []*models.Event{{ID: "e1"}})
	assert.ErrorIs(t, err, sendErr)
}

func TestEventStore_Migrate(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	store := &eventStore{conn: conn}

	require.NoError(t, store.Migrate(context.Background()))
	require.Len(t, conn.execs, 1)
	assert.Contains(t, conn.execs[0], "CREATE TABLE IF NOT EXISTS tracking_events")
}
