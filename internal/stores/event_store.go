package stores

import (
	"context"
	"fmt"
	"strings"

	"qrmenu-analytics/internal/models"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const eventsTable = "tracking_events"

// eventsTableDDL is applied by Migrate. The sort key matches the window + restaurant
// predicate every analytics read carries.
const eventsTableDDL = `CREATE TABLE IF NOT EXISTS ` + eventsTable + ` (
	event_id      String,
	restaurant_id LowCardinality(String),
	event_type    LowCardinality(String),
	occurred_at   DateTime64(3, 'UTC'),
	session_id    String,
	visitor_id    String,
	device_type   LowCardinality(String),
	source        LowCardinality(String),
	product_id    String,
	table_no      String,
	page_path     String
) ENGINE = MergeTree
PARTITION BY toYYYYMM(occurred_at)
ORDER BY (restaurant_id, occurred_at, event_id)`

const eventColumns = "event_id, restaurant_id, event_type, occurred_at, session_id, visitor_id, device_type, source, product_id, table_no, page_path"

// EventStore is the Event Source: the read side serves every analytics query, the write side
// is fed by the tracking stream.
//
//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	// FetchEvents returns the events inside filter.Window that match the optional restaurant,
	// device and source filters, ascending by occurrence time.
	FetchEvents(ctx context.Context, filter models.Filter) ([]*models.Event, error)
	Insert(ctx context.Context, events []*models.Event) error
	Migrate(ctx context.Context) error
}

type eventStore struct {
	conn clickHouseConn
}

func NewEventStore(conn driver.Conn) EventStore {
	return &eventStore{conn: nativeConn{conn: conn}}
}

func (s *eventStore) Migrate(ctx context.Context) error {
	if err := s.conn.Exec(ctx, eventsTableDDL); err != nil {
		return fmt.Errorf("failed to create %s table: %w", eventsTable, err)
	}
	return nil
}

func (s *eventStore) FetchEvents(ctx context.Context, filter models.Filter) ([]*models.Event, error) {
	query, args := buildFetchEventsQuery(filter)

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var (
			event      models.Event
			eventType  string
			deviceType string
		)
		err := rows.Scan(
			&event.ID,
			&event.RestaurantID,
			&eventType,
			&event.OccurredAt,
			&event.SessionID,
			&event.VisitorID,
			&deviceType,
			&event.Source,
			&event.ProductID,
			&event.TableNo,
			&event.PagePath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		event.EventType = models.EventType(eventType)
		event.DeviceType = models.DeviceType(deviceType)
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}

	return events, nil
}

func (s *eventStore) Insert(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, "INSERT INTO "+eventsTable+" ("+eventColumns+")")
	if err != nil {
		return fmt.Errorf("failed to prepare event batch: %w", err)
	}

	for _, e := range events {
		err := batch.Append(
			e.ID,
			e.RestaurantID,
			string(e.EventType),
			e.OccurredAt.UTC(),
			e.SessionID,
			e.VisitorID,
			string(e.DeviceType),
			e.Source,
			e.ProductID,
			e.TableNo,
			e.PagePath,
		)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("failed to append event %s: %w", e.ID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send event batch: %w", err)
	}
	return nil
}

// buildFetchEventsQuery renders the window and optional filters as positional parameters.
// Ordering by event_id after occurred_at keeps equal-timestamp events in ingestion order
// because ids are ULIDs.
func buildFetchEventsQuery(filter models.Filter) (string, []any) {
	conditions := []string{"occurred_at >= ?", "occurred_at < ?"}
	args := []any{filter.Window.From.UTC(), filter.Window.To.UTC()}

	if filter.RestaurantID != "" {
		conditions = append(conditions, "restaurant_id = ?")
		args = append(args, filter.RestaurantID)
	}
	if filter.DeviceType != models.DeviceUnknown {
		conditions = append(conditions, "device_type = ?")
		args = append(args, string(filter.DeviceType))
	}
	if filter.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, filter.Source)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY occurred_at ASC, event_id ASC",
		eventColumns, eventsTable, strings.Join(conditions, " AND "),
	)
	return query, args
}
