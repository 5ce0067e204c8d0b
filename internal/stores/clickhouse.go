package stores

import (
	"context"
	"fmt"
	"time"

	"qrmenu-analytics/internal/shared/configs"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const defaultClickHouseDialTimeout = 5 * time.Second

// NewClickHouseConn opens a native-protocol connection to the event store and pings it.
func NewClickHouseConn(ctx context.Context, cfg configs.ClickHouseConfig) (driver.Conn, error) {
	dialTimeout := defaultClickHouseDialTimeout
	if cfg.DialTimeout > 0 {
		dialTimeout = time.Duration(cfg.DialTimeout) * time.Second
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		ClientInfo: clickhouse.ClientInfo{
			Products: []struct {
				Name    string
				Version string
			}{{Name: "qrmenu-analytics", Version: "1.0.0"}},
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open clickhouse connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*dialTimeout)
	defer cancel()
	if err := conn.Ping(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// rowScanner and batchAppender are the parts of driver.Rows and driver.Batch the event
// store uses; narrowing them keeps the store testable without a server.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type batchAppender interface {
	Append(v ...any) error
	Send() error
	Abort() error
}

type clickHouseConn interface {
	Exec(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) (rowScanner, error)
	PrepareBatch(ctx context.Context, query string) (batchAppender, error)
}

// nativeConn adapts driver.Conn to clickHouseConn.
type nativeConn struct {
	conn driver.Conn
}

func (c nativeConn) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

func (c nativeConn) Query(ctx context.Context, query string, args ...any) (rowScanner, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c nativeConn) PrepareBatch(ctx context.Context, query string) (batchAppender, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}
