package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewULIDAt generates a ULID whose time component is t, so ids sort with event time.
var NewULIDAt = func(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
