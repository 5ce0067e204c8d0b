package models

import "fmt"

// SessionKeyKind records which correlation key grouped a session.
type SessionKeyKind int

const (
	KeyedBySession SessionKeyKind = iota
	KeyedByVisitor
	KeyedUnknown
)

func (k SessionKeyKind) String() string {
	switch k {
	case KeyedBySession:
		return "session"
	case KeyedByVisitor:
		return "visitor"
	default:
		return "unknown"
	}
}

// SessionKey identifies a reconstructed session. Events carrying neither a sessionId nor a
// visitorId all share the single KeyedUnknown key within one query.
type SessionKey struct {
	Kind  SessionKeyKind
	Value string
}

// UnknownSessionKey is the shared bucket for events without any correlation key.
var UnknownSessionKey = SessionKey{Kind: KeyedUnknown}

// SessionKeyOf applies the precedence sessionId -> visitorId -> unknown.
func SessionKeyOf(e *Event) SessionKey {
	if e.SessionID != "" {
		return SessionKey{Kind: KeyedBySession, Value: e.SessionID}
	}
	if e.VisitorID != "" {
		return SessionKey{Kind: KeyedByVisitor, Value: e.VisitorID}
	}
	return UnknownSessionKey
}

func (k SessionKey) String() string {
	if k.Kind == KeyedUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%s:%s", k.Kind, k.Value)
}

// Session is derived at query time and never stored.
type Session struct {
	Key             SessionKey
	Events          []*Event // ascending by OccurredAt
	IsBounce        bool
	DurationSeconds float64
}
