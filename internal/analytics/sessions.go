package analytics

import (
	"context"
	"slices"

	"qrmenu-analytics/internal/models"
	"qrmenu-analytics/internal/shared/loggers"
)

// ReconstructSessions groups events by correlation key (sessionId, then visitorId, then the
// shared unknown key) and classifies each group. Events inside a session are ordered by
// OccurredAt; equal timestamps keep their input order. Sessions are returned in the order
// their key first appears in events.
//
// An event without a usable timestamp is skipped with a warning instead of failing the
// whole aggregation.
func ReconstructSessions(ctx context.Context, events []*models.Event) []models.Session {
	logger := loggers.Ctx(ctx)

	index := make(map[models.SessionKey]int)
	var groups [][]*models.Event
	var keys []models.SessionKey

	for _, e := range events {
		if e == nil {
			continue
		}
		if e.OccurredAt.IsZero() {
			logger.Warn().
				Str(loggers.FieldEventID, e.ID).
				Str(loggers.FieldRestaurantID, e.RestaurantID).
				Msg("skipping event with malformed timestamp")
			metricSkippedEventsTotal.WithLabelValues(skipReasonMalformedTimestamp).Inc()
			continue
		}

		key := models.SessionKeyOf(e)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
			keys = append(keys, key)
		}
		groups[i] = append(groups[i], e)
	}

	sessions := make([]models.Session, 0, len(groups))
	for i, group := range groups {
		sessions = append(sessions, newSession(keys[i], group))
	}
	return sessions
}

func newSession(key models.SessionKey, events []*models.Event) models.Session {
	slices.SortStableFunc(events, func(a, b *models.Event) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	session := models.Session{
		Key:      key,
		Events:   events,
		IsBounce: len(events) == 1,
	}
	if !session.IsBounce {
		first, last := events[0], events[len(events)-1]
		session.DurationSeconds = last.OccurredAt.Sub(first.OccurredAt).Seconds()
	}
	return session
}
