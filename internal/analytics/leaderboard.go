package analytics

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"qrmenu-analytics/internal/models"

	"golang.org/x/sync/errgroup"
)

const defaultLeaderboardWorkers = 8

// RankRestaurants computes one RestaurantPerformance per restaurant, zero-valued when it has
// no events, and sorts them by sortBy in the given order. Restaurants with equal sort values
// are ordered by id ascending regardless of order.
//
// Events are partitioned by restaurant up front; each restaurant's pass then runs on a
// bounded worker pool and writes only its own output slot.
func RankRestaurants(ctx context.Context, restaurants []models.RestaurantSummary, events []*models.Event, sortBy models.SortField, order models.SortOrder, workers int) ([]models.RestaurantPerformance, error) {
	if workers < 1 {
		workers = defaultLeaderboardWorkers
	}

	byRestaurant := make(map[string][]*models.Event, len(restaurants))
	for _, e := range events {
		byRestaurant[e.RestaurantID] = append(byRestaurant[e.RestaurantID], e)
	}

	performances := make([]models.RestaurantPerformance, len(restaurants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, restaurant := range restaurants {
		i := i
		restaurant := restaurant
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			performances[i] = performanceOf(restaurant, byRestaurant[restaurant.ID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortPerformances(performances, sortBy, order)
	return performances, nil
}

// BuildLeaderboard ranks restaurants and returns the requested 1-based page. Total is the
// number of ranked restaurants before pagination.
func BuildLeaderboard(ctx context.Context, restaurants []models.RestaurantSummary, events []*models.Event, query models.LeaderboardQuery, workers int) (*models.LeaderboardPage, error) {
	query = query.Normalized()

	ranked, err := RankRestaurants(ctx, restaurants, events, query.SortBy, query.Order, workers)
	if err != nil {
		return nil, err
	}
	return Paginate(ranked, query.Page, query.PageSize), nil
}

// Paginate slices items for a 1-based page. A page past the end yields no items.
func Paginate(items []models.RestaurantPerformance, page, pageSize int) *models.LeaderboardPage {
	result := &models.LeaderboardPage{
		Items:    []models.RestaurantPerformance{},
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}

	start := (page - 1) * pageSize
	if start >= len(items) || start < 0 {
		return result
	}
	end := min(start+pageSize, len(items))
	result.Items = items[start:end]
	return result
}

func performanceOf(restaurant models.RestaurantSummary, events []*models.Event) models.RestaurantPerformance {
	counts := CountTypes(events)
	return models.RestaurantPerformance{
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Slug:           restaurant.Slug,
		TotalVisits:    TotalVisits(events),
		QRScans:        counts.QRScans,
		UniqueVisitors: UniqueVisitors(events),
		ProductViews:   counts.ProductViews,
		ContactClicks:  counts.ContactClicks,
		LastActivity:   LastActivity(events),
	}
}

func sortPerformances(items []models.RestaurantPerformance, sortBy models.SortField, order models.SortOrder) {
	slices.SortFunc(items, func(a, b models.RestaurantPerformance) int {
		c := compareBy(a, b, sortBy)
		if order != models.SortAsc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.RestaurantID, b.RestaurantID)
	})
}

func compareBy(a, b models.RestaurantPerformance, sortBy models.SortField) int {
	switch sortBy {
	case models.SortByQRScans:
		return cmp.Compare(a.QRScans, b.QRScans)
	case models.SortByUniqueVisitors:
		return cmp.Compare(a.UniqueVisitors, b.UniqueVisitors)
	case models.SortByProductViews:
		return cmp.Compare(a.ProductViews, b.ProductViews)
	case models.SortByContactClicks:
		return cmp.Compare(a.ContactClicks, b.ContactClicks)
	case models.SortByLastActivity:
		// no activity sorts below any timestamp
		return lastActivityOf(a).Compare(lastActivityOf(b))
	default:
		return cmp.Compare(a.TotalVisits, b.TotalVisits)
	}
}

func lastActivityOf(p models.RestaurantPerformance) time.Time {
	if p.LastActivity == nil {
		return time.Time{}
	}
	return *p.LastActivity
}
