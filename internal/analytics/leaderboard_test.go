package analytics

import (
	"context"
	"testing"

	"qrmenu-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaderboardFixture() ([]models.RestaurantSummary, []*models.Event) {
	restaurants := []models.RestaurantSummary{
		{ID: "r-c", Name: "Cafe", Slug: "cafe"},
		{ID: "r-a", Name: "Atelier", Slug: "atelier"},
		{ID: "r-b", Name: "Bistro", Slug: "bistro"},
		{ID: "r-z", Name: "Quiet", Slug: "quiet"},
	}
	events := []*models.Event{
		newEvent("e1", "r-a", models.EventQRScan, at(0), withVisitor("v1")),
		newEvent("e2", "r-a", models.EventMenuView, at(10), withVisitor("v1")),
		newEvent("e3", "r-a", models.EventProductView, at(20), withVisitor("v2"), withProduct("p1")),
		newEvent("e4", "r-b", models.EventQRScan, at(5), withVisitor("v3")),
		newEvent("e5", "r-b", models.EventQRScan, at(300), withVisitor("v4")),
		newEvent("e6", "r-c", models.EventContactClick, at(100), withSession("s9")),
		newEvent("e7", "r-c", models.EventMenuView, at(110), withSession("s9")),
		newEvent("e8", "r-c", models.EventMenuView, at(120), withSession("s9")),
		// not in the catalog; never ranked
		newEvent("e9", "r-ghost", models.EventQRScan, at(0)),
	}
	return restaurants, events
}

func ids(items []models.RestaurantPerformance) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.RestaurantID
	}
	return out
}

func TestRankRestaurants_Completeness(t *testing.T) {
	t.Parallel()

	restaurants, events := leaderboardFixture()

	ranked, err := RankRestaurants(context.Background(), restaurants, events, models.SortByTotalVisits, models.SortDesc, 2)
	require.NoError(t, err)
	require.Len(t, ranked, len(restaurants))

	seen := map[string]int{}
	for _, p := range ranked {
		seen[p.RestaurantID]++
	}
	for _, r := range restaurants {
		assert.Equal(t, 1, seen[r.ID], "restaurant %s must appear exactly once", r.ID)
	}

	quiet := ranked[len(ranked)-1]
	assert.Equal(t, models.RestaurantPerformance{RestaurantID: "r-z", RestaurantName: "Quiet", Slug: "quiet"}, quiet)
}

func TestRankRestaurants_Metrics(t *testing.T) {
	t.Parallel()

	restaurants, events := leaderboardFixture()

	ranked, err := RankRestaurants(context.Background(), restaurants, events, models.SortByTotalVisits, models.SortDesc, 0)
	require.NoError(t, err)

	byID := map[string]models.RestaurantPerformance{}
	for _, p := range ranked {
		byID[p.RestaurantID] = p
	}

	a := byID["r-a"]
	assert.Equal(t, int64(3), a.TotalVisits)
	assert.Equal(t, int64(1), a.QRScans)
	assert.Equal(t, int64(2), a.UniqueVisitors)
	assert.Equal(t, int64(1), a.ProductViews)
	require.NotNil(t, a.LastActivity)
	assert.True(t, a.LastActivity.Equal(at(20)))

	c := byID["r-c"]
	assert.Equal(t, int64(1), c.ContactClicks)
	assert.Equal(t, int64(1), c.UniqueVisitors)
}

func TestRankRestaurants_SortFieldsAndTieBreak(t *testing.T) {
	t.Parallel()

	restaurants, events := leaderboardFixture()

	tests := []struct {
		name   string
		sortBy models.SortField
		order  models.SortOrder
		want   []string
	}{
		{
			name:   "total visits desc, equal counts by id",
			sortBy: models.SortByTotalVisits,
			order:  models.SortDesc,
			want:   []string{"r-a", "r-c", "r-b", "r-z"},
		},
		{
			name:   "total visits asc keeps id ascending among ties",
			sortBy: models.SortByTotalVisits,
			order:  models.SortAsc,
			want:   []string{"r-z", "r-b", "r-a", "r-c"},
		},
		{
			name:   "qr scans desc",
			sortBy: models.SortByQRScans,
			order:  models.SortDesc,
			want:   []string{"r-b", "r-a", "r-c", "r-z"},
		},
		{
			name:   "unique visitors desc",
			sortBy: models.SortByUniqueVisitors,
			order:  models.SortDesc,
			want:   []string{"r-a", "r-b", "r-c", "r-z"},
		},
		{
			name:   "product views desc",
			sortBy: models.SortByProductViews,
			order:  models.SortDesc,
			want:   []string{"r-a", "r-b", "r-c", "r-z"},
		},
		{
			name:   "contact clicks desc",
			sortBy: models.SortByContactClicks,
			order:  models.SortDesc,
			want:   []string{"r-c", "r-a", "r-b", "r-z"},
		},
		{
			name:   "last activity desc puts inactive last",
			sortBy: models.SortByLastActivity,
			order:  models.SortDesc,
			want:   []string{"r-b", "r-c", "r-a", "r-z"},
		},
		{
			name:   "last activity asc puts inactive first",
			sortBy: models.SortByLastActivity,
			order:  models.SortAsc,
			want:   []string{"r-z", "r-a", "r-c", "r-b"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ranked, err := RankRestaurants(context.Background(), restaurants, events, tt.sortBy, tt.order, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(ranked))
		})
	}
}

func TestRankRestaurants_CanceledContext(t *testing.T) {
	t.Parallel()

	restaurants, events := leaderboardFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ranked, err := RankRestaurants(ctx, restaurants, events, models.SortByTotalVisits, models.SortDesc, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ranked)
}

func TestBuildLeaderboard_Pagination(t *testing.T) {
	t.Parallel()

	restaurants, events := leaderboardFixture()

	tests := []struct {
		name     string
		query    models.LeaderboardQuery
		wantIDs  []string
		wantPage int
		wantSize int
	}{
		{
			name:     "defaults",
			query:    models.LeaderboardQuery{},
			wantIDs:  []string{"r-a", "r-c", "r-b", "r-z"},
			wantPage: 1,
			wantSize: models.DefaultPageSize,
		},
		{
			name:     "second page",
			query:    models.LeaderboardQuery{Page: 2, PageSize: 3},
			wantIDs:  []string{"r-z"},
			wantPage: 2,
			wantSize: 3,
		},
		{
			name:     "page past the end",
			query:    models.LeaderboardQuery{Page: 5, PageSize: 2},
			wantIDs:  []string{},
			wantPage: 5,
			wantSize: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := BuildLeaderboard(context.Background(), restaurants, events, tt.query, 4)
			require.NoError(t, err)
			assert.Equal(t, len(restaurants), page.Total)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantSize, page.PageSize)
			assert.Equal(t, tt.wantIDs, ids(page.Items))
		})
	}
}

func TestBuildLeaderboard_NoRestaurants(t *testing.T) {
	t.Parallel()

	page, err := BuildLeaderboard(context.Background(), nil, nil, models.LeaderboardQuery{}, 4)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
