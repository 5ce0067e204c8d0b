package analytics

import (
	"cmp"
	"slices"
	"strings"

	"qrmenu-analytics/internal/models"
)

const defaultTopProductsLimit = 10

// ProductViewCount is the number of PRODUCT_VIEW events recorded for one product.
type ProductViewCount struct {
	ProductID string
	Views     int64
}

// RankProducts counts PRODUCT_VIEW events per productId and returns at most n products,
// descending by views with productId ascending among equal counts.
func RankProducts(events []*models.Event, n int) []ProductViewCount {
	if n < 1 {
		n = defaultTopProductsLimit
	}

	views := make(map[string]int64)
	for _, e := range events {
		if e.EventType != models.EventProductView || e.ProductID == "" {
			continue
		}
		views[e.ProductID]++
	}

	ranked := make([]ProductViewCount, 0, len(views))
	for id, count := range views {
		ranked = append(ranked, ProductViewCount{ProductID: id, Views: count})
	}
	slices.SortFunc(ranked, func(a, b ProductViewCount) int {
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		return strings.Compare(a.ProductID, b.ProductID)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// JoinProductMetadata attaches catalog metadata to ranked products, keeping their order.
// Products without metadata are dropped.
func JoinProductMetadata(ranked []ProductViewCount, metadata []models.ProductMeta) []models.TopProduct {
	byID := make(map[string]models.ProductMeta, len(metadata))
	for _, m := range metadata {
		byID[m.ID] = m
	}

	products := make([]models.TopProduct, 0, len(ranked))
	for _, r := range ranked {
		meta, ok := byID[r.ProductID]
		if !ok {
			continue
		}
		products = append(products, models.TopProduct{
			ProductID:      r.ProductID,
			Name:           meta.Name,
			CategoryName:   meta.CategoryName,
			RestaurantID:   meta.RestaurantID,
			RestaurantName: meta.RestaurantName,
			Views:          r.Views,
		})
	}
	return products
}

func productIDs(ranked []ProductViewCount) []string {
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ProductID
	}
	return ids
}
