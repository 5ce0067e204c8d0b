package stores

import (
	"context"
	"database/sql"
	"fmt"

	"qrmenu-analytics/internal/models"

	"github.com/lib/pq"
)

const (
	selectRestaurantsSQL = `SELECT r.id, r.name, r.slug FROM restaurants r ORDER BY r.id`

	selectProductMetadataSQL = `
SELECT p.id, p.name, COALESCE(c.name, ''), r.id, r.name
FROM products p
JOIN restaurants r ON r.id = p.restaurant_id
LEFT JOIN categories c ON c.id = p.category_id
WHERE p.id = ANY($1)`

	selectMembershipsSQL = `
SELECT r.name, u.email, m.role, m.status, m.created_at
FROM memberships m
JOIN restaurants r ON r.id = m.restaurant_id
JOIN users u ON u.id = m.user_id
WHERE ($1::text = '` + models.MembershipStatusAll + `' OR m.status = $1::text)
ORDER BY m.created_at ASC, u.email ASC`
)

// CatalogStore reads the restaurant catalog owned by the menu service. Analytics never writes it.
//
//go:generate mockgen -source=catalog_store.go -destination=./mocks/catalog_store_mock.go -package=mocks
type CatalogStore interface {
	FetchRestaurants(ctx context.Context) ([]models.RestaurantSummary, error)
	// FetchProductMetadata returns metadata for the ids that exist; unknown ids are absent
	// from the result rather than an error.
	FetchProductMetadata(ctx context.Context, productIDs []string) ([]models.ProductMeta, error)
	// FetchMemberships lists memberships with the given status, or every membership for "all".
	FetchMemberships(ctx context.Context, status string) ([]models.Membership, error)
}

type catalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) CatalogStore {
	return &catalogStore{db: db}
}

func (s *catalogStore) FetchRestaurants(ctx context.Context) ([]models.RestaurantSummary, error) {
	rows, err := s.db.QueryContext(ctx, selectRestaurantsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.RestaurantSummary
	for rows.Next() {
		var r models.RestaurantSummary
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *catalogStore) FetchProductMetadata(ctx context.Context, productIDs []string) ([]models.ProductMeta, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, selectProductMetadataSQL, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query product metadata: %w", err)
	}
	defer rows.Close()

	var products []models.ProductMeta
	for rows.Next() {
		var p models.ProductMeta
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryName, &p.RestaurantID, &p.RestaurantName); err != nil {
			return nil, fmt.Errorf("failed to scan product metadata: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product metadata: %w", err)
	}
	return products, nil
}

func (s *catalogStore) FetchMemberships(ctx context.Context, status string) ([]models.Membership, error) {
	if status == "" {
		status = models.MembershipStatusAll
	}

	rows, err := s.db.QueryContext(ctx, selectMembershipsSQL, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	var memberships []models.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.RestaurantName, &m.Email, &m.Role, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}
	return memberships, nil
}
