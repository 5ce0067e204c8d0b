package models

import "time"

type RestaurantSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductMeta struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CategoryName   string `json:"categoryName"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}

type Membership struct {
	RestaurantName string    `json:"restaurantName"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MembershipStatusAll selects memberships regardless of status.
const MembershipStatusAll = "all"
