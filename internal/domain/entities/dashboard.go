package entities

import "time"

// DashboardStats holds the admin dashboard counters
type DashboardStats struct {
	TotalUsers            int64 `json:"totalUsers"`
	ApprovedSellers       int64 `json:"approvedSellers"`
	PendingSellers        int64 `json:"pendingSellers"`
	ActiveListings        int64 `json:"activeListings"`
	CompletedTransactions int64 `json:"completedTransactions"`
}

// ActivityType represents recent-activity feed entry kinds
type ActivityType string

const (
	ActivityUserRegistration ActivityType = "user_registration"
	ActivityPendingSeller    ActivityType = "pending_seller"
	ActivityTransaction      ActivityType = "transaction"
	ActivityProductListing   ActivityType = "product_listing"
)

// RecentActivity is one entry of the dashboard activity feed
type RecentActivity struct {
	ID        string           `json:"id"`
	Type      ActivityType     `json:"type"`
	User      *ActivityUser    `json:"user,omitempty"`
	Product   *ActivityProduct `json:"product,omitempty"`
	Order     *ActivityOrder   `json:"transaction,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// ActivityUser is the user fragment of an activity entry
type ActivityUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ActivityProduct is the product fragment of an activity entry
type ActivityProduct struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ActivityOrder is the transaction fragment of an activity entry
type ActivityOrder struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}
