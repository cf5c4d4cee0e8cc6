package usecases

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/pkg/logger"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second

	recentActivityLimit = 10
)

// StatsCache is the cache seam for dashboard aggregates. A nil cache
// disables caching.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardUsecase aggregates admin dashboard counters and the recent
// activity feed.
type DashboardUsecase struct {
	userRepo        repositories.UserRepository
	productRepo     repositories.ProductRepository
	transactionRepo repositories.TransactionRepository
	cache           StatsCache
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	transactionRepo repositories.TransactionRepository,
	cache StatsCache,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:        userRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// GetStats returns the dashboard counters. Counting happens store-side;
// results are cached briefly since the console polls this endpoint.
func (u *DashboardUsecase) GetStats(ctx context.Context) (*entities.DashboardStats, error) {
	if u.cache != nil {
		var cached entities.DashboardStats
		hit, err := u.cache.GetJSON(ctx, statsCacheKey, &cached)
		if err != nil {
			logger.Warn(ctx, "dashboard stats cache read failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	stats := &entities.DashboardStats{}
	var err error

	if stats.TotalUsers, err = u.userRepo.Count(ctx, repositories.UserFilter{}); err != nil {
		return nil, err
	}
	if stats.ApprovedSellers, err = u.userRepo.Count(ctx, repositories.UserFilter{
		Role:   entities.UserRoleSeller,
		Status: entities.UserStatusApproved,
	}); err != nil {
		return nil, err
	}
	if stats.PendingSellers, err = u.userRepo.Count(ctx, repositories.UserFilter{
		Role:   entities.UserRoleSeller,
		Status: entities.UserStatusPending,
	}); err != nil {
		return nil, err
	}
	if stats.ActiveListings, err = u.productRepo.CountByStatus(ctx, entities.ProductStatusApproved); err != nil {
		return nil, err
	}
	if stats.CompletedTransactions, err = u.transactionRepo.CountByStatus(ctx, entities.TransactionStatusCompleted); err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
			logger.Warn(ctx, "dashboard stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}

// GetRecentActivity merges recent registrations, pending sellers, product
// listings and transactions into one feed sorted newest first.
func (u *DashboardUsecase) GetRecentActivity(ctx context.Context) ([]*entities.RecentActivity, error) {
	var feed []*entities.RecentActivity

	users, err := u.userRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		typ := entities.ActivityUserRegistration
		if user.Role == entities.UserRoleSeller && user.Status == entities.UserStatusPending {
			typ = entities.ActivityPendingSeller
		}
		feed = append(feed, &entities.RecentActivity{
			ID:   "user_" + user.ID.String(),
			Type: typ,
			User: &entities.ActivityUser{
				ID:   user.ID.String(),
				Name: user.Name,
				Role: string(user.Role),
			},
			Timestamp: user.CreatedAt,
		})
	}

	products, err := u.productRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		feed = append(feed, &entities.RecentActivity{
			ID:   "product_" + product.ID.String(),
			Type: entities.ActivityProductListing,
			Product: &entities.ActivityProduct{
				ID:     product.ID.String(),
				Name:   product.Name,
				Status: string(product.Status),
			},
			Timestamp: product.CreatedAt,
		})
	}

	transactions, err := u.transactionRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, txn := range transactions {
		feed = append(feed, &entities.RecentActivity{
			ID:   "transaction_" + txn.ID.String(),
			Type: entities.ActivityTransaction,
			Order: &entities.ActivityOrder{
				ID:     txn.ID.String(),
				Amount: txn.Amount,
				Status: string(txn.Status),
			},
			Timestamp: txn.CreatedAt,
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}
	return feed, nil
}
