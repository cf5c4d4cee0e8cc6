package repositories

import (
	"context"

	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
)

// UserFilter narrows user listings
type UserFilter struct {
	Role   entities.UserRole
	Status entities.UserStatus
	Search string
}

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, filter UserFilter) ([]*entities.User, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	// MarkDeleted applies the soft-delete field set in one partial update:
	// status=deleted, deletedAt/deletedBy/deletionReason/originalStatus.
	MarkDeleted(ctx context.Context, user *entities.User) error
	// MarkRestored clears the soft-delete field set and stamps
	// restoredAt/restoredBy together with the restored status.
	MarkRestored(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter UserFilter) (int64, error)
}

// SellerRepository defines operations on the denormalized sellers mirror
type SellerRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.Seller, error)
	UpdateStatusByEmail(ctx context.Context, email string, status entities.UserStatus) error
}

// DeletedUserArchiveRepository persists hard-delete compliance snapshots
type DeletedUserArchiveRepository interface {
	Create(ctx context.Context, archive *entities.DeletedUserArchive) error
	GetByOriginalID(ctx context.Context, originalID uuid.UUID) (*entities.DeletedUserArchive, error)
}
