package usecases

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/pkg/logger"
)

// MinDeletionReasonLength is the minimum accepted length for a deletion reason.
const MinDeletionReasonLength = 10

const sellerDeletedCancellationReason = "Seller account deleted"

// CascadeOutcome records the result of a single cascade step so callers can
// report partial failures without aborting the whole deletion.
type CascadeOutcome struct {
	Kind    string    `json:"kind"` // "product" or "transaction"
	ID      uuid.UUID `json:"id"`
	Applied bool      `json:"applied"`
	Error   string    `json:"error,omitempty"`
}

// DeletionResult is returned from DeleteUser.
type DeletionResult struct {
	UserID     uuid.UUID           `json:"user_id"`
	DeleteType entities.DeleteType `json:"delete_type"`
	Message    string              `json:"message"`
	Cascade    []CascadeOutcome    `json:"cascade,omitempty"`
}

// RestorationResult is returned from RestoreUser.
type RestorationResult struct {
	UserID         uuid.UUID           `json:"user_id"`
	RestoredStatus entities.UserStatus `json:"restored_status"`
	Message        string              `json:"message"`
	Cascade        []CascadeOutcome    `json:"cascade,omitempty"`
}

// UserLifecycleUsecase handles user deletion, restoration and the seller
// cascade effects on products and transactions.
type UserLifecycleUsecase struct {
	userRepo        repositories.UserRepository
	sellerRepo      repositories.SellerRepository
	archiveRepo     repositories.DeletedUserArchiveRepository
	productRepo     repositories.ProductRepository
	archivedProduct repositories.ArchivedProductRepository
	transactionRepo repositories.TransactionRepository
	auditRepo       repositories.AuditLogRepository
	uow             repositories.UnitOfWork
}

// NewUserLifecycleUsecase creates a new user lifecycle usecase
func NewUserLifecycleUsecase(
	userRepo repositories.UserRepository,
	sellerRepo repositories.SellerRepository,
	archiveRepo repositories.DeletedUserArchiveRepository,
	productRepo repositories.ProductRepository,
	archivedProduct repositories.ArchivedProductRepository,
	transactionRepo repositories.TransactionRepository,
	auditRepo repositories.AuditLogRepository,
	uow repositories.UnitOfWork,
) *UserLifecycleUsecase {
	return &UserLifecycleUsecase{
		userRepo:        userRepo,
		sellerRepo:      sellerRepo,
		archiveRepo:     archiveRepo,
		productRepo:     productRepo,
		archivedProduct: archivedProduct,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
		uow:             uow,
	}
}

// DeleteUser removes a user either reversibly (soft) or permanently (hard).
// Seller accounts cascade to their products and in-flight transactions
// before the user record itself is touched. Cascade and audit failures are
// reported but never abort the deletion.
func (u *UserLifecycleUsecase) DeleteUser(ctx context.Context, userID, adminID uuid.UUID, input *entities.DeleteUserInput) (*DeletionResult, error) {
	reason := strings.TrimSpace(input.Reason)
	if len(reason) < MinDeletionReasonLength {
		return nil, domainerrors.NewAppError(
			http.StatusBadRequest,
			domainerrors.CodeValidation,
			fmt.Sprintf("deletion reason must be at least %d characters", MinDeletionReasonLength),
			domainerrors.ErrReasonTooShort,
		)
	}
	deleteType := input.DeleteType
	if deleteType == "" {
		deleteType = entities.DeleteTypeSoft
	}
	if deleteType != entities.DeleteTypeSoft && deleteType != entities.DeleteTypeHard {
		return nil, domainerrors.BadRequest("delete type must be soft or hard")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted() && deleteType == entities.DeleteTypeSoft {
		return nil, domainerrors.InvalidState("user is already deleted", domainerrors.ErrInvalidStatus)
	}

	var cascade []CascadeOutcome
	if user.Role == entities.UserRoleSeller {
		cascade = u.cascadeSellerDeletion(ctx, user, deleteType)
	}

	// Audit before the state flip so a deletion is never unrecorded by a
	// crash between the two writes. An audit failure is logged, not fatal.
	u.writeAuditEntry(ctx, user, adminID, entities.AuditActionUserDeletion, deleteType, reason)

	switch deleteType {
	case entities.DeleteTypeHard:
		if err := u.hardDeleteUser(ctx, user, adminID, reason); err != nil {
			return nil, err
		}
	default:
		if err := u.softDeleteUser(ctx, user, adminID, reason); err != nil {
			return nil, err
		}
	}

	if user.Role == entities.UserRoleSeller {
		u.syncSellerMirror(ctx, user.Email, entities.UserStatusDeleted)
	}

	message := fmt.Sprintf("User %s has been deactivated successfully", user.Name)
	if deleteType == entities.DeleteTypeHard {
		message = fmt.Sprintf("User %s has been permanently deleted", user.Name)
	}

	return &DeletionResult{
		UserID:     user.ID,
		DeleteType: deleteType,
		Message:    message,
		Cascade:    cascade,
	}, nil
}

func (u *UserLifecycleUsecase) softDeleteUser(ctx context.Context, user *entities.User, adminID uuid.UUID, reason string) error {
	now := time.Now()
	user.OriginalStatus.SetValid(string(user.Status))
	user.Status = entities.UserStatusDeleted
	user.DeletedAt.SetValid(now)
	user.DeletedBy.SetValid(adminID.String())
	user.DeletionReason.SetValid(reason)
	return u.userRepo.MarkDeleted(ctx, user)
}

func (u *UserLifecycleUsecase) hardDeleteUser(ctx context.Context, user *entities.User, adminID uuid.UUID, reason string) error {
	archive := &entities.DeletedUserArchive{
		OriginalID: user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		DeletedBy:  adminID,
		Reason:     reason,
		DeletedAt:  time.Now(),
	}
	// Archive and row removal succeed or fail together.
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.archiveRepo.Create(txCtx, archive); err != nil {
			return err
		}
		return u.userRepo.Delete(txCtx, user.ID)
	})
}

// cascadeSellerDeletion applies deletion side effects to a seller's catalog
// and in-flight orders. Each step is attempted independently; a failed step
// is recorded and the cascade moves on.
func (u *UserLifecycleUsecase) cascadeSellerDeletion(ctx context.Context, user *entities.User, deleteType entities.DeleteType) []CascadeOutcome {
	var outcomes []CascadeOutcome

	products, err := u.productRepo.ListBySeller(ctx, user.ID)
	if err != nil {
		logger.Warn(ctx, "failed to list seller products for cascade",
			zap.String("seller_id", user.ID.String()), zap.Error(err))
		outcomes = append(outcomes, CascadeOutcome{Kind: "product", Applied: false, Error: err.Error()})
	}
	for _, product := range products {
		if product.Status == entities.ProductStatusSellerDeleted || product.Status == entities.ProductStatusDeleted {
			continue
		}
		outcome := CascadeOutcome{Kind: "product", ID: product.ID}
		if deleteType == entities.DeleteTypeHard {
			err = u.archiveProduct(ctx, product)
		} else {
			err = u.productRepo.MarkSellerDeleted(ctx, product.ID, product.Status)
		}
		if err != nil {
			logger.Warn(ctx, "product cascade step failed",
				zap.String("product_id", product.ID.String()), zap.Error(err))
			outcome.Error = err.Error()
		} else {
			outcome.Applied = true
		}
		outcomes = append(outcomes, outcome)
	}

	transactions, err := u.transactionRepo.ListInFlightBySeller(ctx, user.ID)
	if err != nil {
		logger.Warn(ctx, "failed to list in-flight transactions for cascade",
			zap.String("seller_id", user.ID.String()), zap.Error(err))
		outcomes = append(outcomes, CascadeOutcome{Kind: "transaction", Applied: false, Error: err.Error()})
	}
	for _, txn := range transactions {
		outcome := CascadeOutcome{Kind: "transaction", ID: txn.ID}
		if err := u.transactionRepo.Cancel(ctx, txn.ID, entities.TransactionStatusCancelledSellerDeleted, sellerDeletedCancellationReason); err != nil {
			logger.Warn(ctx, "transaction cascade step failed",
				zap.String("transaction_id", txn.ID.String()), zap.Error(err))
			outcome.Error = err.Error()
		} else {
			outcome.Applied = true
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (u *UserLifecycleUsecase) archiveProduct(ctx context.Context, product *entities.Product) error {
	archived := &entities.ArchivedProduct{
		OriginalID:       product.ID,
		OriginalSellerID: product.SellerID,
		Name:             product.Name,
		Category:         product.Category,
		Price:            product.Price,
		Status:           product.Status,
		ArchivedAt:       time.Now(),
	}
	if err := u.archivedProduct.Create(ctx, archived); err != nil {
		return err
	}
	return u.productRepo.Delete(ctx, product.ID)
}

// RestoreUser reverses a soft deletion, returning the user to their
// pre-deletion status and reactivating the seller's catalog.
func (u *UserLifecycleUsecase) RestoreUser(ctx context.Context, userID, adminID uuid.UUID) (*RestorationResult, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != entities.UserStatusDeleted {
		return nil, domainerrors.InvalidState("user is not deleted", domainerrors.ErrUserNotDeleted)
	}

	restoredStatus := entities.UserStatusActive
	if user.OriginalStatus.Valid && user.OriginalStatus.String != "" {
		restoredStatus = entities.UserStatus(user.OriginalStatus.String)
	}

	user.Status = restoredStatus
	user.RestoredAt.SetValid(time.Now())
	user.RestoredBy.SetValid(adminID.String())
	if err := u.userRepo.MarkRestored(ctx, user); err != nil {
		return nil, err
	}

	u.writeAuditEntry(ctx, user, adminID, entities.AuditActionUserRestoration, "", "")

	var cascade []CascadeOutcome
	if user.Role == entities.UserRoleSeller {
		cascade = u.restoreSellerProducts(ctx, user.ID)
		u.syncSellerMirror(ctx, user.Email, restoredStatus)
	}

	return &RestorationResult{
		UserID:         user.ID,
		RestoredStatus: restoredStatus,
		Message:        fmt.Sprintf("User %s has been restored successfully", user.Name),
		Cascade:        cascade,
	}, nil
}

// restoreSellerProducts moves products back from seller_deleted to the
// status they held before the cascade, defaulting to approved when the
// previous status was not recorded.
func (u *UserLifecycleUsecase) restoreSellerProducts(ctx context.Context, sellerID uuid.UUID) []CascadeOutcome {
	var outcomes []CascadeOutcome

	products, err := u.productRepo.ListBySellerAndStatus(ctx, sellerID, entities.ProductStatusSellerDeleted)
	if err != nil {
		logger.Warn(ctx, "failed to list seller-deleted products for restore",
			zap.String("seller_id", sellerID.String()), zap.Error(err))
		return []CascadeOutcome{{Kind: "product", Applied: false, Error: err.Error()}}
	}
	for _, product := range products {
		target := entities.ProductStatusApproved
		if product.PreviousStatus.Valid && product.PreviousStatus.String != "" {
			target = entities.ProductStatus(product.PreviousStatus.String)
		}
		outcome := CascadeOutcome{Kind: "product", ID: product.ID}
		if err := u.productRepo.Restore(ctx, product.ID, target); err != nil {
			logger.Warn(ctx, "product restore step failed",
				zap.String("product_id", product.ID.String()), zap.Error(err))
			outcome.Error = err.Error()
		} else {
			outcome.Applied = true
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// ListDeletedUsers returns all soft-deleted users.
func (u *UserLifecycleUsecase) ListDeletedUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx, repositories.UserFilter{Status: entities.UserStatusDeleted})
}

// ListDeletionLogs returns the most recent deletion and restoration audit
// entries, newest first.
func (u *UserLifecycleUsecase) ListDeletionLogs(ctx context.Context, limit int) ([]*entities.AuditLogEntry, error) {
	return u.auditRepo.ListDeletionLogs(ctx, limit)
}

// GetDeletionHistory returns the audit trail for a single user.
func (u *UserLifecycleUsecase) GetDeletionHistory(ctx context.Context, userID uuid.UUID) ([]*entities.AuditLogEntry, error) {
	return u.auditRepo.ListByTargetUser(ctx, userID)
}

func (u *UserLifecycleUsecase) writeAuditEntry(ctx context.Context, user *entities.User, adminID uuid.UUID, action entities.AuditAction, deleteType entities.DeleteType, reason string) {
	entry := &entities.AuditLogEntry{
		Action:       action,
		TargetUserID: user.ID,
		TargetName:   user.Name,
		TargetEmail:  user.Email,
		TargetRole:   user.Role,
		TargetStatus: user.Status,
		AdminID:      adminID,
		DeleteType:   deleteType,
		Timestamp:    time.Now(),
	}
	if reason != "" {
		entry.Reason.SetValid(reason)
	}
	if err := u.auditRepo.Create(ctx, entry); err != nil {
		logger.Error(ctx, "failed to write audit entry",
			zap.String("action", string(action)),
			zap.String("target_user_id", user.ID.String()),
			zap.Error(err))
	}
}

func (u *UserLifecycleUsecase) syncSellerMirror(ctx context.Context, email string, status entities.UserStatus) {
	if err := u.sellerRepo.UpdateStatusByEmail(ctx, email, status); err != nil && err != domainerrors.ErrNotFound {
		logger.Warn(ctx, "failed to sync seller mirror status",
			zap.String("email", email), zap.Error(err))
	}
}
