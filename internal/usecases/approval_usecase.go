package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/pkg/logger"
)

// ApprovalUsecase handles seller and product approval workflows
type ApprovalUsecase struct {
	userRepo    repositories.UserRepository
	sellerRepo  repositories.SellerRepository
	productRepo repositories.ProductRepository
	notifier    Notifier
}

// NewApprovalUsecase creates a new approval usecase
func NewApprovalUsecase(
	userRepo repositories.UserRepository,
	sellerRepo repositories.SellerRepository,
	productRepo repositories.ProductRepository,
	notifier Notifier,
) *ApprovalUsecase {
	return &ApprovalUsecase{
		userRepo:    userRepo,
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// ListPendingSellers returns seller accounts awaiting review.
func (u *ApprovalUsecase) ListPendingSellers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx, repositories.UserFilter{
		Role:   entities.UserRoleSeller,
		Status: entities.UserStatusPending,
	})
}

// ApproveSeller moves a pending seller to approved and notifies them.
func (u *ApprovalUsecase) ApproveSeller(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.reviewSeller(ctx, userID, entities.UserStatusApproved)
}

// RejectSeller moves a pending seller to rejected and notifies them.
func (u *ApprovalUsecase) RejectSeller(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.reviewSeller(ctx, userID, entities.UserStatusRejected)
}

func (u *ApprovalUsecase) reviewSeller(ctx context.Context, userID uuid.UUID, decision entities.UserStatus) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleSeller {
		return nil, domainerrors.BadRequest("user is not a seller")
	}
	if user.Status != entities.UserStatusPending {
		return nil, domainerrors.InvalidState("seller is not pending review", domainerrors.ErrInvalidStatus)
	}

	if err := u.userRepo.UpdateStatus(ctx, userID, decision); err != nil {
		return nil, err
	}
	user.Status = decision

	// The mirror is denormalized convenience data; a sync failure is not
	// worth failing the review over.
	if err := u.sellerRepo.UpdateStatusByEmail(ctx, user.Email, decision); err != nil && err != domainerrors.ErrNotFound {
		logger.Warn(ctx, "failed to sync seller mirror status", zap.String("email", user.Email), zap.Error(err))
	}

	if decision == entities.UserStatusApproved {
		u.notifier.Notify(ctx, user.ID, entities.NotificationSellerApproval,
			"Seller account approved",
			"Congratulations! Your seller account has been approved. You can now list your produce.",
			nil)
	} else {
		u.notifier.Notify(ctx, user.ID, entities.NotificationSellerRejection,
			"Seller account rejected",
			"Your seller application was not approved. Contact support for details.",
			nil)
	}

	return user, nil
}

// UpdateUserStatus is the generic status flip used by the admin console
// (suspend, reactivate). Deletion goes through the lifecycle usecase.
func (u *ApprovalUsecase) UpdateUserStatus(ctx context.Context, userID uuid.UUID, status entities.UserStatus) (*entities.User, error) {
	switch status {
	case entities.UserStatusActive, entities.UserStatusPending, entities.UserStatusApproved,
		entities.UserStatusRejected, entities.UserStatusSuspended:
	default:
		return nil, domainerrors.BadRequest("unsupported status value")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted() {
		return nil, domainerrors.InvalidState("deleted users must be restored first", domainerrors.ErrInvalidStatus)
	}

	if err := u.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}
	user.Status = status

	if user.Role == entities.UserRoleSeller {
		if err := u.sellerRepo.UpdateStatusByEmail(ctx, user.Email, status); err != nil && err != domainerrors.ErrNotFound {
			logger.Warn(ctx, "failed to sync seller mirror status", zap.String("email", user.Email), zap.Error(err))
		}
	}

	u.notifier.Notify(ctx, user.ID, entities.NotificationAccountUpdate,
		"Account status updated",
		fmt.Sprintf("Your account status is now %s.", status),
		nil)

	return user, nil
}

// ApproveProduct moves a pending product to approved, notifies its seller
// and announces the new listing to buyers.
func (u *ApprovalUsecase) ApproveProduct(ctx context.Context, productID uuid.UUID) (*entities.Product, error) {
	product, err := u.reviewProduct(ctx, productID, entities.ProductStatusApproved)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, product.SellerID, entities.NotificationProductApproval,
		"Product approved",
		fmt.Sprintf("Your product %q is now live.", product.Name),
		map[string]interface{}{"productId": product.ID.String()})

	u.announceListingToBuyers(ctx, product)

	return product, nil
}

// RejectProduct moves a pending product to rejected and notifies its seller.
func (u *ApprovalUsecase) RejectProduct(ctx context.Context, productID uuid.UUID) (*entities.Product, error) {
	product, err := u.reviewProduct(ctx, productID, entities.ProductStatusRejected)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, product.SellerID, entities.NotificationProductRejection,
		"Product rejected",
		fmt.Sprintf("Your product %q was not approved.", product.Name),
		map[string]interface{}{"productId": product.ID.String()})

	return product, nil
}

func (u *ApprovalUsecase) reviewProduct(ctx context.Context, productID uuid.UUID, decision entities.ProductStatus) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != entities.ProductStatusPending {
		return nil, domainerrors.InvalidState("product is not pending review", domainerrors.ErrInvalidStatus)
	}
	if err := u.productRepo.UpdateStatus(ctx, productID, decision); err != nil {
		return nil, err
	}
	product.Status = decision
	return product, nil
}

func (u *ApprovalUsecase) announceListingToBuyers(ctx context.Context, product *entities.Product) {
	buyers, err := u.userRepo.List(ctx, repositories.UserFilter{
		Role:   entities.UserRoleBuyer,
		Status: entities.UserStatusActive,
	})
	if err != nil {
		logger.Warn(ctx, "failed to list buyers for listing announcement", zap.Error(err))
		return
	}
	for _, buyer := range buyers {
		u.notifier.Notify(ctx, buyer.ID, entities.NotificationSystemAnnouncement,
			"New produce available",
			fmt.Sprintf("%s is now available in %s.", product.Name, product.Category),
			map[string]interface{}{"productId": product.ID.String()})
	}
}
