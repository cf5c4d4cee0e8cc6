package usecases_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"harvest-admin.backend/internal/domain/entities"
	domainerrors "harvest-admin.backend/internal/domain/errors"
	"harvest-admin.backend/internal/domain/repositories"
	"harvest-admin.backend/internal/usecases"
)

func newNotificationUsecase() (*usecases.NotificationUsecase, *MockNotificationRepository, *MockUserRepository) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	return usecases.NewNotificationUsecase(notificationRepo, userRepo), notificationRepo, userRepo
}

func TestNotify_StoresRow(t *testing.T) {
	uc, notificationRepo, _ := newNotificationUsecase()
	userID := uuid.New()

	notificationRepo.On("Create", context.Background(), mock.MatchedBy(func(n *entities.Notification) bool {
		if n.UserID != userID || n.Type != entities.NotificationSellerApproval {
			return false
		}
		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(n.Data.JSON, &data))
		return data["source"] == "review"
	})).Return(nil).Once()

	uc.Notify(context.Background(), userID, entities.NotificationSellerApproval,
		"Approved", "Your account is approved", map[string]interface{}{"source": "review"})

	notificationRepo.AssertExpectations(t)
}

func TestNotify_SwallowsStoreFailure(t *testing.T) {
	uc, notificationRepo, _ := newNotificationUsecase()

	notificationRepo.On("Create", context.Background(), mock.Anything).
		Return(errors.New("store down")).Once()

	// must not panic or propagate
	uc.Notify(context.Background(), uuid.New(), entities.NotificationAccountUpdate, "t", "m", nil)
}

func TestAnnounce_SkipsDeletedUsers(t *testing.T) {
	uc, notificationRepo, userRepo := newNotificationUsecase()

	active := &entities.User{ID: uuid.New(), Status: entities.UserStatusActive}
	deleted := &entities.User{ID: uuid.New(), Status: entities.UserStatusDeleted}

	userRepo.On("List", context.Background(), repositories.UserFilter{}).
		Return([]*entities.User{active, deleted}, nil).Once()
	notificationRepo.On("Create", context.Background(), mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == active.ID && n.Type == entities.NotificationSystemAnnouncement
	})).Return(nil).Once()

	sent, err := uc.Announce(context.Background(), &entities.AnnouncementInput{
		Title:   "Maintenance window",
		Message: "The marketplace will be briefly unavailable tonight.",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	notificationRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestMarkRead_NotFound(t *testing.T) {
	uc, notificationRepo, _ := newNotificationUsecase()
	id := uuid.New()

	notificationRepo.On("MarkRead", context.Background(), id).Return(domainerrors.ErrNotFound).Once()

	err := uc.MarkRead(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
}

func TestStats_Passthrough(t *testing.T) {
	uc, notificationRepo, _ := newNotificationUsecase()

	stats := &entities.NotificationStats{Total: 7, Unread: 2, ByType: map[string]int64{"seller_approval": 3}}
	notificationRepo.On("Stats", context.Background()).Return(stats, nil).Once()

	got, err := uc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
