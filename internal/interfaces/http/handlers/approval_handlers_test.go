package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/usecases"
)

func newApprovalRouter(users *userRepoStub, products *productRepoStub) (*gin.Engine, *notificationRepoStub) {
	notifications := &notificationRepoStub{}
	approval := usecases.NewApprovalUsecase(
		users,
		sellerRepoStub{},
		products,
		usecases.NewNotificationUsecase(notifications, users),
	)
	sh := NewSellerHandler(approval)
	ph := NewProductHandler(usecases.NewProductUsecase(products), approval)

	r := gin.New()
	r.GET("/sellers/pending", sh.ListPending)
	r.POST("/sellers/:id/approve", sh.Approve)
	r.POST("/sellers/:id/reject", sh.Reject)
	r.GET("/products", ph.List)
	r.GET("/products/:id", ph.Get)
	r.POST("/products/:id/approve", ph.Approve)
	r.POST("/products/:id/reject", ph.Reject)
	r.DELETE("/products/:id", ph.Delete)
	return r, notifications
}

func TestSellerHandler_ApproveFlow(t *testing.T) {
	seller := &entities.User{ID: uuid.New(), Email: "sari@harvest.test", Name: "Sari", Role: entities.UserRoleSeller, Status: entities.UserStatusPending}
	users := newUserRepoStub(seller)
	r, notifications := newApprovalRouter(users, newProductRepoStub())

	req := httptest.NewRequest(http.MethodGet, "/sellers/pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("sari@harvest.test")) {
		t.Fatalf("unexpected pending list: %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/sellers/"+seller.ID.String()+"/approve", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if seller.Status != entities.UserStatusApproved {
		t.Fatalf("seller not approved: %s", seller.Status)
	}
	if len(notifications.notifications) != 1 || notifications.notifications[0].Type != entities.NotificationSellerApproval {
		t.Fatalf("unexpected notifications: %+v", notifications.notifications)
	}
}

func TestSellerHandler_Approve_NotPending(t *testing.T) {
	seller := &entities.User{ID: uuid.New(), Role: entities.UserRoleSeller, Status: entities.UserStatusApproved}
	r, _ := newApprovalRouter(newUserRepoStub(seller), newProductRepoStub())

	req := httptest.NewRequest(http.MethodPost, "/sellers/"+seller.ID.String()+"/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSellerHandler_Reject_InvalidID(t *testing.T) {
	r, _ := newApprovalRouter(newUserRepoStub(), newProductRepoStub())

	req := httptest.NewRequest(http.MethodPost, "/sellers/nope/reject", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestProductHandler_ApproveNotifiesSellerAndBuyers(t *testing.T) {
	seller := &entities.User{ID: uuid.New(), Email: "sari@harvest.test", Role: entities.UserRoleSeller, Status: entities.UserStatusApproved}
	buyer := &entities.User{ID: uuid.New(), Email: "budi@harvest.test", Role: entities.UserRoleBuyer, Status: entities.UserStatusActive}
	product := &entities.Product{ID: uuid.New(), SellerID: seller.ID, Name: "Beras Organik", Status: entities.ProductStatusPending}
	r, notifications := newApprovalRouter(newUserRepoStub(seller, buyer), newProductRepoStub(product))

	req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID.String()+"/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if product.Status != entities.ProductStatusApproved {
		t.Fatalf("product not approved: %s", product.Status)
	}
	if len(notifications.notifications) != 2 {
		t.Fatalf("expected seller plus buyer notifications, got %d", len(notifications.notifications))
	}
}

func TestProductHandler_ListByStatus(t *testing.T) {
	sellerID := uuid.New()
	pending := &entities.Product{ID: uuid.New(), SellerID: sellerID, Name: "Cabai Merah", Status: entities.ProductStatusPending}
	approved := &entities.Product{ID: uuid.New(), SellerID: sellerID, Name: "Tomat Segar", Status: entities.ProductStatusApproved}
	r, _ := newApprovalRouter(newUserRepoStub(), newProductRepoStub(pending, approved))

	req := httptest.NewRequest(http.MethodGet, "/products?status=pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.Bytes()
	if !bytes.Contains(body, []byte("Cabai Merah")) || bytes.Contains(body, []byte("Tomat Segar")) {
		t.Fatalf("unexpected product list: %s", body)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	product := &entities.Product{ID: uuid.New(), SellerID: uuid.New(), Status: entities.ProductStatusApproved}
	products := newProductRepoStub(product)
	r, _ := newApprovalRouter(newUserRepoStub(), products)

	req := httptest.NewRequest(http.MethodDelete, "/products/"+product.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if product.Status != entities.ProductStatusDeleted {
		t.Fatalf("product not deleted: %s", product.Status)
	}

	// second delete hits the already-deleted guard
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/"+product.ID.String(), nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on repeat delete, got %d", w.Code)
	}
}
