package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"harvest-admin.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:         &handlers.AuthHandler{},
		userHandler:         &handlers.UserHandler{},
		sellerHandler:       &handlers.SellerHandler{},
		productHandler:      &handlers.ProductHandler{},
		transactionHandler:  &handlers.TransactionHandler{},
		auditHandler:        &handlers.AuditHandler{},
		dashboardHandler:    &handlers.DashboardHandler{},
		notificationHandler: &handlers.NotificationHandler{},
		authMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	routes := r.Routes()
	if len(routes) < 20 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/refresh"},
		{"GET", "/api/v1/admin/users"},
		{"GET", "/api/v1/admin/users/deleted"},
		{"POST", "/api/v1/admin/users/:id/delete"},
		{"POST", "/api/v1/admin/users/:id/restore"},
		{"GET", "/api/v1/admin/sellers/pending"},
		{"POST", "/api/v1/admin/sellers/:id/approve"},
		{"POST", "/api/v1/admin/products/:id/reject"},
		{"DELETE", "/api/v1/admin/products/:id"},
		{"GET", "/api/v1/admin/transactions"},
		{"GET", "/api/v1/admin/audit-logs"},
		{"GET", "/api/v1/admin/stats"},
		{"GET", "/api/v1/admin/activity"},
		{"POST", "/api/v1/admin/announcements"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_AdminRoutesGoThroughMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         &handlers.AuthHandler{},
		userHandler:         &handlers.UserHandler{},
		sellerHandler:       &handlers.SellerHandler{},
		productHandler:      &handlers.ProductHandler{},
		transactionHandler:  &handlers.TransactionHandler{},
		auditHandler:        &handlers.AuditHandler{},
		dashboardHandler:    &handlers.DashboardHandler{},
		notificationHandler: &handlers.NotificationHandler{},
		authMiddleware: func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		},
	})

	// Admin routes are blocked when the middleware rejects the request.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from middleware, got %d", rec.Code)
	}

	// Health stays public.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
