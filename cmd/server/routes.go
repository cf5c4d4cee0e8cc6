package main

import (
	"github.com/gin-gonic/gin"
	"harvest-admin.backend/internal/domain/entities"
	"harvest-admin.backend/internal/interfaces/http/handlers"
	"harvest-admin.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	sellerHandler       *handlers.SellerHandler
	productHandler      *handlers.ProductHandler
	transactionHandler  *handlers.TransactionHandler
	auditHandler        *handlers.AuditHandler
	dashboardHandler    *handlers.DashboardHandler
	notificationHandler *handlers.NotificationHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
		}

		// Admin console routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(string(entities.UserRoleAdmin)))
		{
			admin.GET("/users", d.userHandler.ListUsers)
			admin.GET("/users/deleted", d.userHandler.ListDeleted)
			admin.GET("/users/:id", d.userHandler.GetUser)
			admin.GET("/users/:id/history", d.userHandler.GetDeletionHistory)
			admin.GET("/users/:id/notifications", d.notificationHandler.ListByUser)
			admin.PUT("/users/:id/status", d.userHandler.UpdateStatus)
			admin.POST("/users/:id/delete", d.userHandler.DeleteUser)
			admin.POST("/users/:id/restore", d.userHandler.RestoreUser)

			admin.GET("/sellers/pending", d.sellerHandler.ListPending)
			admin.POST("/sellers/:id/approve", d.sellerHandler.Approve)
			admin.POST("/sellers/:id/reject", d.sellerHandler.Reject)

			admin.GET("/products", d.productHandler.List)
			admin.GET("/products/:id", d.productHandler.Get)
			admin.POST("/products/:id/approve", d.productHandler.Approve)
			admin.POST("/products/:id/reject", d.productHandler.Reject)
			admin.DELETE("/products/:id", d.productHandler.Delete)

			admin.GET("/transactions", d.transactionHandler.List)

			admin.GET("/audit-logs", d.auditHandler.List)

			admin.GET("/stats", d.dashboardHandler.GetStats)
			admin.GET("/activity", d.dashboardHandler.GetActivity)

			admin.GET("/notifications/stats", d.notificationHandler.Stats)
			admin.PUT("/notifications/:id/read", d.notificationHandler.MarkRead)
			admin.POST("/announcements", d.notificationHandler.Announce)
		}
	}
}
