package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/config"
	handler "github.com/Rajesh25lab/payroll-phase3-v2/internal/handlers"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/middleware"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/repository"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/services/export"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	userRepo := repository.NewUserRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	auditRepo := repository.NewExportAuditRepository(db)

	exportService := export.NewService(batchRepo, paymentRepo, auditRepo, cfg.TallyCompany, log)

	authHandler := handler.NewAuthHandler(userRepo, cfg.JWTSecret, log)
	userHandler := handler.NewUserHandler(userRepo, log)
	batchHandler := handler.NewBatchHandler(batchRepo, paymentRepo, log)
	exportHandler := handler.NewExportHandler(exportService, cfg.ExportAllowedRoles, log)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWTSecret))

	// User management, admin only
	users := authed.Group("/users")
	users.Use(middleware.RequireRoles(models.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("", userHandler.Update)
	users.DELETE("", userHandler.Delete)

	// Batch and payment routes
	batches := authed.Group("/batches")
	batches.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleAccountant), batchHandler.Create)
	batches.GET("", batchHandler.List)
	batches.POST("/:id/payments", middleware.RequireRoles(models.RoleAdmin, models.RoleAccountant), batchHandler.AddPayments)
	batches.GET("/:id/payments", batchHandler.ListPayments)

	// File generation; any authenticated user unless EXPORT_ALLOWED_ROLES
	// narrows it
	authed.POST("/batch/generate-files", exportHandler.GenerateFiles)
}
