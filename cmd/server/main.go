package main

import (
	"net/http"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/config"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalf("database: %v", err)
	}

	db.AutoMigrate(
		&models.User{},
		&models.Batch{},
		&models.Payment{},
		&models.ExportAuditLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
