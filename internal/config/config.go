package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	TallyCompany string
	// ExportAllowedRoles restricts who may trigger file generation. Empty
	// means any authenticated user, which matches the default deployment.
	ExportAllowedRoles []string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("TALLY_COMPANY", "Company Name")

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		TallyCompany: viper.GetString("TALLY_COMPANY"),
	}

	if roles := viper.GetString("EXPORT_ALLOWED_ROLES"); roles != "" {
		for _, r := range strings.Split(roles, ",") {
			if r = strings.TrimSpace(r); r != "" {
				cfg.ExportAllowedRoles = append(cfg.ExportAllowedRoles, r)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}
