// config.go
package config

import (
	"os"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ReadConfig reads the configuration from the YAML file and applies
// environment overrides for the secrets.
func ReadConfig(filePath string) (*entity.Config, error) {
	var config entity.Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.String("path", filePath), zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	// Secrets and deploy-specific values come from the environment when set.
	config.JWTSecretKey = GetEnv("JWT_SECRET", config.JWTSecretKey)
	config.PostgresConfig.Host = GetEnv("DB_HOST", config.PostgresConfig.Host)
	config.PostgresConfig.User = GetEnv("DB_USER", config.PostgresConfig.User)
	config.PostgresConfig.Password = GetEnv("DB_PASSWORD", config.PostgresConfig.Password)
	config.PostgresConfig.DBName = GetEnv("DB_NAME", config.PostgresConfig.DBName)
	config.PostgresConfig.Port = GetEnv("DB_PORT", config.PostgresConfig.Port)
	config.Server.Port = GetEnv("PORT", config.Server.Port)

	return &config, nil
}

// GetEnv returns the environment variable or a fallback when unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
