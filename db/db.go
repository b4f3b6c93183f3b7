package db

import (
	"fmt"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/logger"
	"github.com/Aiosol/ccf-bakery-sub001/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// InitDB opens the PostgreSQL connection and runs migrations.
func InitDB(c *entity.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(
		&model.InventoryItem{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.PriceChange{},
		&model.User{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations completed")
	return nil
}

// Close closes the underlying sql connection.
func Close() {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing the database connection", zap.Error(err))
	}
}

// GetDBInstance returns the shared gorm handle.
func GetDBInstance() *gorm.DB {
	return db
}
