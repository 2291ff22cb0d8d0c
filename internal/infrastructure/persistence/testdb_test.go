package persistence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/restopos/backend/internal/infrastructure/persistence/models"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.CompanyModel{},
		&models.CustomerModel{},
		&models.CategoryModel{},
		&models.AttributeGroupModel{},
		&models.AttributeValueModel{},
		&models.ProductModel{},
		&models.ProductCategoryModel{},
		&models.ProductAttributeLineModel{},
		&models.ProductAttributeLineValueModel{},
		&models.SessionModel{},
		&models.OrderModel{},
		&models.OrderLineModel{},
		&models.PreparationStageModel{},
		&models.OrderTechSettingsModel{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
