package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opencanteen/canteen/internal/models"
)

// Open opens (or creates) the sqlite store at path and migrates the schema.
// The path is a parameter rather than a package global so tests can point
// separate stores at separate files.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Ingredient{},
		&models.Dish{},
		&models.DishIngredient{},
		&models.MenuEntry{},
		&models.Class{},
		&models.Student{},
		&models.Allergy{},
		&models.Hobby{},
		&models.Difficulty{},
	); err != nil {
		return nil, err
	}

	// Class identity index. SQLite treats NULLs as distinct in unique
	// indexes, so a plain (series, period, name) index would admit duplicate
	// unnamed classes; build it over COALESCE(name,'') instead. GORM cannot
	// express expression indexes from struct tags.
	if err := conn.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_classes_identity
		 ON classes(series, period, COALESCE(name,''))`,
	).Error; err != nil {
		return nil, err
	}

	return conn, nil
}
