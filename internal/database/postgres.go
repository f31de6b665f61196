package database

import (
	"fmt"
	"log"
	"time"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgres подключается к PostgreSQL с retry логикой
func NewPostgres(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	log.Printf("Attempting to connect to database...")

	// Пытаемся подключиться 15 раз с увеличением паузы
	for i := 1; i <= 15; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})

		if err == nil {
			// Проверяем живое подключение
			sqlDB, _ := db.DB()
			if pingErr := sqlDB.Ping(); pingErr == nil {
				log.Printf("✅ Database connected successfully (attempt %d)", i)
				return db, nil
			}
		}

		log.Printf("Attempt %d failed: %v", i, err)

		// Экспоненциальная backoff: 1, 2, 4, 8 секунд...
		waitTime := time.Duration(1<<uint(i-1)) * time.Second
		if waitTime > 10*time.Second {
			waitTime = 10 * time.Second
		}
		time.Sleep(waitTime)
	}

	return nil, fmt.Errorf("failed to connect to database after 15 attempts: %w", err)
}

// schemaModels - все таблицы в порядке зависимостей (родители раньше детей)
func schemaModels() []interface{} {
	return []interface{}{
		&models.Category{},
		&models.MeasureUnit{},
		&models.Food{},
		&models.NutrientUnit{},
		&models.Nutrient{},
		&models.FoodNutrient{},
		&models.FoodPortion{},
		&models.FoodLog{},
		&models.GramMeasurement{},
		&models.PortionMeasurement{},
	}
}

// CreateSchema создает таблицы (семантика CREATE IF NOT EXISTS,
// безопасно вызывать на уже инициализированной базе)
func CreateSchema(db *gorm.DB) error {
	log.Println("Running database migrations...")

	for _, model := range schemaModels() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model: %w", err)
		}
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// DropSchema удаляет все таблицы - полный сброс базы.
// Порядок обратный, чтобы не упереться во внешние ключи.
func DropSchema(db *gorm.DB) error {
	log.Println("Dropping all tables...")

	tables := schemaModels()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	log.Println("✅ All tables dropped")
	return nil
}
