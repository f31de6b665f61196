package repository

import (
	"testing"
	"time"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/database"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Одна in-memory база - одно соединение
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.CreateSchema(db))
	return db
}

// Минимальный справочный граф: продукт 7 с двумя нутриентами
// на 100 г и одной порцией весом 244 г
func seedReferenceData(t *testing.T, db *gorm.DB) {
	categoryID := 1
	require.NoError(t, db.Create(&models.Category{ID: 1, Description: "Dairy", Code: "100"}).Error)
	require.NoError(t, db.Create(&models.MeasureUnit{ID: 1000, Name: "cup"}).Error)
	require.NoError(t, db.Create(&models.Food{ID: 7, Name: "Milk", CategoryID: &categoryID}).Error)
	require.NoError(t, db.Create(&models.NutrientUnit{ID: 0, Name: "G"}).Error)
	require.NoError(t, db.Create(&models.Nutrient{ID: 1003, Name: "Protein", NutrientUnitID: 0}).Error)
	require.NoError(t, db.Create(&models.Nutrient{ID: 1004, Name: "Fat", NutrientUnitID: 0}).Error)
	require.NoError(t, db.Create(&models.FoodNutrient{ID: 0, Amount: 3.4, FoodID: 7, NutrientID: 1003}).Error)
	require.NoError(t, db.Create(&models.FoodNutrient{ID: 1, Amount: 1.0, FoodID: 7, NutrientID: 1004}).Error)
	require.NoError(t, db.Create(&models.FoodPortion{
		ID: 0, Amount: 1, Modifier: "1 cup", GramWeight: 244, FoodID: 7, MeasureUnitID: 1000,
	}).Error)
}

func TestAppendGramAndDailyNutrients(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	dateTime := time.Date(2021, 1, 2, 1, 0, 0, 0, time.UTC)
	err := repo.Append(dateTime, models.GramMeasurement{Amount: 50, FoodID: 7})
	require.NoError(t, err)

	nutrients, err := repo.DailyNutrients(time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, nutrients, 2)

	// 50 г => половина от содержания на 100 г
	assert.Equal(t, "Milk", nutrients[1].FoodName)
	assert.Equal(t, "Protein", nutrients[1].NutrientName)
	assert.InDelta(t, 1.7, nutrients[1].Amount, 1e-9)
	assert.Equal(t, "G", nutrients[1].Unit)
	assert.Equal(t, "Fat", nutrients[0].NutrientName)
	assert.InDelta(t, 0.5, nutrients[0].Amount, 1e-9)
}

func TestAppendGramSubtypeConsistency(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	dateTime := time.Date(2021, 1, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(dateTime, models.GramMeasurement{Amount: 100, FoodID: 7}))

	var entry models.FoodLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, models.MeasurementTypeGram, entry.MeasurementType)

	// Ровно одна детальная строка с тем же id, вторая таблица пуста
	var gram models.GramMeasurement
	require.NoError(t, db.First(&gram, entry.ID).Error)
	assert.Equal(t, entry.ID, gram.ID)

	var portionCount int64
	require.NoError(t, db.Model(&models.PortionMeasurement{}).Count(&portionCount).Error)
	assert.Zero(t, portionCount)
}

func TestAppendPortionAndDailyNutrients(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	dateTime := time.Date(2021, 1, 3, 9, 30, 0, 0, time.UTC)
	err := repo.Append(dateTime, models.PortionMeasurement{PortionSize: 2, FoodPortionID: 0})
	require.NoError(t, err)

	var entry models.FoodLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, models.MeasurementTypePortion, entry.MeasurementType)

	var gramCount int64
	require.NoError(t, db.Model(&models.GramMeasurement{}).Count(&gramCount).Error)
	assert.Zero(t, gramCount)

	nutrients, err := repo.DailyNutrients(time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, nutrients, 2)

	// 2 порции по 244 г => 488 г => коэффициент 4.88
	assert.InDelta(t, 3.4*4.88, nutrients[1].Amount, 1e-9)
	assert.InDelta(t, 1.0*4.88, nutrients[0].Amount, 1e-9)
}

func TestAppendUnknownFoodRollsBack(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	dateTime := time.Date(2021, 1, 2, 1, 0, 0, 0, time.UTC)
	err := repo.Append(dateTime, models.GramMeasurement{Amount: 50, FoodID: 999})
	assert.Error(t, err)

	// Базовая строка не должна пережить откат
	var logCount int64
	require.NoError(t, db.Model(&models.FoodLog{}).Count(&logCount).Error)
	assert.Zero(t, logCount)
}

func TestDailyNutrientsEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	nutrients, err := repo.DailyNutrients(time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, nutrients)
}

func TestDailyNutrientsDayGranularity(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	require.NoError(t, repo.Append(time.Date(2021, 1, 2, 23, 59, 0, 0, time.UTC),
		models.GramMeasurement{Amount: 100, FoodID: 7}))
	require.NoError(t, repo.Append(time.Date(2021, 1, 3, 0, 1, 0, 0, time.UTC),
		models.GramMeasurement{Amount: 200, FoodID: 7}))

	nutrients, err := repo.DailyNutrients(time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, nutrients, 2)
	assert.InDelta(t, 3.4, nutrients[1].Amount, 1e-9, "only the 100 g event falls on Jan 2")
}

func TestDailyNutrientsSumsSameFood(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	require.NoError(t, repo.Append(time.Date(2021, 1, 2, 8, 0, 0, 0, time.UTC),
		models.GramMeasurement{Amount: 50, FoodID: 7}))
	require.NoError(t, repo.Append(time.Date(2021, 1, 2, 20, 0, 0, 0, time.UTC),
		models.GramMeasurement{Amount: 150, FoodID: 7}))

	nutrients, err := repo.DailyNutrients(time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, nutrients, 2)
	assert.InDelta(t, 3.4*2, nutrients[1].Amount, 1e-9)
}

func TestAppendAllSkipsInvalidEntries(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	repo := NewFoodLogRepo(db)

	entries := []LogEntry{
		{time.Date(2021, 1, 2, 8, 0, 0, 0, time.UTC), models.GramMeasurement{Amount: 50, FoodID: 7}},
		{time.Date(2021, 1, 2, 9, 0, 0, 0, time.UTC), models.GramMeasurement{Amount: 50, FoodID: 999}},
		{time.Date(2021, 1, 2, 10, 0, 0, 0, time.UTC), models.PortionMeasurement{PortionSize: 1, FoodPortionID: 0}},
	}

	inserted := repo.AppendAll(entries)

	assert.Equal(t, 2, inserted)
	var logCount int64
	require.NoError(t, db.Model(&models.FoodLog{}).Count(&logCount).Error)
	assert.Equal(t, int64(2), logCount)
}
