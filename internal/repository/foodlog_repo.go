package repository

import (
	"fmt"
	"time"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"github.com/mozqueda-alejandro/nutrition-tracker/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyNutrient - строка ответа на запрос дневного потребления
type DailyNutrient struct {
	FoodName     string  `json:"food_name"`
	NutrientName string  `json:"nutrient_name"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
}

// LogEntry - запись для пакетной загрузки журнала
type LogEntry struct {
	DateTime    time.Time
	Measurement models.Measurement
}

// FoodLogRepository - append-only журнал измерений.
// Записи никогда не обновляются и не удаляются.
type FoodLogRepository interface {
	Append(dateTime time.Time, m models.Measurement) error
	AppendAll(entries []LogEntry) int
	DailyNutrients(day time.Time) ([]DailyNutrient, error)
}

type foodLogRepo struct {
	db *gorm.DB
}

func NewFoodLogRepo(db *gorm.DB) FoodLogRepository {
	return &foodLogRepo{db: db}
}

// Append вставляет базовую строку журнала и ровно одну детальную
// строку с тем же id в одной транзакции. При любой ошибке транзакция
// откатывается и ошибка возвращается вызывающему.
func (r *foodLogRepo) Append(dateTime time.Time, m models.Measurement) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		entry := models.FoodLog{
			DateTime:        dateTime,
			MeasurementType: m.MeasurementType(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		switch detail := m.(type) {
		case models.GramMeasurement:
			detail.ID = entry.ID
			return tx.Omit(clause.Associations).Create(&detail).Error
		case models.PortionMeasurement:
			detail.ID = entry.ID
			return tx.Omit(clause.Associations).Create(&detail).Error
		default:
			return fmt.Errorf("unknown measurement type %q", m.MeasurementType())
		}
	})
	if err != nil {
		return fmt.Errorf("append food log: %w", err)
	}
	return nil
}

// AppendAll пишет записи по одной; неудачные пропускаются,
// остальные сохраняются. Возвращает число вставленных.
func (r *foodLogRepo) AppendAll(entries []LogEntry) int {
	inserted := 0
	for _, e := range entries {
		if err := r.Append(e.DateTime, e.Measurement); err != nil {
			utils.Log.Errorf("Skipping invalid log %s (%s): %v",
				e.DateTime.Format("2006-01-02 15:04:05"), e.Measurement.MeasurementType(), err)
			continue
		}
		inserted++
	}
	return inserted
}

// Оба вида измерений нормализуются к граммам (порция - это
// portion_size * gram_weight), масштабируют содержание нутриента
// на 100 г и суммируются по продукту и нутриенту.
const dailyNutrientsQuery = `
SELECT food_name, nutrient_name, SUM(amount) AS amount, unit
FROM (
    SELECT f.name AS food_name,
           n.name AS nutrient_name,
           fn.amount * gm.amount / 100.0 AS amount,
           nu.name AS unit
    FROM food_logs fl
    JOIN gram_measurements gm ON gm.id = fl.id
    JOIN foods f ON f.id = gm.food_id
    JOIN food_nutrients fn ON fn.food_id = gm.food_id
    JOIN nutrients n ON n.id = fn.nutrient_id
    JOIN nutrient_units nu ON nu.id = n.nutrient_unit_id
    WHERE fl.measurement_type = 'g' AND DATE(fl.date_time) = ?
    UNION ALL
    SELECT f.name,
           n.name,
           fn.amount * (pm.portion_size * fp.gram_weight) / 100.0,
           nu.name
    FROM food_logs fl
    JOIN portion_measurements pm ON pm.id = fl.id
    JOIN food_portions fp ON fp.id = pm.food_portion_id
    JOIN foods f ON f.id = fp.food_id
    JOIN food_nutrients fn ON fn.food_id = fp.food_id
    JOIN nutrients n ON n.id = fn.nutrient_id
    JOIN nutrient_units nu ON nu.id = n.nutrient_unit_id
    WHERE fl.measurement_type = 'p' AND DATE(fl.date_time) = ?
) daily
GROUP BY food_name, nutrient_name, unit
ORDER BY food_name, nutrient_name`

// DailyNutrients возвращает потребление за календарные сутки,
// время внутри дня игнорируется. Пустой день - пустой срез, не ошибка.
func (r *foodLogRepo) DailyNutrients(day time.Time) ([]DailyNutrient, error) {
	date := day.Format("2006-01-02")

	results := make([]DailyNutrient, 0)
	if err := r.db.Raw(dailyNutrientsQuery, date, date).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("daily nutrients for %s: %w", date, err)
	}
	return results, nil
}
