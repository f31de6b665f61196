package models

import "time"

// Типы измерений журнала питания
const (
	MeasurementTypeGram    = "g"
	MeasurementTypePortion = "p"
)

// FoodLog - базовая запись журнала питания (append-only).
// На каждую запись существует ровно одна детальная строка,
// выбранная по MeasurementType, с тем же id.
type FoodLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DateTime        time.Time `gorm:"column:date_time;not null;index" json:"date_time"`
	MeasurementType string    `gorm:"type:char(1);not null;check:measurement_type IN ('g','p')" json:"measurement_type"`
}

// Measurement - тегированное объединение двух видов измерений.
// Запись в журнал создаёт базовую строку и диспетчеризует по тегу
// ровно одну детальную строку в одной транзакции.
type Measurement interface {
	MeasurementType() string
}

// GramMeasurement - измерение массой продукта в граммах.
// ID совпадает с FoodLog.ID (общий ключ супертип/подтип).
type GramMeasurement struct {
	ID     uint    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Amount float64 `gorm:"not null" json:"amount"`
	FoodID int     `gorm:"not null;index" json:"food_id"`
	Food   Food    `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

func (GramMeasurement) MeasurementType() string { return MeasurementTypeGram }

// PortionMeasurement - измерение количеством именованных порций.
type PortionMeasurement struct {
	ID            uint        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	PortionSize   float64     `gorm:"not null" json:"portion_size"`
	FoodPortionID int         `gorm:"not null;index" json:"food_portion_id"`
	FoodPortion   FoodPortion `gorm:"foreignKey:FoodPortionID" json:"food_portion,omitempty"`
}

func (PortionMeasurement) MeasurementType() string { return MeasurementTypePortion }
