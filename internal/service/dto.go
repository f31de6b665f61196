package service

import "time"

// AddLogDTO - входные данные записи журнала питания.
// Для типа 'g' Quantifier - граммы, ReferenceID - Food.ID.
// Для типа 'p' Quantifier - число порций, ReferenceID - FoodPortion.ID.
type AddLogDTO struct {
	DateTime        time.Time
	MeasurementType string
	Quantifier      float64
	ReferenceID     int
}
