package models

// FoodPortion - именованная порция продукта с весом в граммах
// для нормализации. ID пересобирается плотной последовательностью от 0.
type FoodPortion struct {
	ID            int         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Amount        float64     `json:"amount"`
	Modifier      string      `gorm:"type:text" json:"modifier"`
	GramWeight    float64     `gorm:"not null" json:"gram_weight"`
	FoodID        int         `gorm:"not null;index" json:"food_id"`
	Food          Food        `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	MeasureUnitID int         `gorm:"not null" json:"measure_unit_id"`
	MeasureUnit   MeasureUnit `gorm:"foreignKey:MeasureUnitID" json:"measure_unit,omitempty"`
}
