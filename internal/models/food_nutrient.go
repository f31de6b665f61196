package models

// FoodNutrient - содержание нутриента в 100 г продукта.
// ID пересобирается плотной последовательностью от 0 после фильтрации.
type FoodNutrient struct {
	ID         int      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Amount     float64  `gorm:"not null;default:0" json:"amount"`
	FoodID     int      `gorm:"not null;index" json:"food_id"`
	Food       Food     `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	NutrientID int      `gorm:"not null;index" json:"nutrient_id"`
	Nutrient   Nutrient `gorm:"foreignKey:NutrientID" json:"nutrient,omitempty"`
}
