package models

// Category - категория продуктов из справочника FoodData Central.
// Загружается из food_category.csv как есть, без преобразований.
type Category struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Description string `gorm:"type:text" json:"description"`
	Code        string `gorm:"type:varchar(20)" json:"code"`
}
