package models

// NutrientUnit - единица измерения нутриента. Таблица производная:
// id назначается плотной последовательностью 0..k-1 по уникальным
// unit_name из nutrient.csv, по одной строке на имя.
type NutrientUnit struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// Nutrient - нутриент из nutrient.csv, unit_name заменён ссылкой
// на NutrientUnit.
type Nutrient struct {
	ID             int          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string       `gorm:"type:text;not null" json:"name"`
	NutrientUnitID int          `gorm:"not null;index" json:"nutrient_unit_id"`
	NutrientUnit   NutrientUnit `gorm:"foreignKey:NutrientUnitID" json:"nutrient_unit,omitempty"`
}
