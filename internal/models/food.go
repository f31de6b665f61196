package models

// Food - продукт из набора foundation foods. ID - родной ключ
// источника (fdc_id), категория может отсутствовать.
type Food struct {
	ID         int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	CategoryID *int      `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
