package models

// MeasureUnit - единица измерения порции (cup, tbsp и т.д.)
type MeasureUnit struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"type:varchar(100)" json:"name"`
}
