package repository

import (
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"gorm.io/gorm"
)

// ReferenceRepository - чтение справочного графа для выбора
// продукта при записи в журнал
type ReferenceRepository interface {
	ListCategories() ([]*models.Category, error)
	FindFoodsByCategory(categoryID int) ([]*models.Food, error)
	FindPortionsByFood(foodID int) ([]*models.FoodPortion, error)
}

type referenceRepo struct {
	db *gorm.DB
}

func NewReferenceRepo(db *gorm.DB) ReferenceRepository {
	return &referenceRepo{db: db}
}

func (r *referenceRepo) ListCategories() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("description").Find(&categories).Error
	return categories, err
}

func (r *referenceRepo) FindFoodsByCategory(categoryID int) ([]*models.Food, error) {
	var foods []*models.Food
	err := r.db.Where("category_id = ?", categoryID).Order("name").Find(&foods).Error
	return foods, err
}

func (r *referenceRepo) FindPortionsByFood(foodID int) ([]*models.FoodPortion, error) {
	var portions []*models.FoodPortion
	err := r.db.Preload("MeasureUnit").Where("food_id = ?", foodID).Order("id").Find(&portions).Error
	return portions, err
}
