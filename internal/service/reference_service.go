package service

import (
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/repository"
)

type ReferenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

// ListCategories - категории, отсортированные по описанию
func (s *ReferenceService) ListCategories() ([]*models.Category, error) {
	return s.repo.ListCategories()
}

// ListFoods - продукты категории, отсортированные по имени
func (s *ReferenceService) ListFoods(categoryID int) ([]*models.Food, error) {
	return s.repo.FindFoodsByCategory(categoryID)
}

// ListPortions - порции продукта для измерения типа 'p'
func (s *ReferenceService) ListPortions(foodID int) ([]*models.FoodPortion, error) {
	return s.repo.FindPortionsByFood(foodID)
}
