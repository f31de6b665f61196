package service

import (
	"fmt"
	"time"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/repository"
	"github.com/mozqueda-alejandro/nutrition-tracker/pkg/utils"
)

type FoodLogService struct {
	repo repository.FoodLogRepository
}

func NewFoodLogService(repo repository.FoodLogRepository) *FoodLogService {
	return &FoodLogService{repo: repo}
}

// AddLog - добавить запись в журнал. Ошибка записи логируется
// и возвращается значением, наружу ничего не паникует.
func (s *FoodLogService) AddLog(dto AddLogDTO) error {
	if dto.Quantifier <= 0 {
		return fmt.Errorf("quantifier must be positive, got %v", dto.Quantifier)
	}

	var m models.Measurement
	switch dto.MeasurementType {
	case models.MeasurementTypeGram:
		m = models.GramMeasurement{Amount: dto.Quantifier, FoodID: dto.ReferenceID}
	case models.MeasurementTypePortion:
		m = models.PortionMeasurement{PortionSize: dto.Quantifier, FoodPortionID: dto.ReferenceID}
	default:
		return fmt.Errorf("unknown measurement type %q", dto.MeasurementType)
	}

	if err := s.repo.Append(dto.DateTime, m); err != nil {
		utils.Log.Errorf("Food log insert failed: %v", err)
		return err
	}
	return nil
}

// SeedLogs - пакетная загрузка журнала, невалидные записи пропускаются
func (s *FoodLogService) SeedLogs(entries []repository.LogEntry) int {
	return s.repo.AppendAll(entries)
}

// DailyNutrients - потребление нутриентов за календарную дату
func (s *FoodLogService) DailyNutrients(day time.Time) ([]repository.DailyNutrient, error) {
	return s.repo.DailyNutrients(day)
}
