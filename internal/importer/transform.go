package importer

import (
	"fmt"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
)

// Чистые преобразования строк источников в строки целевых таблиц.
// Фильтрация по foundation-набору всегда идёт от множества fdc_id
// из исходного файла, а не от содержимого таблицы food.

func buildCategories(rows []categoryRow) []models.Category {
	out := make([]models.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Category{
			ID:          r.ID,
			Description: r.Description,
			Code:        r.Code,
		})
	}
	return out
}

func buildMeasureUnits(rows []measureUnitRow) []models.MeasureUnit {
	out := make([]models.MeasureUnit, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.MeasureUnit{ID: r.ID, Name: r.Name})
	}
	return out
}

// buildFoods - inner join food.csv на foundation-набор:
// продукты без foundation-строки отбрасываются.
func buildFoods(rows []foodRow, foundation map[int]bool) []models.Food {
	var out []models.Food
	for _, r := range rows {
		if !foundation[r.FdcID] {
			continue
		}
		out = append(out, models.Food{
			ID:         r.FdcID,
			Name:       r.Description,
			CategoryID: r.CategoryID,
		})
	}
	return out
}

// buildNutrientUnits выводит уникальные unit_name и назначает им
// плотные id 0..k-1 в порядке первого появления.
func buildNutrientUnits(rows []nutrientRow) []models.NutrientUnit {
	seen := make(map[string]bool)
	var out []models.NutrientUnit
	for _, r := range rows {
		if seen[r.UnitName] {
			continue
		}
		seen[r.UnitName] = true
		out = append(out, models.NutrientUnit{ID: len(out), Name: r.UnitName})
	}
	return out
}

// buildNutrients заменяет unit_name ссылкой на NutrientUnit.
// Единицы выводятся из того же источника, поэтому промах поиска
// невозможен по построению; на всякий случай это ошибка, а не NULL.
func buildNutrients(rows []nutrientRow, units []models.NutrientUnit) ([]models.Nutrient, error) {
	unitIDs := make(map[string]int, len(units))
	for _, u := range units {
		unitIDs[u.Name] = u.ID
	}

	out := make([]models.Nutrient, 0, len(rows))
	for _, r := range rows {
		unitID, ok := unitIDs[r.UnitName]
		if !ok {
			return nil, fmt.Errorf("nutrient %d: unknown unit %q", r.ID, r.UnitName)
		}
		out = append(out, models.Nutrient{
			ID:             r.ID,
			Name:           r.Name,
			NutrientUnitID: unitID,
		})
	}
	return out, nil
}

// buildFoodNutrients ограничивает строки foundation-набором, отбрасывает
// ссылки на нутриенты, не попавшие в итоговую таблицу nutrient,
// подставляет 0 вместо пропущенного amount и пересобирает id от 0.
func buildFoodNutrients(rows []foodNutrientRow, foundation map[int]bool, nutrients []models.Nutrient) []models.FoodNutrient {
	nutrientIDs := make(map[int]bool, len(nutrients))
	for _, n := range nutrients {
		nutrientIDs[n.ID] = true
	}

	var out []models.FoodNutrient
	for _, r := range rows {
		if !foundation[r.FdcID] || !nutrientIDs[r.NutrientID] {
			continue
		}
		amount := 0.0
		if r.Amount != nil {
			amount = *r.Amount
		}
		out = append(out, models.FoodNutrient{
			ID:         len(out),
			Amount:     amount,
			FoodID:     r.FdcID,
			NutrientID: r.NutrientID,
		})
	}
	return out
}

// buildFoodPortions ограничивает порции foundation-набором
// и пересобирает id от 0.
func buildFoodPortions(rows []foodPortionRow, foundation map[int]bool) []models.FoodPortion {
	var out []models.FoodPortion
	for _, r := range rows {
		if !foundation[r.FdcID] {
			continue
		}
		out = append(out, models.FoodPortion{
			ID:            len(out),
			Amount:        r.Amount,
			Modifier:      r.Modifier,
			GramWeight:    r.GramWeight,
			FoodID:        r.FdcID,
			MeasureUnitID: r.MeasureUnitID,
		})
	}
	return out
}
