package importer

import (
	"fmt"
	"path/filepath"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"github.com/mozqueda-alejandro/nutrition-tracker/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 500

// Importer - одноразовая загрузка справочных CSV в целевую схему.
// Каждая таблица грузится только если она пуста, поэтому повторный
// запуск полного импорта безопасен. Проверка пустоты не атомарна
// относительно параллельных импортеров - это не поддерживается.
type Importer struct {
	db  *gorm.DB
	dir string
}

func New(db *gorm.DB, dir string) *Importer {
	return &Importer{db: db, dir: dir}
}

// Run выполняет полный импорт. Любая ошибка шага прерывает весь
// импорт; уже загруженные таблицы остаются (их защищает проверка
// пустоты при следующем запуске).
func (im *Importer) Run() error {
	foundation, err := readFoundationIDs(im.path(foundationFoodFile))
	if err != nil {
		return fmt.Errorf("read foundation ids: %w", err)
	}

	if err := im.importCategories(); err != nil {
		return err
	}
	if err := im.importMeasureUnits(); err != nil {
		return err
	}
	if err := im.importFoods(foundation); err != nil {
		return err
	}

	// nutrient.csv читается один раз: из него выводятся и единицы,
	// и нутриенты, и множество id для фильтрации food_nutrient.
	// Преобразование детерминировано, поэтому при повторном запуске
	// in-memory наборы совпадают с уже загруженными таблицами.
	nutrientRows, err := readNutrients(im.path(nutrientFile))
	if err != nil {
		return fmt.Errorf("read nutrients: %w", err)
	}
	units := buildNutrientUnits(nutrientRows)
	if err := im.importNutrientUnits(units); err != nil {
		return err
	}
	nutrients, err := buildNutrients(nutrientRows, units)
	if err != nil {
		return fmt.Errorf("resolve nutrient units: %w", err)
	}
	if err := im.importNutrients(nutrients); err != nil {
		return err
	}

	if err := im.importFoodNutrients(foundation, nutrients); err != nil {
		return err
	}
	if err := im.importFoodPortions(foundation); err != nil {
		return err
	}

	utils.Log.Info("Reference data import finished")
	return nil
}

func (im *Importer) path(name string) string {
	return filepath.Join(im.dir, name)
}

// tableEmpty - проверка "таблица пуста" перед загрузкой
func (im *Importer) tableEmpty(model interface{}) (bool, error) {
	var count int64
	if err := im.db.Model(model).Count(&count).Error; err != nil {
		return false, fmt.Errorf("probe table: %w", err)
	}
	return count == 0, nil
}

// insertRows грузит строки одной таблицы пачками.
// Ассоциации не трогаем - внешние ключи уже разрешены импортом.
func insertRows[T any](im *Importer, table string, rows []T) error {
	if len(rows) == 0 {
		utils.Log.Infof("No rows for %s, nothing to load", table)
		return nil
	}
	if err := im.db.Omit(clause.Associations).CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	utils.Log.Infof("Loaded %d rows into %s", len(rows), table)
	return nil
}

func (im *Importer) importCategories() error {
	empty, err := im.tableEmpty(&models.Category{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table category already populated, skipping")
		return nil
	}

	rows, err := readCategories(im.path(categoryFile))
	if err != nil {
		return fmt.Errorf("read categories: %w", err)
	}
	return insertRows(im, "category", buildCategories(rows))
}

func (im *Importer) importMeasureUnits() error {
	empty, err := im.tableEmpty(&models.MeasureUnit{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table measure_unit already populated, skipping")
		return nil
	}

	rows, err := readMeasureUnits(im.path(measureUnitFile))
	if err != nil {
		return fmt.Errorf("read measure units: %w", err)
	}
	return insertRows(im, "measure_unit", buildMeasureUnits(rows))
}

func (im *Importer) importFoods(foundation map[int]bool) error {
	empty, err := im.tableEmpty(&models.Food{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table food already populated, skipping")
		return nil
	}

	rows, err := readFoods(im.path(foodFile))
	if err != nil {
		return fmt.Errorf("read foods: %w", err)
	}
	return insertRows(im, "food", buildFoods(rows, foundation))
}

func (im *Importer) importNutrientUnits(units []models.NutrientUnit) error {
	empty, err := im.tableEmpty(&models.NutrientUnit{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table nutrient_unit already populated, skipping")
		return nil
	}
	return insertRows(im, "nutrient_unit", units)
}

func (im *Importer) importNutrients(nutrients []models.Nutrient) error {
	empty, err := im.tableEmpty(&models.Nutrient{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table nutrient already populated, skipping")
		return nil
	}
	return insertRows(im, "nutrient", nutrients)
}

func (im *Importer) importFoodNutrients(foundation map[int]bool, nutrients []models.Nutrient) error {
	empty, err := im.tableEmpty(&models.FoodNutrient{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table food_nutrient already populated, skipping")
		return nil
	}

	rows, err := readFoodNutrients(im.path(foodNutrientFile))
	if err != nil {
		return fmt.Errorf("read food nutrients: %w", err)
	}
	return insertRows(im, "food_nutrient", buildFoodNutrients(rows, foundation, nutrients))
}

func (im *Importer) importFoodPortions(foundation map[int]bool) error {
	empty, err := im.tableEmpty(&models.FoodPortion{})
	if err != nil {
		return err
	}
	if !empty {
		utils.Log.Info("Table food_portion already populated, skipping")
		return nil
	}

	rows, err := readFoodPortions(im.path(foodPortionFile))
	if err != nil {
		return fmt.Errorf("read food portions: %w", err)
	}
	return insertRows(im, "food_portion", buildFoodPortions(rows, foundation))
}
