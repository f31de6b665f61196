package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Имена справочных CSV файлов FoodData Central
const (
	categoryFile       = "food_category.csv"
	measureUnitFile    = "measure_unit.csv"
	foundationFoodFile = "foundation_food.csv"
	foodFile           = "food.csv"
	nutrientFile       = "nutrient.csv"
	foodNutrientFile   = "food_nutrient.csv"
	foodPortionFile    = "food_portion.csv"
)

// Строки источников до нормализации. Имена полей повторяют
// колонки CSV, ключ продукта в источниках называется fdc_id.

type categoryRow struct {
	ID          int
	Code        string
	Description string
}

type measureUnitRow struct {
	ID   int
	Name string
}

type foodRow struct {
	FdcID       int
	Description string
	CategoryID  *int
}

type nutrientRow struct {
	ID       int
	Name     string
	UnitName string
}

type foodNutrientRow struct {
	FdcID      int
	NutrientID int
	Amount     *float64
}

type foodPortionRow struct {
	Amount        float64
	Modifier      string
	GramWeight    float64
	FdcID         int
	MeasureUnitID int
}

// forEachRecord читает CSV с заголовком и вызывает fn на каждую строку.
// Колонки ищутся по имени, лишние колонки источника игнорируются.
func forEachRecord(path string, columns []string, fn func(field func(string) string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%s: missing column %q", filepath.Base(path), name)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		line++

		field := func(name string) string {
			return strings.TrimSpace(record[index[name]])
		}
		if err := fn(field); err != nil {
			return fmt.Errorf("%s line %d: %w", filepath.Base(path), line, err)
		}
	}
	return nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// parseOptionalInt возвращает nil для пустого значения
func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseInt(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseFloat(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readCategories(path string) ([]categoryRow, error) {
	var rows []categoryRow
	err := forEachRecord(path, []string{"id", "code", "description"}, func(field func(string) string) error {
		id, err := parseInt(field("id"))
		if err != nil {
			return err
		}
		rows = append(rows, categoryRow{
			ID:          id,
			Code:        field("code"),
			Description: field("description"),
		})
		return nil
	})
	return rows, err
}

func readMeasureUnits(path string) ([]measureUnitRow, error) {
	var rows []measureUnitRow
	err := forEachRecord(path, []string{"id", "name"}, func(field func(string) string) error {
		id, err := parseInt(field("id"))
		if err != nil {
			return err
		}
		rows = append(rows, measureUnitRow{ID: id, Name: field("name")})
		return nil
	})
	return rows, err
}

// readFoundationIDs возвращает множество fdc_id продуктов, входящих
// в рабочий набор foundation foods. Этим множеством ограничиваются
// food, food_nutrient и food_portion.
func readFoundationIDs(path string) (map[int]bool, error) {
	ids := make(map[int]bool)
	err := forEachRecord(path, []string{"fdc_id"}, func(field func(string) string) error {
		id, err := parseInt(field("fdc_id"))
		if err != nil {
			return err
		}
		ids[id] = true
		return nil
	})
	return ids, err
}

func readFoods(path string) ([]foodRow, error) {
	var rows []foodRow
	err := forEachRecord(path, []string{"fdc_id", "description", "food_category_id"}, func(field func(string) string) error {
		id, err := parseInt(field("fdc_id"))
		if err != nil {
			return err
		}
		categoryID, err := parseOptionalInt(field("food_category_id"))
		if err != nil {
			return err
		}
		rows = append(rows, foodRow{
			FdcID:       id,
			Description: field("description"),
			CategoryID:  categoryID,
		})
		return nil
	})
	return rows, err
}

func readNutrients(path string) ([]nutrientRow, error) {
	var rows []nutrientRow
	err := forEachRecord(path, []string{"id", "name", "unit_name"}, func(field func(string) string) error {
		id, err := parseInt(field("id"))
		if err != nil {
			return err
		}
		rows = append(rows, nutrientRow{
			ID:       id,
			Name:     field("name"),
			UnitName: field("unit_name"),
		})
		return nil
	})
	return rows, err
}

func readFoodNutrients(path string) ([]foodNutrientRow, error) {
	var rows []foodNutrientRow
	err := forEachRecord(path, []string{"fdc_id", "nutrient_id", "amount"}, func(field func(string) string) error {
		fdcID, err := parseInt(field("fdc_id"))
		if err != nil {
			return err
		}
		nutrientID, err := parseInt(field("nutrient_id"))
		if err != nil {
			return err
		}
		amount, err := parseOptionalFloat(field("amount"))
		if err != nil {
			return err
		}
		rows = append(rows, foodNutrientRow{
			FdcID:      fdcID,
			NutrientID: nutrientID,
			Amount:     amount,
		})
		return nil
	})
	return rows, err
}

func readFoodPortions(path string) ([]foodPortionRow, error) {
	var rows []foodPortionRow
	columns := []string{"amount", "modifier", "gram_weight", "fdc_id", "measure_unit_id"}
	err := forEachRecord(path, columns, func(field func(string) string) error {
		amount, err := parseFloat(field("amount"))
		if err != nil {
			return err
		}
		gramWeight, err := parseFloat(field("gram_weight"))
		if err != nil {
			return err
		}
		fdcID, err := parseInt(field("fdc_id"))
		if err != nil {
			return err
		}
		measureUnitID, err := parseInt(field("measure_unit_id"))
		if err != nil {
			return err
		}
		rows = append(rows, foodPortionRow{
			Amount:        amount,
			Modifier:      field("modifier"),
			GramWeight:    gramWeight,
			FdcID:         fdcID,
			MeasureUnitID: measureUnitID,
		})
		return nil
	})
	return rows, err
}
