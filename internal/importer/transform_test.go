package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFoodsDropsNonFoundation(t *testing.T) {
	rows := []foodRow{
		{FdcID: 7, Description: "Milk", CategoryID: intPtr(1)},
		{FdcID: 99, Description: "Ignored"},
		{FdcID: 8, Description: "Apple"},
	}
	foundation := map[int]bool{7: true, 8: true}

	foods := buildFoods(rows, foundation)

	assert.Len(t, foods, 2)
	assert.Equal(t, 7, foods[0].ID)
	assert.Equal(t, "Milk", foods[0].Name)
	assert.Equal(t, 1, *foods[0].CategoryID)
	assert.Nil(t, foods[1].CategoryID)
}

func TestBuildNutrientUnitsDenseAndUnique(t *testing.T) {
	rows := []nutrientRow{
		{ID: 1003, Name: "Protein", UnitName: "G"},
		{ID: 1004, Name: "Fat", UnitName: "G"},
		{ID: 1087, Name: "Calcium", UnitName: "MG"},
		{ID: 1104, Name: "Vitamin A", UnitName: "IU"},
		{ID: 1110, Name: "Vitamin D", UnitName: "IU"},
	}

	units := buildNutrientUnits(rows)

	assert.Len(t, units, 3)
	names := make(map[string]bool)
	for i, u := range units {
		assert.Equal(t, i, u.ID, "ids must be a dense 0-based sequence")
		assert.False(t, names[u.Name], "unit names must be unique")
		names[u.Name] = true
	}
}

func TestBuildNutrientsResolvesUnit(t *testing.T) {
	rows := []nutrientRow{
		{ID: 1003, Name: "Protein", UnitName: "G"},
		{ID: 1087, Name: "Calcium", UnitName: "MG"},
	}
	units := buildNutrientUnits(rows)

	nutrients, err := buildNutrients(rows, units)

	assert.NoError(t, err)
	assert.Len(t, nutrients, 2)
	assert.Equal(t, 1003, nutrients[0].ID)
	assert.Equal(t, units[0].ID, nutrients[0].NutrientUnitID)
	assert.Equal(t, units[1].ID, nutrients[1].NutrientUnitID)
}

func TestBuildNutrientsRejectsUnknownUnit(t *testing.T) {
	rows := []nutrientRow{{ID: 1003, Name: "Protein", UnitName: "G"}}

	_, err := buildNutrients(rows, nil)

	assert.Error(t, err)
}

func TestBuildFoodNutrientsFiltersAndResequences(t *testing.T) {
	rows := []foodNutrientRow{
		{FdcID: 7, NutrientID: 1003, Amount: floatPtr(3.4)},
		{FdcID: 7, NutrientID: 9999, Amount: floatPtr(5)}, // нутриент выпал выше по конвейеру
		{FdcID: 99, NutrientID: 1003, Amount: floatPtr(1)}, // не foundation
		{FdcID: 8, NutrientID: 1003, Amount: nil},
	}
	foundation := map[int]bool{7: true, 8: true}
	nutrients, err := buildNutrients([]nutrientRow{{ID: 1003, Name: "Protein", UnitName: "G"}},
		buildNutrientUnits([]nutrientRow{{ID: 1003, Name: "Protein", UnitName: "G"}}))
	assert.NoError(t, err)

	got := buildFoodNutrients(rows, foundation, nutrients)

	assert.Len(t, got, 2)
	for i, fn := range got {
		assert.Equal(t, i, fn.ID, "ids must be a dense 0-based sequence")
		assert.True(t, foundation[fn.FoodID])
		assert.Equal(t, 1003, fn.NutrientID)
	}
	assert.Equal(t, 3.4, got[0].Amount)
	assert.Equal(t, 0.0, got[1].Amount, "missing amount defaults to 0")
}

func TestBuildFoodPortionsFiltersAndResequences(t *testing.T) {
	rows := []foodPortionRow{
		{Amount: 1, Modifier: "1 cup", GramWeight: 244, FdcID: 7, MeasureUnitID: 1000},
		{Amount: 1, Modifier: "1 cup", GramWeight: 100, FdcID: 99, MeasureUnitID: 1000},
		{Amount: 0.5, Modifier: "half", GramWeight: 122, FdcID: 7, MeasureUnitID: 1000},
	}
	foundation := map[int]bool{7: true}

	got := buildFoodPortions(rows, foundation)

	assert.Len(t, got, 2)
	assert.Equal(t, 0, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
	assert.Equal(t, 244.0, got[0].GramWeight)
	assert.Equal(t, 7, got[1].FoodID)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
