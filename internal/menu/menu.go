package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mozqueda-alejandro/nutrition-tracker/internal/models"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/service"
	"github.com/olekukonko/tablewriter"
)

// Сигналы навигации при выборе продукта
const (
	choiceBack = -2
	choiceNone = -1
)

// Menu - интерактивное консольное меню трекера
type Menu struct {
	foodLogService   *service.FoodLogService
	referenceService *service.ReferenceService
	in               *bufio.Reader
	out              io.Writer
	eof              bool // ввод закрыт, все промпты сворачиваются к выходу
}

func New(foodLogService *service.FoodLogService, referenceService *service.ReferenceService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		foodLogService:   foodLogService,
		referenceService: referenceService,
		in:               bufio.NewReader(in),
		out:              out,
	}
}

// Run - главный цикл меню
func (m *Menu) Run() {
	fmt.Fprintln(m.out, "-- Nutrition Tracker --")

	for {
		fmt.Fprintln(m.out, "[1] Add food log")
		fmt.Fprintln(m.out, "[2] View daily nutrients")
		fmt.Fprintln(m.out, "[0] Exit")

		switch m.promptChoice("Enter choice", 0, 2) {
		case 1:
			m.addFoodLog()
		case 2:
			m.viewDailyNutrients()
		default:
			// 0 или закрытый ввод
			return
		}
	}
}

// addFoodLog - выбор продукта через категорию, затем вид измерения,
// количество, дата/время и подтверждение
func (m *Menu) addFoodLog() {
	foodID := m.pickFood()
	if foodID == choiceNone {
		return
	}

	dto := service.AddLogDTO{ReferenceID: foodID}

	fmt.Fprintln(m.out, "[1] By grams")
	fmt.Fprintln(m.out, "[2] By portion")
	switch m.promptChoice("Enter measurement type", 1, 2) {
	case 2:
		portionID, size, ok := m.pickPortion(foodID)
		if !ok {
			return
		}
		dto.MeasurementType = models.MeasurementTypePortion
		dto.ReferenceID = portionID
		dto.Quantifier = size
	case 1:
		// Нижняя граница 1: ноль граммов сервис всё равно отклонит
		grams := m.promptChoice("Enter gram amount (1-1000)", 1, 1000)
		if grams == choiceNone {
			return
		}
		dto.MeasurementType = models.MeasurementTypeGram
		dto.Quantifier = float64(grams)
	default:
		return
	}

	dto.DateTime = m.promptDateTime()
	if m.eof {
		return
	}

	if !m.confirm("Do you want to add this log?") {
		return
	}
	if err := m.foodLogService.AddLog(dto); err != nil {
		fmt.Fprintln(m.out, "Failed to add log:", err)
		return
	}
	fmt.Fprintln(m.out, "Log inserted successfully")
}

// pickFood - таблица категорий, затем таблица продуктов категории.
// Пользователю показываются плотные номера строк, наружу уходит
// настоящий id из справочника.
func (m *Menu) pickFood() int {
	for {
		categories, err := m.referenceService.ListCategories()
		if err != nil {
			fmt.Fprintln(m.out, "Failed to load categories:", err)
			return choiceNone
		}
		if len(categories) == 0 {
			fmt.Fprintln(m.out, "No categories found, run the import first")
			return choiceNone
		}

		m.renderCategories(categories)
		idx := m.promptChoice("Enter category ID [#]", 0, len(categories)-1)
		if idx == choiceNone {
			return choiceNone
		}

		foodID := m.pickFoodFromCategory(categories[idx].ID)
		if foodID == choiceBack {
			continue
		}
		return foodID
	}
}

func (m *Menu) pickFoodFromCategory(categoryID int) int {
	foods, err := m.referenceService.ListFoods(categoryID)
	if err != nil {
		fmt.Fprintln(m.out, "Failed to load foods:", err)
		return choiceNone
	}
	if len(foods) == 0 {
		fmt.Fprintln(m.out, "No foods found in this category")
		return choiceBack
	}

	m.renderFoods(foods)
	for {
		input := m.promptLine("Enter food ID [#] or use 'b' to go back")
		if m.eof {
			return choiceNone
		}
		if input == "b" {
			return choiceBack
		}
		idx := inRange(input, 0, len(foods)-1)
		if idx == -1 {
			fmt.Fprintf(m.out, "Please enter a number between 0 and %d.\n", len(foods)-1)
			continue
		}
		return foods[idx].ID
	}
}

// pickPortion - выбор именованной порции и количества порций
func (m *Menu) pickPortion(foodID int) (portionID int, size float64, ok bool) {
	portions, err := m.referenceService.ListPortions(foodID)
	if err != nil {
		fmt.Fprintln(m.out, "Failed to load portions:", err)
		return 0, 0, false
	}
	if len(portions) == 0 {
		fmt.Fprintln(m.out, "No portions found for this food")
		return 0, 0, false
	}

	m.renderPortions(portions)
	idx := m.promptChoice("Enter portion ID [#]", 0, len(portions)-1)
	if idx == choiceNone {
		return 0, 0, false
	}

	for {
		input := m.promptLine("Enter portion count")
		if m.eof {
			return 0, 0, false
		}
		if v := parsePositiveFloat(input); v > 0 {
			return portions[idx].ID, v, true
		}
		fmt.Fprintln(m.out, "Please enter a positive number.")
	}
}

// viewDailyNutrients - таблица нутриентов за выбранную дату
func (m *Menu) viewDailyNutrients() {
	day := m.promptDate()
	if m.eof {
		return
	}

	nutrients, err := m.foodLogService.DailyNutrients(day)
	if err != nil {
		fmt.Fprintln(m.out, "Failed to fetch daily nutrients:", err)
		return
	}
	if len(nutrients) == 0 {
		fmt.Fprintln(m.out, "No food logs for", day.Format("2006-01-02"))
		return
	}

	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"Food", "Nutrient", "Amount", "Unit"})
	for _, n := range nutrients {
		table.Append([]string{
			n.FoodName,
			n.NutrientName,
			strconv.FormatFloat(n.Amount, 'f', 2, 64),
			n.Unit,
		})
	}
	table.Render()
}

func (m *Menu) renderCategories(categories []*models.Category) {
	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"ID", "Description"})
	for i, c := range categories {
		table.Append([]string{strconv.Itoa(i), c.Description})
	}
	table.Render()
}

func (m *Menu) renderFoods(foods []*models.Food) {
	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"ID", "Name"})
	for i, f := range foods {
		table.Append([]string{strconv.Itoa(i), f.Name})
	}
	table.Render()
}

func (m *Menu) renderPortions(portions []*models.FoodPortion) {
	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"ID", "Amount", "Unit", "Modifier", "Grams"})
	for i, p := range portions {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			p.MeasureUnit.Name,
			p.Modifier,
			strconv.FormatFloat(p.GramWeight, 'f', 1, 64),
		})
	}
	table.Render()
}

func (m *Menu) promptLine(prompt string) string {
	if m.eof {
		return ""
	}
	fmt.Fprintf(m.out, "%s: ", prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		// stdin закрыт - больше не читаем, промпты возвращают "выход"
		m.eof = true
		return ""
	}
	return strings.TrimSpace(line)
}

// promptChoice - число в [low, high]; choiceNone при закрытом вводе
func (m *Menu) promptChoice(prompt string, low, high int) int {
	for !m.eof {
		n := inRange(m.promptLine(prompt), low, high)
		if n != -1 {
			return n
		}
		if m.eof {
			break
		}
		fmt.Fprintf(m.out, "Please enter a number between %d and %d.\n", low, high)
	}
	return choiceNone
}

// promptDate - дата YYYY-MM-DD, 't' подставляет сегодняшнюю
func (m *Menu) promptDate() time.Time {
	for !m.eof {
		input := m.promptLine("Enter date (YYYY-MM-DD) or use 't' for today's date")
		if m.eof {
			break
		}
		if input == "t" {
			now := time.Now()
			return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		}
		day, err := time.ParseInLocation("2006-01-02", input, time.Local)
		if err == nil {
			return day
		}
		fmt.Fprintln(m.out, "Invalid date format. Please enter date in YYYY-MM-DD format.")
	}
	return time.Time{}
}

// promptDateTime - дата плюс время HH:MM, 'n' подставляет текущее время
func (m *Menu) promptDateTime() time.Time {
	day := m.promptDate()
	for !m.eof {
		input := m.promptLine("Enter time (HH:MM) or use 'n' for now")
		if m.eof {
			break
		}
		if input == "n" {
			now := time.Now()
			return time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), 0, 0, time.Local)
		}
		t, err := time.Parse("15:04", input)
		if err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
		}
		fmt.Fprintln(m.out, "Invalid time format. Please enter time in HH:MM format.")
	}
	return day
}

func (m *Menu) confirm(prompt string) bool {
	for !m.eof {
		switch m.promptLine(prompt + " [y/n]") {
		case "y", "Y":
			return true
		case "n", "N":
			return false
		}
	}
	return false
}
