package menu

import (
	"strconv"
	"strings"
)

// parseNonNegativeInt возвращает -1 для нечисел и отрицательных значений
func parseNonNegativeInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// inRange парсит s и возвращает число, если оно попадает
// в [minVal, maxVal], иначе -1
func inRange(s string, minVal, maxVal int) int {
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}
	n := parseNonNegativeInt(s)
	if n == -1 || n < minVal || n > maxVal {
		return -1
	}
	return n
}

// parsePositiveFloat возвращает -1 для нечисел и значений <= 0
func parsePositiveFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return -1
	}
	return v
}
