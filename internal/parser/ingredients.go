// Package parser разбирает ингредиенты из свободного текста.
// Формат строки: "название: количество единица", например "мука: 200 гр.".
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Допустимые единицы измерения
const (
	UnitPieces = "шт."
	UnitGrams  = "гр."
)

var lineRe = regexp.MustCompile(`^(?P<name>.+?):\s*(?P<amount>\d+(?:[.,]\d+)?)\s+(?P<unit>\S+)\s*$`)

// Ingredient - успешно разобранная строка
type Ingredient struct {
	Name   string
	Amount float64
	Unit   string
}

// Result - результат разбора многострочного текста.
// Плохие строки не прерывают разбор, а попадают в Warnings.
type Result struct {
	Ingredients []Ingredient
	Warnings    []string
}

// ParseLine разбирает одну строку
func ParseLine(line string) (Ingredient, error) {
	match := lineRe.FindStringSubmatch(line)
	if match == nil {
		return Ingredient{}, fmt.Errorf("bad ingredient format: %q", line)
	}

	name := strings.TrimSpace(match[1])
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", "."), 64)
	if err != nil {
		return Ingredient{}, fmt.Errorf("bad ingredient amount in %q: %w", line, err)
	}

	unit := match[3]
	if unit != UnitPieces && unit != UnitGrams {
		return Ingredient{}, fmt.Errorf("unknown unit %q in %q", unit, line)
	}

	return Ingredient{Name: name, Amount: amount, Unit: unit}, nil
}

// Parse разбирает текст построчно. Пустые строки пропускаются.
func Parse(text string) Result {
	var result Result
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ingredient, err := ParseLine(line)
		if err != nil {
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}
		result.Ingredients = append(result.Ingredients, ingredient)
	}
	return result
}
