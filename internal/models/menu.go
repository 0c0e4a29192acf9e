package models

import (
	"time"

	"gorm.io/gorm"
)

// Mealtime - прием пищи
type Mealtime string

const (
	MealtimeBreakfast Mealtime = "breakfast"
	MealtimeLunch     Mealtime = "lunch"
	MealtimeDinner    Mealtime = "dinner"
)

// Mealtimes - приемы пищи в порядке показа
var Mealtimes = []Mealtime{MealtimeBreakfast, MealtimeLunch, MealtimeDinner}

// Label возвращает русское название приема пищи
func (m Mealtime) Label() string {
	switch m {
	case MealtimeBreakfast:
		return "завтрак"
	case MealtimeLunch:
		return "обед"
	case MealtimeDinner:
		return "ужин"
	}
	return string(m)
}

// Valid проверяет, что значение входит в допустимый набор
func (m Mealtime) Valid() bool {
	switch m {
	case MealtimeBreakfast, MealtimeLunch, MealtimeDinner:
		return true
	}
	return false
}

// Menu - меню на конкретную дату. Дата уникальна.
type Menu struct {
	gorm.Model
	Date        time.Time    `gorm:"uniqueIndex;not null"`
	MenuRecipes []MenuRecipe `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// MenuRecipe - блюдо в меню с привязкой к приему пищи
type MenuRecipe struct {
	gorm.Model
	MenuID   uint     `gorm:"not null"`
	RecipeID uint     `gorm:"not null"`
	Recipe   Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Mealtime Mealtime `gorm:"size:16;not null"`
	Count    float64  `gorm:"not null;default:1"` // множитель порций
}

// DateOf обрезает время до календарной даты (UTC).
// Все даты меню хранятся и сравниваются в таком виде.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
