package models

import "gorm.io/gorm"

// Recipe - блюдо с инструкцией и набором ингредиентов
type Recipe struct {
	gorm.Model
	Name        string       `gorm:"size:255;uniqueIndex;not null"`
	NumPortions int          `gorm:"not null;default:1"` // количество порций
	HowTo       string       `gorm:"type:text"`          // инструкция приготовления
	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// Ingredient - связка блюдо/продукт с весом.
// Пара (recipe, product) уникальна.
type Ingredient struct {
	gorm.Model
	RecipeID  uint    `gorm:"not null;uniqueIndex:idx_ingredients_recipe_product"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_ingredients_recipe_product"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Weight    int     `gorm:"not null"` // вес в граммах
}
