package models

import "gorm.io/gorm"

// Product - продукт, из которого готовятся блюда
type Product struct {
	gorm.Model
	Name string `gorm:"size:255;uniqueIndex;not null"`
	// Показывать ли продукт в списке покупок (соль, вода и т.п. - нет)
	ShowInGroceryList bool `gorm:"not null"`
}
