package models

import "gorm.io/gorm"

// Tag - метка блюда ("быстро", "праздничное" и т.п.)
type Tag struct {
	gorm.Model
	Name string `gorm:"size:64;uniqueIndex;not null"`
}
