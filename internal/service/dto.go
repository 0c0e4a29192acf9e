package service

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/askvrtsv/eda/internal/models"
)

// Product DTOs
type CreateProductDTO struct {
	Name string `json:"name"`
	// nil означает значение по умолчанию (true)
	ShowInGroceryList *bool `json:"show_in_grocery_list"`
}

func (d CreateProductDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 255)),
	)
}

// Recipe DTOs
type CreateRecipeDTO struct {
	Name        string   `json:"name"`
	NumPortions int      `json:"num_portions"`
	HowTo       string   `json:"how_to"`
	Tags        []string `json:"tags"`
}

func (d CreateRecipeDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.NumPortions, validation.Min(0)),
	)
}

type AddIngredientDTO struct {
	RecipeID  uint   `json:"-"`
	ProductID uint   `json:"product_id"`
	Weight    int    `json:"weight"`
	Product   string `json:"product"` // имя продукта, альтернатива product_id
}

func (d AddIngredientDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Weight, validation.Required, validation.Min(1)),
		validation.Field(&d.ProductID, validation.Required.When(d.Product == "").Error("either product_id or product is required")),
	)
}

// Menu DTOs
type CreateMenuDTO struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (d CreateMenuDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Date, validation.Required, validation.Date("2006-01-02")),
	)
}

type AddMenuRecipeDTO struct {
	MenuID   uint    `json:"-"`
	RecipeID uint    `json:"recipe_id"`
	Mealtime string  `json:"mealtime"` // breakfast, lunch, dinner
	Count    float64 `json:"count"`
}

func (d AddMenuRecipeDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.RecipeID, validation.Required),
		validation.Field(&d.Mealtime, validation.Required, validation.By(validMealtime)),
		validation.Field(&d.Count, validation.Min(0.0)),
	)
}

func validMealtime(value interface{}) error {
	name, _ := value.(string)
	if !models.Mealtime(name).Valid() {
		return validation.NewError("validation_mealtime", "must be one of: breakfast, lunch, dinner")
	}
	return nil
}
