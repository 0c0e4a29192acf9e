package repository

import (
	"github.com/askvrtsv/eda/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) (*models.Recipe, error)
	FindAll() ([]*models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	FindByName(name string) (*models.Recipe, error)
	AddIngredient(ingredient *models.Ingredient) (*models.Ingredient, error)
	Delete(id uint) error
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(recipe *models.Recipe) (*models.Recipe, error) {
	err := r.db.Create(recipe).Error
	return recipe, err
}

func (r *recipeRepo) FindAll() ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.
		Preload("Tags").
		Preload("Ingredients.Product").
		Order("name").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Tags").
		Preload("Ingredients.Product").
		First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepo) FindByName(name string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Where("name = ?", name).First(&recipe).Error
	return &recipe, err
}

func (r *recipeRepo) AddIngredient(ingredient *models.Ingredient) (*models.Ingredient, error) {
	err := r.db.Create(ingredient).Error
	return ingredient, err
}

func (r *recipeRepo) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Recipe{}, id).Error
}
