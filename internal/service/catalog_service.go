package service

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/internal/parser"
	"github.com/askvrtsv/eda/internal/repository"
)

// CatalogService - авторинг справочников: продукты, метки, блюда и их
// ингредиенты. Бот и нотификатор сюда не ходят, только админка и CLI.
type CatalogService struct {
	products repository.ProductRepository
	recipes  repository.RecipeRepository
	tags     repository.TagRepository
}

func NewCatalogService(
	products repository.ProductRepository,
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
) *CatalogService {
	return &CatalogService{
		products: products,
		recipes:  recipes,
		tags:     tags,
	}
}

// CreateProduct - создать продукт. show_in_grocery_list по умолчанию true.
func (s *CatalogService) CreateProduct(dto CreateProductDTO) (*models.Product, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	show := true
	if dto.ShowInGroceryList != nil {
		show = *dto.ShowInGroceryList
	}

	return s.products.Create(&models.Product{
		Name:              dto.Name,
		ShowInGroceryList: show,
	})
}

// ListProducts - список продуктов
func (s *CatalogService) ListProducts() ([]*models.Product, error) {
	return s.products.FindAll()
}

// DeleteProduct - удалить продукт вместе с его вхождениями в рецепты
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.products.Delete(id)
}

// CreateTag - создать метку
func (s *CatalogService) CreateTag(name string) (*models.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("название метки не может быть пустым")
	}
	return s.tags.Create(&models.Tag{Name: name})
}

// ListTags - список меток
func (s *CatalogService) ListTags() ([]*models.Tag, error) {
	return s.tags.FindAll()
}

// DeleteTag - удалить метку
func (s *CatalogService) DeleteTag(id uint) error {
	return s.tags.Delete(id)
}

// CreateRecipe создает блюдо. Метки, которых еще нет, создаются на лету.
func (s *CatalogService) CreateRecipe(dto CreateRecipeDTO) (*models.Recipe, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	numPortions := dto.NumPortions
	if numPortions == 0 {
		numPortions = 1
	}

	recipe := &models.Recipe{
		Name:        dto.Name,
		NumPortions: numPortions,
		HowTo:       dto.HowTo,
	}
	for _, tagName := range dto.Tags {
		tag, err := s.findOrCreateTag(tagName)
		if err != nil {
			return nil, err
		}
		recipe.Tags = append(recipe.Tags, *tag)
	}

	return s.recipes.Create(recipe)
}

// ListRecipes - список блюд с метками и ингредиентами
func (s *CatalogService) ListRecipes() ([]*models.Recipe, error) {
	return s.recipes.FindAll()
}

// GetRecipeByID - блюдо по ID
func (s *CatalogService) GetRecipeByID(id uint) (*models.Recipe, error) {
	return s.recipes.FindByID(id)
}

// DeleteRecipe - удалить блюдо вместе с ингредиентами
func (s *CatalogService) DeleteRecipe(id uint) error {
	return s.recipes.Delete(id)
}

// AddIngredient добавляет ингредиент в блюдо. Продукт ищется по ID либо
// по имени (и создается, если его нет).
func (s *CatalogService) AddIngredient(dto AddIngredientDTO) (*models.Ingredient, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	productID := dto.ProductID
	if productID == 0 {
		product, err := s.findOrCreateProduct(dto.Product)
		if err != nil {
			return nil, err
		}
		productID = product.ID
	}

	return s.recipes.AddIngredient(&models.Ingredient{
		RecipeID:  dto.RecipeID,
		ProductID: productID,
		Weight:    dto.Weight,
	})
}

// ImportReport - итог импорта ингредиентов из текста
type ImportReport struct {
	Imported int      `json:"imported"`
	Warnings []string `json:"warnings,omitempty"`
}

// ImportIngredients разбирает ингредиенты из свободного текста
// ("мука: 200 гр." по строке) и добавляет их в блюдо. Плохие строки
// пропускаются с предупреждением и не прерывают импорт.
func (s *CatalogService) ImportIngredients(recipeID uint, text string) (*ImportReport, error) {
	if _, err := s.recipes.FindByID(recipeID); err != nil {
		return nil, fmt.Errorf("блюдо не найдено: %w", err)
	}

	parsed := parser.Parse(text)
	report := &ImportReport{Warnings: parsed.Warnings}

	for _, ingredient := range parsed.Ingredients {
		product, err := s.findOrCreateProduct(ingredient.Name)
		if err != nil {
			return report, err
		}
		_, err = s.recipes.AddIngredient(&models.Ingredient{
			RecipeID:  recipeID,
			ProductID: product.ID,
			Weight:    int(math.Round(ingredient.Amount)),
		})
		if err != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("skipped %q: %v", ingredient.Name, err))
			continue
		}
		report.Imported++
	}

	return report, nil
}

func (s *CatalogService) findOrCreateProduct(name string) (*models.Product, error) {
	product, err := s.products.FindByName(name)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.products.Create(&models.Product{Name: name, ShowInGroceryList: true})
}

func (s *CatalogService) findOrCreateTag(name string) (*models.Tag, error) {
	tag, err := s.tags.FindByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.tags.Create(&models.Tag{Name: name})
}
