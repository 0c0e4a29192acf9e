package repository

import (
	"time"

	"github.com/askvrtsv/eda/internal/models"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(menu *models.Menu) (*models.Menu, error)
	FindByDate(date time.Time) (*models.Menu, error)
	FindByDateRange(from, to time.Time) ([]*models.Menu, error)
	FindAll() ([]*models.Menu, error)
	ExistsAt(date time.Time) (bool, error)
	AddRecipe(menuRecipe *models.MenuRecipe) (*models.MenuRecipe, error)
	DeleteOlderThan(date time.Time) (int64, error)
	Delete(id uint) error
}

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Create(menu *models.Menu) (*models.Menu, error) {
	menu.Date = models.DateOf(menu.Date)
	err := r.db.Create(menu).Error
	return menu, err
}

func (r *menuRepo) FindByDate(date time.Time) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.
		Preload("MenuRecipes.Recipe").
		Where("date = ?", models.DateOf(date)).
		First(&menu).Error
	return &menu, err
}

// FindByDateRange возвращает меню в диапазоне дат (включительно)
// вместе с блюдами, ингредиентами и продуктами - для списка покупок.
func (r *menuRepo) FindByDateRange(from, to time.Time) ([]*models.Menu, error) {
	var menus []*models.Menu
	err := r.db.
		Preload("MenuRecipes.Recipe.Ingredients.Product").
		Where("date >= ? AND date <= ?", models.DateOf(from), models.DateOf(to)).
		Order("date").
		Find(&menus).Error
	return menus, err
}

func (r *menuRepo) FindAll() ([]*models.Menu, error) {
	var menus []*models.Menu
	err := r.db.
		Preload("MenuRecipes.Recipe").
		Order("date desc").
		Find(&menus).Error
	return menus, err
}

func (r *menuRepo) ExistsAt(date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Menu{}).
		Where("date = ?", models.DateOf(date)).
		Count(&count).Error
	return count > 0, err
}

func (r *menuRepo) AddRecipe(menuRecipe *models.MenuRecipe) (*models.MenuRecipe, error) {
	err := r.db.Create(menuRecipe).Error
	return menuRecipe, err
}

func (r *menuRepo) DeleteOlderThan(date time.Time) (int64, error) {
	result := r.db.Unscoped().
		Where("date < ?", models.DateOf(date)).
		Delete(&models.Menu{})
	return result.RowsAffected, result.Error
}

func (r *menuRepo) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Menu{}, id).Error
}
