package repository

import (
	"github.com/askvrtsv/eda/internal/models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) (*models.Product, error)
	FindAll() ([]*models.Product, error)
	FindByName(name string) (*models.Product, error)
	Delete(id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(product *models.Product) (*models.Product, error) {
	err := r.db.Create(product).Error
	return product, err
}

func (r *productRepo) FindAll() ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.Order("name").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByName(name string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("name = ?", name).First(&product).Error
	return &product, err
}

func (r *productRepo) Delete(id uint) error {
	// Жесткое удаление, чтобы сработал каскад на ингредиенты
	return r.db.Unscoped().Delete(&models.Product{}, id).Error
}
