package repository

import (
	"github.com/askvrtsv/eda/internal/models"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) (*models.Tag, error)
	FindAll() ([]*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	Delete(id uint) error
}

type tagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) Create(tag *models.Tag) (*models.Tag, error) {
	err := r.db.Create(tag).Error
	return tag, err
}

func (r *tagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

func (r *tagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepo) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Tag{}, id).Error
}
