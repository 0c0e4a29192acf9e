package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/askvrtsv/eda/internal/database"
	"github.com/askvrtsv/eda/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)

	err = database.AutoMigrateTables(db,
		&models.Product{},
		&models.Tag{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Menu{},
		&models.MenuRecipe{},
	)
	assert.NoError(t, err)

	return db
}

func TestMenuRepoNormalizesDates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepo(db)

	// Записали с временем суток, ищем по другому времени суток
	_, err := repo.Create(&models.Menu{Date: time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)})
	assert.NoError(t, err)

	menu, err := repo.FindByDate(time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-10", menu.Date.Format("2006-01-02"))
}

func TestMenuRepoFindByDateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepo(db)

	_, err := repo.FindByDate(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuRepoFindByDateRangeInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepo(db)

	for day := 9; day <= 12; day++ {
		_, err := repo.Create(&models.Menu{Date: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)})
		assert.NoError(t, err)
	}

	menus, err := repo.FindByDateRange(
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)
	assert.Len(t, menus, 2)
	assert.Equal(t, 10, menus[0].Date.Day())
	assert.Equal(t, 11, menus[1].Date.Day())
}

func TestMenuRepoDeleteCascadesMenuRecipes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepo(db)

	recipe := &models.Recipe{Name: "Суп", NumPortions: 1}
	assert.NoError(t, db.Create(recipe).Error)

	menu, err := repo.Create(&models.Menu{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)})
	assert.NoError(t, err)

	_, err = repo.AddRecipe(&models.MenuRecipe{
		MenuID:   menu.ID,
		RecipeID: recipe.ID,
		Mealtime: models.MealtimeLunch,
		Count:    1,
	})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(menu.ID))

	var count int64
	assert.NoError(t, db.Model(&models.MenuRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMenuRepoDeleteOlderThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepo(db)

	for day := 1; day <= 5; day++ {
		_, err := repo.Create(&models.Menu{Date: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)})
		assert.NoError(t, err)
	}

	deleted, err := repo.DeleteOlderThan(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	exists, err := repo.ExistsAt(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.True(t, exists)
}
