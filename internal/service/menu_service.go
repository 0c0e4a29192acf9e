package service

import (
	"sort"
	"time"

	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/internal/repository"
)

// MenuService отвечает за меню: чтение для бота и нотификатора,
// авторинг для админки и сервисных команд.
type MenuService struct {
	repo repository.MenuRepository
}

func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// GetMenuAt возвращает блюда меню на дату, сгруппированные по приемам пищи.
// Приемы пищи без блюд в результат не попадают. Блюда внутри приема
// отсортированы по названию. Если меню на дату нет, наружу уходит
// gorm.ErrRecordNotFound - для вызывающих это штатная ситуация.
func (s *MenuService) GetMenuAt(date time.Time) (map[models.Mealtime][]string, error) {
	menu, err := s.repo.FindByDate(date)
	if err != nil {
		return nil, err
	}

	result := make(map[models.Mealtime][]string)
	for _, menuRecipe := range menu.MenuRecipes {
		result[menuRecipe.Mealtime] = append(result[menuRecipe.Mealtime], menuRecipe.Recipe.Name)
	}
	for _, names := range result {
		sort.Strings(names)
	}
	return result, nil
}

// GetGroceryList собирает продукты, нужные для всех меню в диапазоне дат
// (включительно). Продукты с show_in_grocery_list=false не попадают в
// список. Результат без дублей, отсортирован по алфавиту. Пустой диапазон -
// пустой список, не ошибка.
func (s *MenuService) GetGroceryList(from, to time.Time) ([]string, error) {
	menus, err := s.repo.FindByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, menu := range menus {
		for _, menuRecipe := range menu.MenuRecipes {
			for _, ingredient := range menuRecipe.Recipe.Ingredients {
				if !ingredient.Product.ShowInGroceryList {
					continue
				}
				seen[ingredient.Product.Name] = struct{}{}
			}
		}
	}

	products := make([]string, 0, len(seen))
	for name := range seen {
		products = append(products, name)
	}
	sort.Strings(products)
	return products, nil
}

// CreateMenu создает пустое меню на дату
func (s *MenuService) CreateMenu(date time.Time) (*models.Menu, error) {
	return s.repo.Create(&models.Menu{Date: date})
}

// ListMenus - все меню с блюдами, новые сверху
func (s *MenuService) ListMenus() ([]*models.Menu, error) {
	return s.repo.FindAll()
}

// AddRecipeToMenu добавляет блюдо в меню на прием пищи
func (s *MenuService) AddRecipeToMenu(dto AddMenuRecipeDTO) (*models.MenuRecipe, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	count := dto.Count
	if count == 0 {
		count = 1
	}

	return s.repo.AddRecipe(&models.MenuRecipe{
		MenuID:   dto.MenuID,
		RecipeID: dto.RecipeID,
		Mealtime: models.Mealtime(dto.Mealtime),
		Count:    count,
	})
}

// DeleteMenu удаляет меню вместе с его блюдами
func (s *MenuService) DeleteMenu(id uint) error {
	return s.repo.Delete(id)
}

// InsertDummyMenus создает пустые меню на дни вперед, где их еще нет,
// чтобы было что заполнять в админке. Возвращает число созданных меню.
func (s *MenuService) InsertDummyMenus(from time.Time, days int) (int, error) {
	created := 0
	for i := 0; i < days; i++ {
		date := models.DateOf(from).AddDate(0, 0, i)
		exists, err := s.repo.ExistsAt(date)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		if _, err := s.repo.Create(&models.Menu{Date: date}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// DeleteOldMenus удаляет меню старше olderThanDays дней.
// Возвращает число удаленных меню.
func (s *MenuService) DeleteOldMenus(now time.Time, olderThanDays int) (int64, error) {
	cutoff := models.DateOf(now).AddDate(0, 0, -olderThanDays)
	return s.repo.DeleteOlderThan(cutoff)
}
