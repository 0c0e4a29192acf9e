package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/askvrtsv/eda/internal/service"
)

// SetupRoutes настраивает CRUD админки. Меню и справочники заполняются
// только отсюда - бот и нотификатор базу не пишут.
func SetupRoutes(r *gin.Engine,
	catalogService *service.CatalogService,
	menuService *service.MenuService,
) {
	adminGroup := r.Group("/admin")

	// Продукты
	adminGroup.GET("/products", func(c *gin.Context) {
		products, err := catalogService.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	})

	adminGroup.POST("/products", func(c *gin.Context) {
		var dto service.CreateProductDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product, err := catalogService.CreateProduct(dto)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	})

	adminGroup.DELETE("/products/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if err := catalogService.DeleteProduct(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Метки
	adminGroup.GET("/tags", func(c *gin.Context) {
		tags, err := catalogService.ListTags()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tags)
	})

	adminGroup.POST("/tags", func(c *gin.Context) {
		var dto struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tag, err := catalogService.CreateTag(dto.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, tag)
	})

	adminGroup.DELETE("/tags/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if err := catalogService.DeleteTag(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Блюда
	adminGroup.GET("/recipes", func(c *gin.Context) {
		recipes, err := catalogService.ListRecipes()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recipes)
	})

	adminGroup.POST("/recipes", func(c *gin.Context) {
		var dto service.CreateRecipeDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		recipe, err := catalogService.CreateRecipe(dto)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, recipe)
	})

	adminGroup.DELETE("/recipes/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if err := catalogService.DeleteRecipe(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Ингредиенты блюда
	adminGroup.POST("/recipes/:id/ingredients", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		var dto service.AddIngredientDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		dto.RecipeID = id
		ingredient, err := catalogService.AddIngredient(dto)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, ingredient)
	})

	// Импорт ингредиентов из текста: "мука: 200 гр." по строке.
	// Плохие строки пропускаются и возвращаются как warnings.
	adminGroup.POST("/recipes/:id/ingredients/import", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		var dto struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		report, err := catalogService.ImportIngredients(id, dto.Text)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, report)
	})

	// Меню
	adminGroup.GET("/menus", func(c *gin.Context) {
		menus, err := menuService.ListMenus()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, menus)
	})

	adminGroup.POST("/menus", func(c *gin.Context) {
		var dto service.CreateMenuDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := dto.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date, _ := time.Parse("2006-01-02", dto.Date)
		menu, err := menuService.CreateMenu(date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, menu)
	})

	adminGroup.POST("/menus/:id/recipes", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		var dto service.AddMenuRecipeDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		dto.MenuID = id
		menuRecipe, err := menuService.AddRecipeToMenu(dto)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, menuRecipe)
	})

	adminGroup.DELETE("/menus/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if err := menuService.DeleteMenu(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
