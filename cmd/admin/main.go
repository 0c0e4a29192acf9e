package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/askvrtsv/eda/internal/admin"
	"github.com/askvrtsv/eda/internal/config"
	"github.com/askvrtsv/eda/internal/database"
	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/internal/repository"
	"github.com/askvrtsv/eda/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	cfg, err := config.LoadAdmin()
	if err != nil {
		log.Fatal("Invalid config: ", err)
	}

	// Подключение к базе
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db,
		&models.Product{},
		&models.Tag{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Menu{},
		&models.MenuRecipe{},
	); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	// Репозитории
	productRepo := repository.NewProductRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	tagRepo := repository.NewTagRepo(db)
	menuRepo := repository.NewMenuRepo(db)

	// Сервисы
	catalogService := service.NewCatalogService(productRepo, recipeRepo, tagRepo)
	menuService := service.NewMenuService(menuRepo)

	// Gin router
	router := gin.Default()
	admin.SetupRoutes(router, catalogService, menuService)

	log.Println("Admin panel starting on " + cfg.AdminAddr)
	if err := router.Run(cfg.AdminAddr); err != nil {
		log.Fatal("Failed to run admin panel:", err)
	}
}
