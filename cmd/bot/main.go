package main

import (
	"os"

	"github.com/askvrtsv/eda/internal/bot"
	"github.com/askvrtsv/eda/internal/config"
	"github.com/askvrtsv/eda/internal/database"
	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/internal/notifier"
	"github.com/askvrtsv/eda/internal/repository"
	"github.com/askvrtsv/eda/internal/service"
	"github.com/askvrtsv/eda/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Log.Error("Invalid config: " + err.Error())
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		utils.Log.Error("Failed to load timezone: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.Connect(cfg)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	// Выполнение миграций для ВСЕХ моделей
	if err := database.AutoMigrateTables(db,
		&models.Product{},
		&models.Tag{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Menu{},
		&models.MenuRecipe{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES / SERVICES
	menuRepo := repository.NewMenuRepo(db)
	menuService := service.NewMenuService(menuRepo)

	// -----------------------
	// BOT
	botApp, err := bot.NewBotApp(cfg.TelegramToken, cfg.ChatID, menuService, loc)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// SCHEDULER
	// Утром анонсируем меню на сегодня, вечером - на завтра
	menuNotifier := notifier.New(botApp.API, menuService, cfg.ChatID, loc)

	scheduler := notifier.NewScheduler(loc)
	if err := scheduler.Daily(cfg.MorningTime, menuNotifier.AnnounceToday); err != nil {
		utils.Log.Error("Failed to schedule morning announce: " + err.Error())
		os.Exit(1)
	}
	if err := scheduler.Daily(cfg.EveningTime, menuNotifier.AnnounceTomorrow); err != nil {
		utils.Log.Error("Failed to schedule evening announce: " + err.Error())
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()
	utils.Log.Info("Scheduler started: " + cfg.MorningTime + " / " + cfg.EveningTime + " (" + cfg.Timezone + ")")

	utils.Log.Info("Telegram bot starting...")
	botApp.Run()
}
