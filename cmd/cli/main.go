// Сервисные команды: ручная отправка анонсов и обслуживание меню.
// Запускаются из крона или руками, процесс завершается после команды.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/askvrtsv/eda/internal/config"
	"github.com/askvrtsv/eda/internal/database"
	"github.com/askvrtsv/eda/internal/models"
	"github.com/askvrtsv/eda/internal/notifier"
	"github.com/askvrtsv/eda/internal/repository"
	"github.com/askvrtsv/eda/internal/service"
	"github.com/askvrtsv/eda/pkg/utils"
)

type app struct {
	cfg   *config.Config
	loc   *time.Location
	menus *service.MenuService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app{
		cfg:   cfg,
		loc:   loc,
		menus: service.NewMenuService(repository.NewMenuRepo(db)),
	}, nil
}

func (a *app) notifier() (*notifier.Notifier, error) {
	api, err := tgbotapi.NewBotAPI(a.cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}
	return notifier.New(api, a.menus, a.cfg.ChatID, a.loc), nil
}

func (a *app) today() time.Time {
	return models.DateOf(time.Now().In(a.loc))
}

func main() {
	cmd := &cli.Command{
		Name:  "eda",
		Usage: "Maintenance commands for the menu bot",
		Commands: []*cli.Command{
			{
				Name:  "send-today",
				Usage: "Announce today's menu to the chat",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					n, err := a.notifier()
					if err != nil {
						return err
					}
					n.AnnounceToday()
					return nil
				},
			},
			{
				Name:  "send-tomorrow",
				Usage: "Announce tomorrow's menu to the chat",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					n, err := a.notifier()
					if err != nil {
						return err
					}
					n.AnnounceTomorrow()
					return nil
				},
			},
			{
				Name:  "grocery-list",
				Usage: "Print the grocery list for today and tomorrow",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					today := a.today()
					products, err := a.menus.GetGroceryList(today, today.AddDate(0, 0, 1))
					if err != nil {
						return err
					}
					for _, name := range products {
						fmt.Println(name)
					}
					return nil
				},
			},
			{
				Name:  "insert-dummy-menus",
				Usage: "Create empty menus for the days ahead",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "days",
						Usage: "How many days ahead to cover",
						Value: 7,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					created, err := a.menus.InsertDummyMenus(a.today(), int(cmd.Int("days")))
					if err != nil {
						return err
					}
					fmt.Printf("Created %d menus\n", created)
					return nil
				},
			},
			{
				Name:  "delete-old-menus",
				Usage: "Delete menus older than the given number of days",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "older-than",
						Usage: "Age threshold in days",
						Value: 30,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					deleted, err := a.menus.DeleteOldMenus(time.Now().In(a.loc), int(cmd.Int("older-than")))
					if err != nil {
						return err
					}
					fmt.Printf("Deleted %d menus\n", deleted)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		utils.Log.Error(err.Error())
		os.Exit(1)
	}
}
