package database

import (
	"errors"

	"github.com/askvrtsv/eda/internal/config"
	"gorm.io/gorm"
)

// Connect выбирает бэкенд по конфигурации:
// DATABASE_URL - PostgreSQL, DATABASE_PATH - SQLite.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	switch {
	case cfg.DatabaseURL != "":
		return NewPostgres(cfg.DatabaseURL)
	case cfg.DatabasePath != "":
		return NewSQLite(cfg.DatabasePath)
	}
	return nil, errors.New("neither DATABASE_URL nor DATABASE_PATH is set")
}
