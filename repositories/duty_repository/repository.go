package duty_repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(_ context.Context, path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create data dir")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open gorm.db")
	}

	err = db.Migrator().AutoMigrate(&Duty{}, &ConfigEntry{}, &Recipient{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to auto migrate")
	}

	return &Repository{db: db}, nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}
