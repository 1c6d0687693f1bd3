package duty_repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigEntry is a flat string key/value pair, e.g. send_time or
// selected_month.
type ConfigEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (r *Repository) SetConfig(ctx context.Context, key, value string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&ConfigEntry{Key: key, Value: value}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to save config entry")
	}

	return nil
}

// GetConfig returns the value for key, with ok=false when the key is unset.
func (r *Repository) GetConfig(ctx context.Context, key string) (string, bool, error) {
	var entry ConfigEntry

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to select")
	}

	return entry.Value, true, nil
}
