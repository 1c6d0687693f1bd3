package duty_repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Duty is one duty-roster assignment. Dates are stored as ISO strings
// (2006-01-02). Duplicates are allowed: several people may share a date and
// the importer does not deduplicate.
type Duty struct {
	ID       uint   `gorm:"primarykey"`
	DutyDate string `gorm:"index;not null"`
	Name     string `gorm:"not null"`
}

// ReplaceDuties swaps the whole roster for the given records in one
// transaction: the previous set is deleted, then the new one inserted, so
// readers never observe a partial import.
func (r *Repository) ReplaceDuties(ctx context.Context, duties []Duty) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("1 = 1").Delete(&Duty{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to delete duties")
		}

		if len(duties) == 0 {
			return nil
		}

		err = tx.Create(&duties).Error
		if err != nil {
			return errors.Wrap(err, "failed to insert duties")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// NamesForDate returns the on-duty names for an ISO date in insertion order.
func (r *Repository) NamesForDate(ctx context.Context, isoDate string) ([]string, error) {
	var names []string

	err := r.db.WithContext(ctx).
		Model(&Duty{}).
		Where("duty_date = ?", isoDate).
		Order("id").
		Pluck("name", &names).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to select")
	}

	return names, nil
}

func (r *Repository) AllDuties(ctx context.Context) ([]Duty, error) {
	var duties []Duty

	err := r.db.WithContext(ctx).
		Order("duty_date, id").
		Find(&duties).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to select")
	}

	return duties, nil
}

func (r *Repository) ClearDuties(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&Duty{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete duties")
	}

	return result.RowsAffected, nil
}
