package duty_repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// Recipient is a chat subscribed to the daily reminder.
type Recipient struct {
	ChatID int64 `gorm:"primaryKey"`
}

func (r *Repository) AddRecipient(ctx context.Context, chatID int64) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Recipient{ChatID: chatID}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to save recipient")
	}

	return nil
}

func (r *Repository) RemoveRecipient(ctx context.Context, chatID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Recipient{ChatID: chatID})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete recipient")
	}

	return result.RowsAffected == 1, nil
}

func (r *Repository) ListRecipients(ctx context.Context) ([]int64, error) {
	var chatIDs []int64

	err := r.db.WithContext(ctx).
		Model(&Recipient{}).
		Order("chat_id").
		Pluck("chat_id", &chatIDs).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to select")
	}

	return chatIDs, nil
}
