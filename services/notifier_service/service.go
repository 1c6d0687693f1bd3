package notifier_service

import (
	"time"

	"duty-bot/repositories/duty_repository"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TimeZone is the fixed zone all roster dates and the daily schedule live in.
var TimeZone = time.FixedZone("Europe/Moscow", 3*60*60)

// Config keys the notifier reads on every cycle.
const (
	ConfigKeySendTime      = "send_time"
	ConfigKeySelectedMonth = "selected_month"
)

// Sender delivers one message to one chat. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Service struct {
	repo      *duty_repository.Repository
	sender    Sender
	scheduler *gocron.Scheduler
	admins    []int64

	now func() time.Time
}

func NewService(
	repo *duty_repository.Repository,
	sender Sender,
	scheduler *gocron.Scheduler,
	admins []int64,
) *Service {
	return &Service{
		repo:      repo,
		sender:    sender,
		scheduler: scheduler,
		admins:    admins,
		now:       func() time.Time { return time.Now().In(TimeZone) },
	}
}
