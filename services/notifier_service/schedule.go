package notifier_service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/teadove/teasutils/utils/logger_utils"
)

const dailyJobTag = "daily-duty-send"

// Reschedule arms the daily firing at HH:MM in the fixed zone and persists
// the time. Any previously armed firing is removed first, so changing the
// send time never produces two daily messages.
func (r *Service) Reschedule(ctx context.Context, sendTime string) error {
	_, err := time.Parse("15:04", sendTime)
	if err != nil {
		return errors.Wrap(err, "invalid send time")
	}

	_ = r.scheduler.RemoveByTag(dailyJobTag)

	_, err = r.scheduler.
		Every(1).
		Day().
		At(sendTime).
		Tag(dailyJobTag).
		Do(r.runScheduled)
	if err != nil {
		return errors.Wrap(err, "failed to schedule daily job")
	}

	err = r.repo.SetConfig(ctx, ConfigKeySendTime, sendTime)
	if err != nil {
		return errors.Wrap(err, "failed to persist send time")
	}

	zerolog.Ctx(ctx).Info().Str("send_time", sendTime).Msg("daily.job.armed")

	return nil
}

// runScheduled is invoked by gocron in its own goroutine and runs the cycle
// to completion, so failures surface in the log instead of a detached task.
func (r *Service) runScheduled() {
	ctx := logger_utils.NewLoggedCtx()

	_, err := r.SendToday(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Stack().Err(err).Msg("failed.to.run.daily.reminder")
	}
}

// StartFromConfig arms the schedule with the persisted send time, falling
// back to the configured default on first start.
func (r *Service) StartFromConfig(ctx context.Context, defaultTime string) error {
	sendTime, ok, err := r.repo.GetConfig(ctx, ConfigKeySendTime)
	if err != nil {
		return errors.Wrap(err, "failed to get send time")
	}

	if !ok || sendTime == "" {
		sendTime = defaultTime
	}

	return r.Reschedule(ctx, sendTime)
}
