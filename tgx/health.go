package tgx

import (
	"context"

	"github.com/pkg/errors"
)

// Health pings the Bot API, so a revoked token or a network outage surfaces
// in the container health report.
func (r *Dispatcher) Health(_ context.Context) error {
	_, err := r.Bot.GetMe()
	if err != nil {
		return errors.Wrap(err, "failed to ping bot api")
	}

	return nil
}

// Close stops the long-poll feed. Webhook-delivered updates are unaffected.
func (r *Dispatcher) Close(_ context.Context) error {
	r.Bot.StopReceivingUpdates()
	return nil
}
