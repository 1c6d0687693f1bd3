package tg_bot_service

import (
	"context"
)

func (r *Service) Health(ctx context.Context) error {
	return r.dispatcher.Health(ctx)
}

func (r *Service) Close(ctx context.Context) error {
	return r.dispatcher.Close(ctx)
}
