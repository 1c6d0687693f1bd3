package web_server

import (
	"context"
	"net/http"
	"strconv"

	"duty-bot/services/notifier_service"
	"duty-bot/tgx"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/teadove/teasutils/utils/logger_utils"
)

// Server exposes the HTTP surface: an info page, a liveness probe, a
// token-guarded manual trigger and the Telegram webhook sink.
type Server struct {
	engine *gin.Engine
	addr   string

	triggerToken string
	notifier     *notifier_service.Service
	dispatcher   *tgx.Dispatcher
}

func NewServer(
	addr string,
	triggerToken string,
	notifier *notifier_service.Service,
	dispatcher *tgx.Dispatcher,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	r := &Server{
		engine:       gin.New(),
		addr:         addr,
		triggerToken: triggerToken,
		notifier:     notifier,
		dispatcher:   dispatcher,
	}

	r.engine.Use(gin.Recovery())
	r.engine.GET("/", r.index)
	r.engine.GET("/health", r.health)
	r.engine.POST("/trigger", r.trigger)
	r.engine.POST("/webhook", r.webhook)

	return r
}

// Start serves in the background; the bot update loop owns the foreground.
func (r *Server) Start(ctx context.Context) {
	go func() {
		err := r.engine.Run(r.addr)
		if err != nil {
			zerolog.Ctx(ctx).Error().Stack().Err(err).Msg("http.server.stopped")
		}
	}()

	zerolog.Ctx(ctx).Info().Str("addr", r.addr).Msg("http.server.started")
}

func (r *Server) index(c *gin.Context) {
	c.String(http.StatusOK, "duty-bot: daily duty-roster reminder\n")
}

func (r *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// trigger forces one notification cycle and replies with the delivered count.
// Refused uniformly unless the shared token matches.
func (r *Server) trigger(c *gin.Context) {
	if r.triggerToken == "" || c.GetHeader("X-Trigger-Token") != r.triggerToken {
		c.String(http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx := logger_utils.NewLoggedCtx()

	sent, err := r.notifier.SendToday(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Stack().Err(err).Msg("failed.to.run.triggered.cycle")
		c.String(http.StatusInternalServerError, "send failed")

		return
	}

	c.String(http.StatusOK, strconv.Itoa(sent))
}

func (r *Server) webhook(c *gin.Context) {
	var update tgbotapi.Update

	err := c.ShouldBindJSON(&update)
	if err != nil {
		c.String(http.StatusBadRequest, "bad update")
		return
	}

	r.dispatcher.Feed(logger_utils.NewLoggedCtx(), &update)
	c.Status(http.StatusOK)
}
