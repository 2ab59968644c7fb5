package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-quickadd/internal/middleware"
	quickaddHTTP "task-quickadd/internal/quickadd/delivery/http"
	tgDelivery "task-quickadd/internal/quickadd/delivery/telegram"
	"task-quickadd/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware

	// Quickadd domain
	quickaddHandler quickaddHTTP.Handler

	// Telegram webhook
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Quickadd domain
	QuickaddHandler quickaddHTTP.Handler

	// Telegram webhook; nil when no bot token is configured
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		quickaddHandler: cfg.QuickaddHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.quickaddHandler == nil {
		return errors.New("quickadd handler is required")
	}
	return nil
}
