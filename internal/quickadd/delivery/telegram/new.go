package telegram

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/quickadd"
	pkgLog "task-quickadd/pkg/log"
	pkgTelegram "task-quickadd/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler. secret is the webhook secret
// registered with Telegram via SetWebhook; empty disables the header check.
func New(l pkgLog.Logger, uc quickadd.UseCase, bot *pkgTelegram.Bot, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
