package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"task-quickadd/internal/model"
	"task-quickadd/internal/quickadd"
	pkgLog "task-quickadd/pkg/log"
	pkgResponse "task-quickadd/pkg/response"
	pkgTelegram "task-quickadd/pkg/telegram"
)

// secretTokenHeader is echoed back by Telegram on every webhook call when a
// secret was registered with SetWebhook.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type handler struct {
	l      pkgLog.Logger
	uc     quickadd.UseCase
	bot    *pkgTelegram.Bot
	secret string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: parsing itself is instant, but the calendar push
// behind /schedule can take seconds and Telegram retries slow webhooks.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" && c.GetHeader(secretTokenHeader) != h.secret {
		h.l.Warnf(ctx, "telegram handler: webhook secret mismatch from %s", c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled once the
		// webhook response goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Welcome to *Task Quickadd*!\n\nType a task the way you would say it and I reply with everything I read out of it:\n`Call mom tomorrow at 5pm remind me 15 min before #family`\n\nPut /schedule in front of the text to push it onto the calendar.",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nSend any task line and I show what I parsed out of it: due date, reminder, recurrence, priority, location, #tags, @folder, ~effort and a `// description`.\n\n`/schedule <text>` parses the line and creates the calendar event.\n\n_Example: /schedule Standup every weekday at 9:30am ~15m_",
			"Markdown",
		)
	}

	// Channel posts carry no sender; nothing sensible to scope them to.
	if msg.From == nil {
		return nil
	}

	// Build scope from Telegram user context
	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	if strings.HasPrefix(msg.Text, "/schedule") {
		text := strings.TrimSpace(strings.TrimPrefix(msg.Text, "/schedule"))
		return h.handleSchedule(ctx, sc, msg.Chat.ID, text)
	}

	return h.handlePreview(ctx, sc, msg.Chat.ID, msg.Text)
}

// handlePreview parses the line and echoes the badges back. Replies stay in
// plain mode: the title is user text and Telegram rejects messages with
// unbalanced Markdown entities.
func (h *handler) handlePreview(ctx context.Context, sc model.Scope, chatID int64, text string) error {
	output, err := h.uc.Preview(ctx, sc, quickadd.PreviewInput{RawText: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Preview failed: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not parse: %v", err))
	}

	if len(output.Badges) == 0 && len(output.Parsed.Tags) == 0 && output.Parsed.FolderName == "" {
		return h.bot.SendMessage(chatID,
			"📝 "+output.Parsed.Text+"\nNo markers found. Try: Call mom tomorrow at 5pm remind me 15 min before #family")
	}

	reply := "📝 " + output.Parsed.Text
	for _, b := range output.Badges {
		reply += "\n• " + b
	}
	if len(output.Parsed.Tags) > 0 {
		reply += "\n• #" + strings.Join(output.Parsed.Tags, " #")
	}
	if output.Parsed.FolderName != "" {
		reply += "\n• 📁 " + output.Parsed.FolderName
	}
	reply += "\n\nLooks right? Send: /schedule " + text
	return h.bot.SendMessage(chatID, reply)
}

// handleSchedule parses the line, assembles the draft and pushes the
// calendar event when one is configured.
func (h *handler) handleSchedule(ctx context.Context, sc model.Scope, chatID int64, text string) error {
	if text == "" {
		return h.bot.SendMessage(chatID, "Usage: /schedule <task text>, e.g. /schedule Call mom tomorrow at 5pm")
	}

	output, err := h.uc.Schedule(ctx, sc, quickadd.ScheduleInput{RawText: text})
	switch {
	case errors.Is(err, quickadd.ErrNothingToSchedule):
		return h.bot.SendMessage(chatID, "⚠️ No due date found. Add a date or time, e.g. /schedule Call mom tomorrow at 5pm")
	case err != nil:
		h.l.Errorf(ctx, "telegram handler: Schedule failed: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not schedule: %v", err))
	}

	reply := "✅ Scheduled: " + output.Draft.Title
	for _, b := range output.Badges {
		reply += "\n• " + b
	}
	if output.Draft.CalendarLink != "" {
		reply += "\n📅 " + output.Draft.CalendarLink
	}
	return h.bot.SendMessage(chatID, reply)
}
