package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-quickadd/config"
	_ "task-quickadd/docs" // Swagger docs
	"task-quickadd/internal/httpserver"
	"task-quickadd/internal/middleware"
	quickaddHTTP "task-quickadd/internal/quickadd/delivery/http"
	tgDelivery "task-quickadd/internal/quickadd/delivery/telegram"
	"task-quickadd/internal/quickadd/usecase"
	"task-quickadd/pkg/gcalendar"
	"task-quickadd/pkg/log"
	"task-quickadd/pkg/quickparse"
	"task-quickadd/pkg/telegram"
)

// @title       Task Quickadd API
// @description Rule-based natural language task parsing with Telegram capture and Google Calendar scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Quickadd...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser
	timezone := cfg.Parser.Timezone
	parser, err := quickparse.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		parser, _ = quickparse.NewParser(timezone)
	}

	// 4. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 5. Quickadd domain
	quickaddUC := usecase.New(
		logger,
		parser,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		timezone,
		cfg.GoogleCalendar.EventDurationMin,
		cfg.Parser.CacheSize,
	)
	quickaddHandler := quickaddHTTP.New(logger, quickaddUC)

	// 6. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, quickaddUC, telegramBot, cfg.Telegram.WebhookSecret)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram capture skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg),
		QuickaddHandler: quickaddHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
