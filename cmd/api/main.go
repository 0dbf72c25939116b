package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-assistant/config"
	_ "appointment-assistant/docs" // Swagger docs
	"appointment-assistant/internal/classifier"
	"appointment-assistant/internal/contextstore"
	"appointment-assistant/internal/dialogue"
	chatHTTP "appointment-assistant/internal/dialogue/delivery/http"
	tgDelivery "appointment-assistant/internal/dialogue/delivery/telegram"
	"appointment-assistant/internal/dialogue/repository/memory"
	"appointment-assistant/internal/dialogue/usecase"
	"appointment-assistant/internal/extractor"
	"appointment-assistant/internal/httpserver"
	"appointment-assistant/internal/knowledge"
	"appointment-assistant/internal/middleware"
	"appointment-assistant/pkg/datemath"
	"appointment-assistant/pkg/gcalendar"
	"appointment-assistant/pkg/llmprovider"
	"appointment-assistant/pkg/log"
	"appointment-assistant/pkg/telegram"
)

// @title       Appointment Assistant API
// @description Conversational appointment scheduling and knowledge assistant over HTTP and Telegram.
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

	logger.Info(ctx, "Starting Appointment Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date/time normalizer
	normalizer, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		normalizer, _ = datemath.NewParser("UTC")
		cfg.Assistant.Timezone = "UTC"
	}

	// 4. Knowledge oracle (optional: requires at least one LLM provider)
	var oracle *knowledge.Oracle
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Knowledge mode unavailable: %v", err)
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		manager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTimeout,
		}, logger)
		oracle = knowledge.New(manager)
		logger.Infof(ctx, "Knowledge oracle initialized with %d provider(s)", len(providers))
	}

	// 5. Google Calendar mirroring (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar mirroring initialized")
		}
	}

	// 6. Dialogue engine
	contexts := contextstore.New(
		cfg.Assistant.MaxConversations,
		time.Duration(cfg.Assistant.SessionTTLMinutes)*time.Minute,
	)
	appointmentRepo := memory.New()

	// A typed nil must not reach the interface value.
	var oracleIface dialogue.KnowledgeOracle
	if oracle != nil {
		oracleIface = oracle
	}
	dialogueUC := usecase.New(
		logger,
		classifier.New(),
		extractor.New(),
		contexts,
		normalizer,
		appointmentRepo,
		oracleIface,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		cfg.Assistant.Timezone,
		cfg.Assistant.ConfidenceThreshold,
	)

	// 7. Deliveries
	chatHandler := chatHTTP.New(logger, dialogueUC)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, dialogueUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram delivery skipped: telegram.bot_token is not set")
	}

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatHandler:     chatHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
