package main

import (
	"context"
	"os/signal"
	"syscall"

	"autoservice/internal/adapter/bot"
	"autoservice/internal/adapter/persistence/repository"
	"autoservice/internal/infrastructure/auth"
	"autoservice/internal/infrastructure/config"
	"autoservice/internal/infrastructure/database"
	"autoservice/internal/infrastructure/logger"
	"autoservice/internal/infrastructure/otpstore"
	"autoservice/internal/infrastructure/telegram"
	"autoservice/internal/usecase"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	if cfg.Telegram.Token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		log.Fatalf("failed to connect to dynamodb: %v", err)
	}

	notifier, err := telegram.NewNotifier(cfg.Telegram)
	if err != nil {
		log.Fatalf("failed to initialize notifier: %v", err)
	}

	otp := usecase.NewOTPUseCase(
		repository.NewWorkerDynamoRepository(ddb, cfg.Tables.Workers),
		repository.NewAdminDynamoRepository(ddb, cfg.Tables.Admins),
		otpstore.New(cfg.OTP.CodeTTL),
		notifier,
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTLifetime),
		nil,
	)

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.Telegram.Token, cfg.Telegram.APIURL+"/bot%s/%s")
	if err != nil {
		log.Fatalf("failed to initialize telegram bot: %v", err)
	}

	handler := bot.NewHandler(otp, bot.NewStateStore(), bot.NewAPISender(api))
	bot.Run(ctx, api, handler)
	log.Info("bot exited properly")
}
