package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/metrics"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Required secrets are a startup precondition, the loop never starts without them.
		logrus.WithError(err).Fatal("Could not load application configuration, check the .env file")
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"endpoint":    cfg.PracticumEndpoint,
		"chat_id":     cfg.TelegramChatID,
	}).Info("Configuration loaded")

	schedule, err := cfg.PollSchedule()
	if err != nil {
		log.WithError(err).Fatal("Invalid poll schedule")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, "", cfg.RequestTimeout)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}
	telegramClient := telegram.NewTelebotAdapter(bot)

	practicumClient := practicum.NewClient(
		cfg.PracticumEndpoint,
		cfg.PracticumToken,
		cfg.RequestTimeout,
		log.WithField("component", "practicum"),
	)

	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, log.WithField("component", "metrics")); err != nil {
				log.WithError(err).Error("Metrics server failed")
			}
		}()
	}

	poller := app.NewPoller(practicumClient, telegramClient, cfg.TelegramChatID, log.WithField("component", "poller"))
	loop := scheduler.NewLoop(schedule, log.WithField("component", "scheduler"))
	loop.Run(ctx, func(ctx context.Context) {
		poller.Tick(ctx)
	})

	log.Info("Homework status bot stopped")
}
