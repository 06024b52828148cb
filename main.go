package main

import (
	"flag"
	"log/slog"
	"sportmaps/bot"
	"sportmaps/impl/core"
	"sportmaps/internal/config"
	repository "sportmaps/internal/database"
	"sportmaps/internal/http-server/api"
	"sportmaps/internal/lib/logger"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/enrollment"
	"sportmaps/internal/service/payment"
	"sportmaps/internal/service/recommend"
	"sportmaps/internal/service/roster"
	"sportmaps/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	if conf.Telegram.Enabled {
		tgBot, err := bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelWarn)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")
		}
	}

	lg.Info("starting sportmaps", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.Error("mongo client", sl.Err(err))
		return
	}
	lg.With(
		slog.String("host", conf.Mongo.Host),
		slog.String("port", conf.Mongo.Port),
		slog.String("user", conf.Mongo.User),
		slog.String("database", conf.Mongo.Database),
	).Info("mongo client initialized")

	hub := ws.NewHub(lg)
	go hub.Run()

	enrollments := enrollment.NewService(db, lg)
	enrollments.SetEvents(hub)

	payments := payment.NewService(db, conf.Payments.DemoSuccessRate, lg)
	payments.SetEvents(hub)

	importer := roster.NewImporter(db, lg)

	handler := core.New(lg)
	handler.SetRepository(db)
	handler.SetEnrollmentService(enrollments)
	handler.SetPaymentService(payments)
	handler.SetRosterImporter(importer)
	handler.SetWebhookVerifier(payment.NewVerifier(conf.Payments.WebhookSecret))

	if conf.OpenAI.Enabled {
		recommender := recommend.NewService(conf.OpenAI.ApiKey, conf.OpenAI.Model, lg)
		handler.SetRecommendService(recommender)
		lg.With(
			sl.Secret("openai_key", conf.OpenAI.ApiKey),
			slog.String("model", conf.OpenAI.Model),
		).Info("recommendation service initialized")
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
