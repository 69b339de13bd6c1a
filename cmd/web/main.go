package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/Nikk-inovates/Nivaaran/internal/config"
	apphttp "github.com/Nikk-inovates/Nivaaran/internal/http"
	"github.com/Nikk-inovates/Nivaaran/internal/mailer"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/contact"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/content"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	feedClient, err := feed.New(cfg.FeedURL, cfg.FeedTimeout)
	if err != nil {
		log.Fatalf("feed client: %v", err)
	}

	library, err := content.Load()
	if err != nil {
		log.Fatalf("content: %v", err)
	}

	var mail mailer.Service
	switch cfg.MailerDriver {
	case "smtp":
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	default:
		mail = &mailer.Mock{}
		logger.Info("mailer running in mock mode, messages are not delivered")
	}

	r, err := apphttp.NewRouter(logger, apphttp.Deps{
		Config:  cfg,
		Feed:    feedClient,
		Content: library,
		Contact: contact.NewService(mail, cfg),
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	logger.Info("starting server", "addr", cfg.Addr, "env", cfg.Env)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
