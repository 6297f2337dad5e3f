package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"elimu/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	password := os.Getenv("SMTP_PASSWORD")
	if password == "" {
		log.Println("SMTP_PASSWORD not set, mail will be logged only")
		return services.NewLogMailService()
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	cfg := services.SMTPConfig{
		Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: password,
		From:     envOr("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		FromName: envOr("SMTP_FROM_NAME", "Elimu Academy"),
		AppName:  "Elimu Academy",
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return services.NewLogMailService()
	}

	return mailService
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
