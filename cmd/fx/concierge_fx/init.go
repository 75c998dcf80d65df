package concierge_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"rionido/internal/services"
	"rionido/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideNarrativeClient),
	fx.Provide(provideMailService),
	fx.Provide(services.NewConciergeService),
)

// provideNarrativeClient prefers Gemini, falls back to OpenAI, and returns
// nil when neither key is configured. A nil client means emailed itineraries
// carry the stock intro.
func provideNarrativeClient() utils.NarrativeClientInterface {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiNarrativeClient(key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("gemini client unavailable: %v", err)
		} else {
			return client
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAINarrativeClient(key, os.Getenv("OPENAI_MODEL"))
	}
	return nil
}

func provideMailService() services.MailServiceInterface {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Rio Nido Lodge Concierge",
		UseSSL:   port == 465,
	})
}
