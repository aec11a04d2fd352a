package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/evermeet/booking-go/internal/config"
	"github.com/evermeet/booking-go/internal/notifier"
)

// The worker drains the notification queue and sends the emails the
// API published fire-and-forget.
func main() {
	config.LoadConfig()

	client, err := notifier.NewClient(config.RabbitURL, config.RabbitExchange, config.RabbitQueue)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
	}
	defer client.Close()

	mailer := notifier.NewMailer()

	go func() {
		log.Info().Str("queue", config.RabbitQueue).Msg("Notification worker started")
		if err := client.Consume(mailer.Send); err != nil {
			log.Fatal().Err(err).Msg("Consumer stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Notification worker shutting down")
}
