package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/evermeet/booking-go/internal/api/middleware"
	"github.com/evermeet/booking-go/internal/api/routes"
	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/config"
	"github.com/evermeet/booking-go/internal/config/db"
	"github.com/evermeet/booking-go/internal/notifier"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/internal/storage"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	store, err := storage.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to object storage")
	}

	var notify application.Notifier = application.NopNotifier{}
	if config.RabbitURL != "" {
		rabbit, err := notifier.NewClient(config.RabbitURL, config.RabbitExchange, config.RabbitQueue)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, notifications disabled")
		} else {
			defer rabbit.Close()
			notify = rabbit
		}
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(
		repos,
		application.NewStripeProvider(config.StripeSecretKey),
		notify,
		store,
	)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: false,
	}))

	routes.RegisterRoutes(r, services)

	log.Info().Str("port", config.ServerPort).Msg("Starting API server")
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
