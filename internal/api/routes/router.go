package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/evermeet/booking-go/internal/api/handlers"
	"github.com/evermeet/booking-go/internal/api/middleware"
	"github.com/evermeet/booking-go/internal/application"
)

func RegisterRoutes(r *gin.Engine, services *application.Services) {
	h := handlers.New(services)

	// Stripe calls this directly; authenticated by signature, not JWT.
	r.POST("/payments/webhook", h.PaymentWebhook.Handle)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		events := auth.Group("/events")
		{
			events.POST("", middleware.VendorOnly(), h.Event.CreateEvent)
			events.GET("/mine", middleware.VendorOnly(), h.Event.ListMyEvents)
			events.GET("/:id", h.Event.GetEvent)

			events.GET("/:id/registration-config", h.Config.GetConfig)
			events.PUT("/:id/registration-config", middleware.VendorOnly(), h.Config.SaveConfig)
			events.POST("/:id/registration-config/duplicate", middleware.VendorOnly(), h.Config.DuplicateConfig)
			events.POST("/:id/registration-config/disable", middleware.VendorOnly(), h.Config.DisableConfig)

			events.POST("/:id/registrations", h.Registration.Submit)
			events.GET("/:id/registrations", middleware.VendorOnly(), h.Registration.ListForEvent)
		}

		registrations := auth.Group("/registrations")
		{
			registrations.GET("/mine", h.Registration.ListMine)
			registrations.POST("/files", h.File.Upload)
			registrations.GET("/:id", h.Registration.GetRegistration)
			registrations.PUT("/:id", h.Registration.Update)
			registrations.POST("/:id/withdraw", h.Registration.Withdraw)
			registrations.POST("/:id/confirm-payment", h.Registration.ConfirmPayment)
			registrations.POST("/:id/start-review", middleware.VendorOnly(), h.Registration.StartReview)
			registrations.POST("/:id/review", middleware.VendorOnly(), h.Registration.Review)
			registrations.GET("/:id/files/:fieldId", h.File.Download)
		}
	}
}
