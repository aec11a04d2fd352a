package handlers

import (
	"github.com/evermeet/booking-go/internal/application"
)

type Handlers struct {
	Event          *EventHandler
	Config         *ConfigHandler
	Registration   *RegistrationHandler
	File           *FileHandler
	PaymentWebhook *PaymentWebhookHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		Event:          NewEventHandler(services.Event),
		Config:         NewConfigHandler(services.Config),
		Registration:   NewRegistrationHandler(services.Submission, services.Payment, services.Review, services.Directory),
		File:           NewFileHandler(services.File),
		PaymentWebhook: NewPaymentWebhookHandler(services.Payment),
	}
}
