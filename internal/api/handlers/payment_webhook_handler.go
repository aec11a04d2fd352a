package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/config"
	"github.com/evermeet/booking-go/pkg/response"
)

const maxWebhookBody = int64(65536)

// PaymentWebhookHandler receives Stripe payment events and feeds them
// into the payment gate. The registration id travels in the intent's
// metadata, set when the intent was created.
type PaymentWebhookHandler struct {
	svc *application.PaymentService
}

func NewPaymentWebhookHandler(svc *application.PaymentService) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{svc: svc}
}

func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.StripeWebhookSecret)
	if err != nil {
		log.Warn().Err(err).Msg("webhook signature verification failed")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid signature"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		h.reconcile(c, event, true)
	case "payment_intent.payment_failed":
		h.reconcile(c, event, false)
	default:
		log.Debug().Str("type", string(event.Type)).Msg("ignoring webhook event")
		c.Status(http.StatusOK)
	}
}

func (h *PaymentWebhookHandler) reconcile(c *gin.Context, event stripe.Event, succeeded bool) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "malformed event payload"})
		return
	}

	registrationID := intent.Metadata["registration_id"]
	if registrationID == "" {
		log.Warn().Str("intent", intent.ID).Msg("payment intent without registration metadata")
		c.Status(http.StatusOK)
		return
	}

	var err error
	if succeeded {
		_, err = h.svc.Confirm(registrationID, intent.ID)
	} else {
		_, err = h.svc.Fail(registrationID, intent.ID)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
