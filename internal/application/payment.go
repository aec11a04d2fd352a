package application

import (
	"errors"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/registration"
	"github.com/evermeet/booking-go/internal/repository"
)

// PaymentProvider creates payment intents with the external provider.
// Behind an interface so the reconciliation logic can be tested
// without network calls.
type PaymentProvider interface {
	CreateIntent(amountCents int64, currency, registrationID string) (intentID, clientSecret string, err error)
}

// StripeProvider is the production PaymentProvider.
type StripeProvider struct{}

func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

func (p *StripeProvider) CreateIntent(amountCents int64, currency, registrationID string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("registration_id", registrationID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return intent.ID, intent.ClientSecret, nil
}

// PaymentService is the only path by which a registration's payment
// can become paid. Reviewers never touch payment status directly.
type PaymentService struct {
	Repos *repository.Repos
}

func NewPaymentService(repos *repository.Repos) *PaymentService {
	return &PaymentService{Repos: repos}
}

// Confirm reconciles an external payment confirmation with the
// registration. When the config does not require approval the
// registration auto-advances from submitted to approved; otherwise it
// stays in the review queue.
func (s *PaymentService) Confirm(registrationID, intentID string) (*registration.Registration, error) {
	reg, err := s.getRegistration(registrationID)
	if err != nil {
		return nil, err
	}

	if reg.ProviderIntentID == "" || reg.ProviderIntentID != intentID {
		return nil, ErrPaymentIntentMismatch
	}
	if reg.PaymentStatus == registration.PaymentPaid {
		// Duplicate confirmation for the same intent is harmless.
		return reg, nil
	}
	if reg.PaymentStatus != registration.PaymentPending && reg.PaymentStatus != registration.PaymentFailed {
		return nil, ErrPaymentIntentMismatch
	}

	reg.PaymentStatus = registration.PaymentPaid

	cfg, err := s.Repos.Config.GetConfigByEventID(reg.EventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && !cfg.RequiresApproval && reg.Status == registration.StatusSubmitted {
		if err := reg.Apply(registration.EventApprove); err != nil {
			return nil, err
		}
	}

	if err := s.Repos.Registration.UpdateRegistration(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Fail records an externally signalled payment failure. The lifecycle
// status is left untouched so the participant can retry.
func (s *PaymentService) Fail(registrationID, intentID string) (*registration.Registration, error) {
	reg, err := s.getRegistration(registrationID)
	if err != nil {
		return nil, err
	}
	if reg.ProviderIntentID == "" || reg.ProviderIntentID != intentID {
		return nil, ErrPaymentIntentMismatch
	}
	if reg.PaymentStatus == registration.PaymentPaid {
		return reg, nil
	}

	reg.PaymentStatus = registration.PaymentFailed
	if err := s.Repos.Registration.UpdateRegistration(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *PaymentService) getRegistration(id string) (*registration.Registration, error) {
	reg, err := s.Repos.Registration.GetRegistrationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}
