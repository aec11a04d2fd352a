package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/datatypes"

	"github.com/evermeet/booking-go/internal/domain/event"
	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/internal/repository/mock"
	"github.com/evermeet/booking-go/pkg/types"
)

// --------------------- Shared fixtures ---------------------

func newMockRepos(t *testing.T) (*repository.Repos, *mock.MockEventRepo, *mock.MockConfigRepo, *mock.MockRegistrationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockEvent := mock.NewMockEventRepo(ctrl)
	mockConfig := mock.NewMockConfigRepo(ctrl)
	mockReg := mock.NewMockRegistrationRepo(ctrl)
	repos := &repository.Repos{
		Event:        mockEvent,
		Config:       mockConfig,
		Registration: mockReg,
	}
	return repos, mockEvent, mockConfig, mockReg
}

func vendorActor() types.Actor {
	return types.Actor{UserID: "vendor-1", Name: "Vera", Email: "vera@vendor.test", Role: types.RoleVendor}
}

func participantActor() types.Actor {
	return types.Actor{UserID: "part-1", Name: "Pat", Email: "pat@part.test", Role: types.RoleParticipant}
}

func sampleFields() []regform.FormField {
	return []regform.FormField{
		{ID: "name", Type: regform.FieldText, Label: "Full name", Required: true, Order: 1},
		{
			ID:      "size",
			Type:    regform.FieldSelect,
			Label:   "Shirt size",
			Options: []regform.Option{{Value: "s"}, {Value: "m"}, {Value: "l"}},
			Order:   2,
		},
	}
}

func sampleConfig(overrides ...func(*regform.RegistrationConfig)) regform.RegistrationConfig {
	cfg := regform.RegistrationConfig{
		EventID:  "event-1",
		VendorID: "vendor-1",
		Enabled:  true,
		Fields:   datatypes.NewJSONType(sampleFields()),
	}
	for _, o := range overrides {
		o(&cfg)
	}
	return cfg
}

func sampleEvent() event.Event {
	return event.Event{
		ID:           "event-1",
		VendorID:     "vendor-1",
		Title:        "Summer Fair",
		ContactEmail: "vera@vendor.test",
	}
}

func pricedEvent() event.Event {
	ev := sampleEvent()
	ev.PriceCents = 2500
	ev.Currency = "USD"
	return ev
}

// stubPayments is a canned PaymentProvider.
type stubPayments struct {
	intentID     string
	clientSecret string
	err          error
	calls        int
}

func (s *stubPayments) CreateIntent(amountCents int64, currency, registrationID string) (string, string, error) {
	s.calls++
	return s.intentID, s.clientSecret, s.err
}

// captureNotifier records published notifications.
type captureNotifier struct {
	published []Notification
}

func (c *captureNotifier) Publish(n Notification) error {
	c.published = append(c.published, n)
	return nil
}
