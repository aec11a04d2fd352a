package application

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/event"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/pkg/types"
)

// EventService is deliberately thin: the marketplace catalogue lives
// elsewhere, this service only maintains the owner/price facts the
// registration pipeline depends on.
type EventService struct {
	Repos *repository.Repos
}

func NewEventService(repos *repository.Repos) *EventService {
	return &EventService{Repos: repos}
}

func (s *EventService) CreateEvent(actor types.Actor, input event.CreateEventDTO) (*event.Event, error) {
	if !actor.IsVendor() {
		return nil, ErrForbidden
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	contact := input.ContactEmail
	if contact == "" {
		contact = actor.Email
	}

	e := &event.Event{
		ID:           uuid.NewString(),
		VendorID:     actor.UserID,
		Title:        input.Title,
		PriceCents:   input.PriceCents,
		Currency:     currency,
		ContactEmail: contact,
		StartsAt:     input.StartsAt,
	}
	return e, s.Repos.Event.CreateEvent(e)
}

func (s *EventService) GetEvent(id string) (*event.Event, error) {
	e, err := s.Repos.Event.GetEventByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *EventService) ListMyEvents(actor types.Actor) ([]event.Event, error) {
	if !actor.IsVendor() {
		return nil, ErrForbidden
	}
	return s.Repos.Event.ListEventsByVendor(actor.UserID)
}
