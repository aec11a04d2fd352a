package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/registration"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/pkg/types"
)

// DirectoryService answers the listing and reporting queries. The
// byStatus aggregate is always computed over the unfiltered scope so
// dashboard tiles stay consistent whatever filters are active.
type DirectoryService struct {
	Repos *repository.Repos
}

func NewDirectoryService(repos *repository.Repos) *DirectoryService {
	return &DirectoryService{Repos: repos}
}

func (s *DirectoryService) ListForEvent(actor types.Actor, eventID string, f registration.ListFilters, p registration.PageRequest) (*registration.ListResult, error) {
	if !actor.IsVendor() {
		return nil, ErrForbidden
	}
	ev, err := s.Repos.Event.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ev.VendorID != actor.UserID {
		return nil, ErrForbidden
	}

	regs, total, err := s.Repos.Registration.ListForEvent(eventID, f, p)
	if err != nil {
		return nil, err
	}
	counts, err := s.Repos.Registration.CountByStatusForEvent(eventID)
	if err != nil {
		return nil, err
	}

	return &registration.ListResult{Registrations: regs, Total: total, ByStatus: counts}, nil
}

func (s *DirectoryService) ListForParticipant(actor types.Actor, participantID string, f registration.ListFilters, p registration.PageRequest) (*registration.ListResult, error) {
	if actor.UserID != participantID {
		return nil, ErrForbidden
	}

	regs, total, err := s.Repos.Registration.ListForParticipant(participantID, f, p)
	if err != nil {
		return nil, err
	}
	counts, err := s.Repos.Registration.CountByStatusForParticipant(participantID)
	if err != nil {
		return nil, err
	}

	return &registration.ListResult{Registrations: regs, Total: total, ByStatus: counts}, nil
}

// GetRegistration returns one registration to whoever may see it: the
// owning participant or the event's vendor.
func (s *DirectoryService) GetRegistration(actor types.Actor, id string) (*registration.Registration, error) {
	reg, err := s.Repos.Registration.GetRegistrationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if reg.ParticipantID == actor.UserID {
		return &reg, nil
	}
	ev, err := s.Repos.Event.GetEventByID(reg.EventID)
	if err == nil && actor.IsVendor() && ev.VendorID == actor.UserID {
		return &reg, nil
	}
	return nil, ErrForbidden
}
