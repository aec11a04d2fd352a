package application

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/registration"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/pkg/types"
)

// ReviewService covers the vendor side of the lifecycle. Each call is
// one atomic transition; there is no lock state beyond under_review
// itself.
type ReviewService struct {
	Repos    *repository.Repos
	Notifier Notifier
}

func NewReviewService(repos *repository.Repos, notifier Notifier) *ReviewService {
	return &ReviewService{Repos: repos, Notifier: notifier}
}

// StartReview marks a submitted registration as being looked at. It is
// optional: approve and reject are legal straight from submitted.
func (s *ReviewService) StartReview(actor types.Actor, id string) (*registration.Registration, error) {
	reg, err := s.loadOwned(actor, id)
	if err != nil {
		return nil, err
	}

	if err := reg.Apply(registration.EventStartReview); err != nil {
		return nil, err
	}
	if err := s.Repos.Registration.UpdateRegistration(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Review approves or rejects in one step, stamping the reviewer's
// remarks and the review time together with the status change.
func (s *ReviewService) Review(actor types.Actor, id string, input registration.ReviewDTO) (*registration.Registration, error) {
	var transition registration.TransitionEvent
	switch input.Status {
	case registration.StatusApproved:
		transition = registration.EventApprove
	case registration.StatusRejected:
		transition = registration.EventReject
	default:
		return nil, registration.ErrInvalidTransition
	}

	reg, err := s.loadOwned(actor, id)
	if err != nil {
		return nil, err
	}

	if err := reg.Apply(transition); err != nil {
		return nil, err
	}

	now := time.Now()
	reg.ReviewedAt = &now
	reg.ReviewRemarks = input.Remarks

	if err := s.Repos.Registration.UpdateRegistration(reg); err != nil {
		return nil, err
	}

	s.notifyReviewed(reg)
	return reg, nil
}

func (s *ReviewService) loadOwned(actor types.Actor, id string) (*registration.Registration, error) {
	reg, err := s.Repos.Registration.GetRegistrationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actor.IsVendor() {
		return nil, ErrForbidden
	}
	ev, err := s.Repos.Event.GetEventByID(reg.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ev.VendorID != actor.UserID {
		return nil, ErrForbidden
	}
	return &reg, nil
}

func (s *ReviewService) notifyReviewed(reg *registration.Registration) {
	cfg, err := s.Repos.Config.GetConfigByEventID(reg.EventID)
	if err != nil {
		return
	}
	flags := cfg.EmailNotifications.Data()
	if !flags.ToParticipant {
		return
	}

	ev, err := s.Repos.Event.GetEventByID(reg.EventID)
	if err != nil {
		return
	}

	n := Notification{
		Kind:             NotifyReviewed,
		RegistrationID:   reg.ID,
		EventID:          reg.EventID,
		EventTitle:       ev.Title,
		Status:           string(reg.Status),
		Remarks:          reg.ReviewRemarks,
		ParticipantName:  reg.ParticipantName,
		ParticipantEmail: reg.ParticipantEmail,
	}
	if err := s.Notifier.Publish(n); err != nil {
		log.Warn().Err(err).Str("registration_id", reg.ID).Msg("failed to publish review notification")
	}
}
