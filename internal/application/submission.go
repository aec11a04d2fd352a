package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/domain/registration"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/pkg/types"
)

// SubmissionService turns participant input into registrations. It is
// the only writer of draft/submitted registrations; review-side
// transitions live in ReviewService and payment ones in
// PaymentService.
type SubmissionService struct {
	Repos    *repository.Repos
	Payments PaymentProvider
	Notifier Notifier
}

func NewSubmissionService(repos *repository.Repos, payments PaymentProvider, notifier Notifier) *SubmissionService {
	return &SubmissionService{Repos: repos, Payments: payments, Notifier: notifier}
}

// Submit validates the input against the event's active config and
// persists a registration. An existing draft for the same participant
// and event is reused, which makes resubmission after a client-side
// cancellation idempotent.
func (s *SubmissionService) Submit(actor types.Actor, eventID string, input registration.SubmitDTO) (*registration.SubmitResult, error) {
	if !actor.IsParticipant() {
		return nil, ErrForbidden
	}

	cfg, err := s.Repos.Config.GetConfigByEventID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !cfg.Enabled {
		return nil, ErrRegistrationDisabled
	}

	fields := cfg.FieldSet()
	if failures := validateAnswers(fields, input.Answers, input.Files); len(failures) > 0 {
		return nil, &ValidationFailedError{Fields: failures}
	}

	reg, err := s.Repos.Registration.FindDraft(eventID, actor.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		reg = registration.Registration{
			ID:               uuid.NewString(),
			EventID:          eventID,
			ParticipantID:    actor.UserID,
			ParticipantName:  actor.Name,
			ParticipantEmail: actor.Email,
			Status:           registration.StatusDraft,
			PaymentStatus:    registration.PaymentNone,
		}
	}

	reg.Answers = datatypes.NewJSONType(input.Answers)
	reg.Files = datatypes.NewJSONType(input.Files)

	if input.AsDraft {
		if err := s.saveRegistration(&reg); err != nil {
			return nil, err
		}
		return &registration.SubmitResult{Registration: &reg}, nil
	}

	ev, err := s.Repos.Event.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	transition := registration.EventSubmit
	if cfg.RequiresApproval {
		transition = registration.EventSubmitForReview
	}
	if err := reg.Apply(transition); err != nil {
		return nil, err
	}

	now := time.Now()
	reg.SubmittedAt = &now
	reg.ConfirmationNumber = newConfirmationNumber()
	reg.FieldsSnapshot = datatypes.NewJSONType(fields)

	var payment *registration.PaymentIntentInfo
	if ev.Priced() {
		reg.PaymentRequired = true
		reg.PaymentStatus = registration.PaymentPending
		reg.AmountCents = ev.PriceCents
		reg.Currency = ev.Currency

		intentID, clientSecret, err := s.Payments.CreateIntent(ev.PriceCents, ev.Currency, reg.ID)
		if err != nil {
			return nil, err
		}
		reg.ProviderIntentID = intentID
		payment = &registration.PaymentIntentInfo{PaymentIntentID: intentID, ClientSecret: clientSecret}
	}

	if err := s.saveRegistration(&reg); err != nil {
		return nil, err
	}

	s.notifySubmitted(cfg, ev.Title, ev.ContactEmail, &reg)

	return &registration.SubmitResult{Registration: &reg, Payment: payment}, nil
}

// Update replaces answers and files while the participant still owns
// the registration. Submitted registrations are re-validated against
// the field set snapshotted at submission time, so later schema edits
// cannot strand them.
func (s *SubmissionService) Update(actor types.Actor, id string, input registration.UpdateDTO) (*registration.Registration, error) {
	reg, err := s.Repos.Registration.GetRegistrationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if reg.ParticipantID != actor.UserID {
		return nil, ErrForbidden
	}
	if !reg.Editable() {
		return nil, ErrNotEditable
	}

	fields := reg.FieldsSnapshot.Data()
	if reg.Status == registration.StatusDraft {
		cfg, err := s.Repos.Config.GetConfigByEventID(reg.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		fields = cfg.FieldSet()
	}

	if failures := validateAnswers(fields, input.Answers, input.Files); len(failures) > 0 {
		return nil, &ValidationFailedError{Fields: failures}
	}

	reg.Answers = datatypes.NewJSONType(input.Answers)
	reg.Files = datatypes.NewJSONType(input.Files)
	if err := s.Repos.Registration.UpdateRegistration(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Withdraw moves a non-terminal registration to withdrawn. Both sides
// may do it: the participant gives up, or the vendor removes the
// registration from the queue.
func (s *SubmissionService) Withdraw(actor types.Actor, id, reason string) error {
	reg, err := s.Repos.Registration.GetRegistrationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if reg.ParticipantID != actor.UserID {
		if err := s.requireEventVendor(actor, reg.EventID); err != nil {
			return err
		}
	}

	if err := reg.Apply(registration.EventWithdraw); err != nil {
		return err
	}
	reg.WithdrawReason = reason
	return s.Repos.Registration.UpdateRegistration(&reg)
}

func (s *SubmissionService) saveRegistration(reg *registration.Registration) error {
	if reg.CreatedAt.IsZero() {
		return s.Repos.Registration.CreateRegistration(reg)
	}
	return s.Repos.Registration.UpdateRegistration(reg)
}

func (s *SubmissionService) requireEventVendor(actor types.Actor, eventID string) error {
	if !actor.IsVendor() {
		return ErrForbidden
	}
	ev, err := s.Repos.Event.GetEventByID(eventID)
	if err != nil {
		return ErrForbidden
	}
	if ev.VendorID != actor.UserID {
		return ErrForbidden
	}
	return nil
}

func (s *SubmissionService) notifySubmitted(cfg regform.RegistrationConfig, eventTitle, vendorEmail string, reg *registration.Registration) {
	flags := cfg.EmailNotifications.Data()
	if !flags.ToVendor && !flags.ToParticipant {
		return
	}

	n := Notification{
		Kind:            NotifySubmitted,
		RegistrationID:  reg.ID,
		EventID:         reg.EventID,
		EventTitle:      eventTitle,
		Status:          string(reg.Status),
		ParticipantName: reg.ParticipantName,
	}
	if flags.ToParticipant {
		n.ParticipantEmail = reg.ParticipantEmail
	}
	if flags.ToVendor {
		n.VendorEmail = vendorEmail
	}
	if err := s.Notifier.Publish(n); err != nil {
		log.Warn().Err(err).Str("registration_id", reg.ID).Msg("failed to publish submission notification")
	}
}

// validateAnswers runs every field through the schema model and
// collects all failures instead of stopping at the first. Answer keys
// that match no field are reported too.
func validateAnswers(fields []regform.FormField, answers regform.AnswerMap, files map[string]regform.FileRef) map[string]string {
	failures := make(map[string]string)
	known := make(map[string]bool, len(fields))

	for _, f := range fields {
		known[f.ID] = true
		if res := regform.ValidateField(f, answers, files); !res.Valid {
			failures[f.ID] = res.Reason
		}
	}
	for id := range answers {
		if !known[id] {
			failures[id] = "unknown field"
		}
	}
	for id := range files {
		if !known[id] {
			failures[id] = "unknown field"
		}
	}
	return failures
}

func newConfirmationNumber() string {
	return "REG-" + strings.ToUpper(uuid.NewString()[:8])
}
