package application

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/pkg/types"
)

// ConfigService owns the registration config lifecycle. None of its
// operations touch existing registrations: submitted answers keep the
// field set they were validated against.
type ConfigService struct {
	Repos *repository.Repos
}

func NewConfigService(repos *repository.Repos) *ConfigService {
	return &ConfigService{Repos: repos}
}

func (s *ConfigService) Get(eventID string) (*regform.RegistrationConfig, error) {
	cfg, err := s.Repos.Config.GetConfigByEventID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// Save creates or replaces the event's config. The full field set is
// validated before anything is persisted.
func (s *ConfigService) Save(actor types.Actor, eventID string, input regform.SaveConfigDTO) (*regform.RegistrationConfig, error) {
	if err := s.requireEventVendor(actor, eventID); err != nil {
		return nil, err
	}

	if problems := regform.ValidateFieldSet(input.Fields); len(problems) > 0 {
		return nil, &InvalidSchemaError{Fields: problems}
	}

	cfg, err := s.Repos.Config.GetConfigByEventID(eventID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cfg = regform.RegistrationConfig{EventID: eventID, VendorID: actor.UserID, Enabled: true}
	}

	cfg.RequiresApproval = input.RequiresApproval
	cfg.Fields = datatypes.NewJSONType(regform.NormalizeOrder(input.Fields))
	cfg.EmailNotifications = datatypes.NewJSONType(input.EmailNotifications)
	if input.Enabled != nil {
		cfg.Enabled = *input.Enabled
	}

	if err := s.Repos.Config.SaveConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Duplicate copies another of the vendor's configs onto eventID with
// freshly generated field ids, so ids never alias across events.
func (s *ConfigService) Duplicate(actor types.Actor, eventID, sourceEventID string) (*regform.RegistrationConfig, error) {
	if err := s.requireEventVendor(actor, eventID); err != nil {
		return nil, err
	}
	if err := s.requireEventVendor(actor, sourceEventID); err != nil {
		return nil, err
	}

	source, err := s.Repos.Config.GetConfigByEventID(sourceEventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cfg := regform.RegistrationConfig{
		EventID:            eventID,
		VendorID:           actor.UserID,
		Enabled:            true,
		RequiresApproval:   source.RequiresApproval,
		Fields:             datatypes.NewJSONType(regform.RegenerateIDs(source.FieldSet())),
		EmailNotifications: source.EmailNotifications,
	}

	if err := s.Repos.Config.SaveConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Disable turns new submissions away. Idempotent; existing
// registrations are left alone.
func (s *ConfigService) Disable(actor types.Actor, eventID string) error {
	if err := s.requireEventVendor(actor, eventID); err != nil {
		return err
	}

	cfg, err := s.Repos.Config.GetConfigByEventID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !cfg.Enabled {
		return nil
	}
	cfg.Enabled = false
	return s.Repos.Config.SaveConfig(&cfg)
}

func (s *ConfigService) requireEventVendor(actor types.Actor, eventID string) error {
	if !actor.IsVendor() {
		return ErrForbidden
	}
	e, err := s.Repos.Event.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if e.VendorID != actor.UserID {
		return ErrForbidden
	}
	return nil
}
