package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/repository"
	"github.com/evermeet/booking-go/pkg/types"
)

// ObjectStore is the external file storage boundary. Registrations
// only ever hold keys into it.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, int64, error)
}

// FileService accepts uploads for file fields and streams them back to
// authorized readers.
type FileService struct {
	Repos *repository.Repos
	Store ObjectStore
}

func NewFileService(repos *repository.Repos, store ObjectStore) *FileService {
	return &FileService{Repos: repos, Store: store}
}

// Upload validates the file against the target field's constraints
// before it reaches storage, then returns the reference the client
// includes in its submission.
func (s *FileService) Upload(ctx context.Context, actor types.Actor, eventID, fieldID, filename, contentType string, size int64, r io.Reader) (*regform.FileRef, error) {
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

	var field *regform.FormField
	for _, f := range cfg.FieldSet() {
		if f.ID == fieldID {
			field = &f
			break
		}
	}
	if field == nil || field.Type != regform.FieldFile {
		return nil, &ValidationFailedError{Fields: map[string]string{fieldID: "not a file field"}}
	}

	if res := regform.CheckFileRules(field.Rules, size, contentType); !res.Valid {
		return nil, &ValidationFailedError{Fields: map[string]string{fieldID: res.Reason}}
	}

	key := fmt.Sprintf("%s/%s/%s/%s-%s", eventID, actor.UserID, fieldID, uuid.NewString(), path.Base(filename))
	if err := s.Store.Put(ctx, key, r, size, contentType); err != nil {
		return nil, err
	}

	return &regform.FileRef{
		Key:         key,
		Name:        path.Base(filename),
		Size:        size,
		ContentType: contentType,
	}, nil
}

// Download streams a registration's uploaded file to the owning
// participant or the event's vendor.
func (s *FileService) Download(ctx context.Context, actor types.Actor, registrationID, fieldID string) (io.ReadCloser, *regform.FileRef, error) {
	reg, err := s.Repos.Registration.GetRegistrationByID(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	if reg.ParticipantID != actor.UserID {
		ev, err := s.Repos.Event.GetEventByID(reg.EventID)
		if err != nil || !actor.IsVendor() || ev.VendorID != actor.UserID {
			return nil, nil, ErrForbidden
		}
	}

	ref, ok := reg.Files.Data()[fieldID]
	if !ok {
		return nil, nil, ErrNotFound
	}

	rc, contentType, size, err := s.Store.Get(ctx, ref.Key)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		ref.ContentType = contentType
	}
	if size > 0 {
		ref.Size = size
	}
	return rc, &ref, nil
}
