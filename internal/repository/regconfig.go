package repository

import (
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/regform"
)

type ConfigRepo interface {
	GetConfigByEventID(eventID string) (regform.RegistrationConfig, error)
	SaveConfig(c *regform.RegistrationConfig) error
	WithTx(tx *gorm.DB) ConfigRepo
}

type DBConfigRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) *DBConfigRepo {
	return &DBConfigRepo{db: db}
}

func (r *DBConfigRepo) GetConfigByEventID(eventID string) (regform.RegistrationConfig, error) {
	var c regform.RegistrationConfig
	err := r.db.First(&c, "event_id = ?", eventID).Error
	return c, err
}

// SaveConfig upserts; one config per event is enforced by the primary
// key on event_id.
func (r *DBConfigRepo) SaveConfig(c *regform.RegistrationConfig) error {
	return r.db.Save(c).Error
}

func (r *DBConfigRepo) WithTx(tx *gorm.DB) ConfigRepo {
	return &DBConfigRepo{db: tx}
}
