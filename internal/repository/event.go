package repository

import (
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/event"
)

type EventRepo interface {
	GetEventByID(id string) (event.Event, error)
	CreateEvent(e *event.Event) error
	ListEventsByVendor(vendorID string) ([]event.Event, error)
	WithTx(tx *gorm.DB) EventRepo
}

type DBEventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *DBEventRepo {
	return &DBEventRepo{db: db}
}

func (r *DBEventRepo) GetEventByID(id string) (event.Event, error) {
	var e event.Event
	err := r.db.First(&e, "id = ?", id).Error
	return e, err
}

func (r *DBEventRepo) CreateEvent(e *event.Event) error {
	return r.db.Create(e).Error
}

func (r *DBEventRepo) ListEventsByVendor(vendorID string) ([]event.Event, error) {
	var events []event.Event
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at desc").Find(&events).Error
	return events, err
}

func (r *DBEventRepo) WithTx(tx *gorm.DB) EventRepo {
	return &DBEventRepo{db: tx}
}
