package repository

import (
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/registration"
)

type RegistrationRepo interface {
	GetRegistrationByID(id string) (registration.Registration, error)
	FindDraft(eventID, participantID string) (registration.Registration, error)
	CreateRegistration(r *registration.Registration) error
	UpdateRegistration(r *registration.Registration) error
	ListForEvent(eventID string, f registration.ListFilters, p registration.PageRequest) ([]registration.Registration, int64, error)
	ListForParticipant(participantID string, f registration.ListFilters, p registration.PageRequest) ([]registration.Registration, int64, error)
	CountByStatusForEvent(eventID string) (registration.StatusCounts, error)
	CountByStatusForParticipant(participantID string) (registration.StatusCounts, error)
	WithTx(tx *gorm.DB) RegistrationRepo
}

type DBRegistrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) *DBRegistrationRepo {
	return &DBRegistrationRepo{db: db}
}

func (r *DBRegistrationRepo) GetRegistrationByID(id string) (registration.Registration, error) {
	var reg registration.Registration
	err := r.db.First(&reg, "id = ?", id).Error
	return reg, err
}

func (r *DBRegistrationRepo) FindDraft(eventID, participantID string) (registration.Registration, error) {
	var reg registration.Registration
	err := r.db.
		Where("event_id = ? AND participant_id = ? AND status = ?", eventID, participantID, registration.StatusDraft).
		First(&reg).Error
	return reg, err
}

func (r *DBRegistrationRepo) CreateRegistration(reg *registration.Registration) error {
	return r.db.Create(reg).Error
}

func (r *DBRegistrationRepo) UpdateRegistration(reg *registration.Registration) error {
	return r.db.Save(reg).Error
}

func (r *DBRegistrationRepo) ListForEvent(eventID string, f registration.ListFilters, p registration.PageRequest) ([]registration.Registration, int64, error) {
	q := r.db.Model(&registration.Registration{}).Where("event_id = ?", eventID)
	return r.list(q, f, p)
}

func (r *DBRegistrationRepo) ListForParticipant(participantID string, f registration.ListFilters, p registration.PageRequest) ([]registration.Registration, int64, error) {
	q := r.db.Model(&registration.Registration{}).Where("participant_id = ?", participantID)
	return r.list(q, f, p)
}

// list applies the common filters, a deterministic order
// (newest-submission first, id as tiebreak) and pagination.
func (r *DBRegistrationRepo) list(q *gorm.DB, f registration.ListFilters, p registration.PageRequest) ([]registration.Registration, int64, error) {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(
			"confirmation_number ILIKE ? OR participant_name ILIKE ? OR participant_email ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.From != nil {
		q = q.Where("submitted_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("submitted_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p = p.Normalized()
	var regs []registration.Registration
	err := q.
		Order("submitted_at DESC NULLS LAST").
		Order("id DESC").
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&regs).Error
	return regs, total, err
}

func (r *DBRegistrationRepo) CountByStatusForEvent(eventID string) (registration.StatusCounts, error) {
	return r.countByStatus(r.db.Model(&registration.Registration{}).Where("event_id = ?", eventID))
}

func (r *DBRegistrationRepo) CountByStatusForParticipant(participantID string) (registration.StatusCounts, error) {
	return r.countByStatus(r.db.Model(&registration.Registration{}).Where("participant_id = ?", participantID))
}

func (r *DBRegistrationRepo) countByStatus(q *gorm.DB) (registration.StatusCounts, error) {
	type row struct {
		Status registration.Status
		N      int64
	}
	var rows []row
	if err := q.Select("status, count(*) as n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(registration.StatusCounts, len(registration.Statuses))
	for _, s := range registration.Statuses {
		counts[s] = 0
	}
	for _, rw := range rows {
		counts[rw.Status] = rw.N
	}
	return counts, nil
}

func (r *DBRegistrationRepo) WithTx(tx *gorm.DB) RegistrationRepo {
	return &DBRegistrationRepo{db: tx}
}
