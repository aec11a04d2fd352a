package event

import "time"

// Event is the minimal marketplace entity the registration pipeline
// hangs off. The full catalogue (venues, schedules, media) lives in the
// marketplace service; here an event supplies its owner and its price.
type Event struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid"`
	VendorID   string `json:"vendor_id" gorm:"type:uuid;index;not null"`
	Title      string `json:"title" gorm:"not null"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency" gorm:"size:3;default:'USD'"`
	// ContactEmail receives vendor-side notifications for this event.
	ContactEmail string    `json:"contact_email"`
	StartsAt     time.Time `json:"starts_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Priced reports whether submitting a registration requires payment.
func (e Event) Priced() bool {
	return e.PriceCents > 0
}

type CreateEventDTO struct {
	Title        string    `json:"title" binding:"required"`
	PriceCents   int64     `json:"price_cents" binding:"gte=0"`
	Currency     string    `json:"currency"`
	ContactEmail string    `json:"contact_email" binding:"omitempty,email"`
	StartsAt     time.Time `json:"starts_at"`
}
