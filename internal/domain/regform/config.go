package regform

import (
	"time"

	"gorm.io/datatypes"
)

// EmailNotifications are advisory flags for the notification worker;
// they are not part of the registration state machine.
type EmailNotifications struct {
	ToVendor      bool `json:"to_vendor"`
	ToParticipant bool `json:"to_participant"`
}

// RegistrationConfig is the vendor-authored form schema for one event.
// At most one exists per event; disabling it refuses new submissions
// without touching existing registrations.
type RegistrationConfig struct {
	EventID            string                                 `json:"event_id" gorm:"primaryKey;type:uuid"`
	VendorID           string                                 `json:"vendor_id" gorm:"type:uuid;index;not null"`
	Enabled            bool                                   `json:"enabled" gorm:"default:true"`
	RequiresApproval   bool                                   `json:"requires_approval"`
	Fields             datatypes.JSONType[[]FormField]        `json:"fields"`
	EmailNotifications datatypes.JSONType[EmailNotifications] `json:"email_notifications"`
	CreatedAt          time.Time                              `json:"created_at"`
	UpdatedAt          time.Time                              `json:"updated_at"`
}

func (c *RegistrationConfig) FieldSet() []FormField {
	return c.Fields.Data()
}

type SaveConfigDTO struct {
	Enabled            *bool              `json:"enabled"`
	RequiresApproval   bool               `json:"requires_approval"`
	Fields             []FormField        `json:"fields" binding:"required"`
	EmailNotifications EmailNotifications `json:"email_notifications"`
}

type DuplicateConfigDTO struct {
	SourceEventID string `json:"source_event_id" binding:"required"`
}
