package registration

import (
	"time"

	"gorm.io/datatypes"

	"github.com/evermeet/booking-go/internal/domain/regform"
)

type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// Statuses lists every registration status, in lifecycle order. The
// directory uses it to build complete byStatus aggregates.
var Statuses = []Status{
	StatusDraft,
	StatusSubmitted,
	StatusUnderReview,
	StatusApproved,
	StatusRejected,
	StatusWithdrawn,
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusWithdrawn
}

type PaymentStatus string

const (
	PaymentNone    PaymentStatus = "none"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Registration is one participant's response to an event's
// registration config. EventID and ParticipantID never change after
// creation; everything else moves through the state machine.
type Registration struct {
	ID            string `json:"id" gorm:"primaryKey;type:uuid"`
	EventID       string `json:"event_id" gorm:"type:uuid;index;not null"`
	ParticipantID string `json:"participant_id" gorm:"type:uuid;index;not null"`

	// Snapshot of the participant's identity at creation, used by the
	// directory's free-text search and by the notification worker.
	ParticipantName  string `json:"participant_name"`
	ParticipantEmail string `json:"participant_email"`

	Status  Status                                         `json:"status" gorm:"type:registration_status;default:'draft';index"`
	Answers datatypes.JSONType[regform.AnswerMap]          `json:"answers"`
	Files   datatypes.JSONType[map[string]regform.FileRef] `json:"files"`

	// FieldsSnapshot is the config's field set frozen at submission
	// time. Later schema edits never retroactively invalidate this
	// registration; edits while still editable validate against it.
	FieldsSnapshot datatypes.JSONType[[]regform.FormField] `json:"fields_snapshot"`

	PaymentRequired  bool          `json:"payment_required"`
	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"type:payment_status;default:'none'"`
	AmountCents      int64         `json:"amount_cents"`
	Currency         string        `json:"currency" gorm:"size:3"`
	ProviderIntentID string        `json:"provider_intent_id"`

	ConfirmationNumber string `json:"confirmation_number" gorm:"index"`
	ReviewRemarks      string `json:"review_remarks"`
	WithdrawReason     string `json:"withdraw_reason"`

	SubmittedAt *time.Time `json:"submitted_at" gorm:"index"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Editable reports whether the participant still owns the answers:
// drafts always, submitted only until a vendor begins review.
func (r *Registration) Editable() bool {
	return r.Status == StatusDraft || r.Status == StatusSubmitted
}
