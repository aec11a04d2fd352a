package application

// NotificationKind tags what happened to a registration.
type NotificationKind string

const (
	NotifySubmitted NotificationKind = "submitted"
	NotifyReviewed  NotificationKind = "reviewed"
)

// Notification is the fire-and-forget message handed to the external
// notifier. Recipients are resolved here so the worker never has to
// query the database.
type Notification struct {
	Kind             NotificationKind `json:"kind"`
	RegistrationID   string           `json:"registration_id"`
	EventID          string           `json:"event_id"`
	EventTitle       string           `json:"event_title"`
	Status           string           `json:"status"`
	Remarks          string           `json:"remarks,omitempty"`
	ParticipantName  string           `json:"participant_name"`
	ParticipantEmail string           `json:"participant_email,omitempty"`
	VendorEmail      string           `json:"vendor_email,omitempty"`
}

// Notifier publishes notifications without blocking the calling
// operation. Delivery failures are the notifier's problem, never the
// caller's.
type Notifier interface {
	Publish(n Notification) error
}

// NopNotifier drops everything; used when no broker is configured and
// in tests.
type NopNotifier struct{}

func (NopNotifier) Publish(Notification) error { return nil }
