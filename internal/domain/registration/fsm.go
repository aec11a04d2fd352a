package registration

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid registration status transition")
	ErrPaymentRequired   = errors.New("registration cannot be approved before payment is completed")
)

// TransitionEvent names an attempted change to a registration's
// lifecycle.
type TransitionEvent string

const (
	EventSubmit          TransitionEvent = "submit"
	EventSubmitForReview TransitionEvent = "submit_for_review"
	EventStartReview     TransitionEvent = "start_review"
	EventApprove         TransitionEvent = "approve"
	EventReject          TransitionEvent = "reject"
	EventWithdraw        TransitionEvent = "withdraw"
)

// transitions is the single source of truth for the lifecycle:
// state × event → new state. Anything absent is an invalid
// transition, which makes the terminal states self-enforcing.
var transitions = map[Status]map[TransitionEvent]Status{
	StatusDraft: {
		EventSubmit:          StatusSubmitted,
		EventSubmitForReview: StatusUnderReview,
		EventWithdraw:        StatusWithdrawn,
	},
	StatusSubmitted: {
		EventStartReview: StatusUnderReview,
		EventApprove:     StatusApproved,
		EventReject:      StatusRejected,
		EventWithdraw:    StatusWithdrawn,
	},
	StatusUnderReview: {
		EventApprove:  StatusApproved,
		EventReject:   StatusRejected,
		EventWithdraw: StatusWithdrawn,
	},
}

// Apply advances the registration through the transition table. The
// payment guard on approval lives here and nowhere else: a priced
// registration can only become approved once the payment gate has
// marked it paid.
func (r *Registration) Apply(ev TransitionEvent) error {
	next, ok := transitions[r.Status][ev]
	if !ok {
		return ErrInvalidTransition
	}

	if ev == EventApprove && r.PaymentRequired && r.PaymentStatus != PaymentPaid {
		return ErrPaymentRequired
	}

	r.Status = next
	return nil
}

// CanApply reports whether the event would succeed, without mutating.
func (r *Registration) CanApply(ev TransitionEvent) bool {
	probe := *r
	return probe.Apply(ev) == nil
}
