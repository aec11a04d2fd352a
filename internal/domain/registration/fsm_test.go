package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --------------------- Apply ---------------------
func TestApply_DraftTransitions(t *testing.T) {
	r := Registration{Status: StatusDraft}
	assert.NoError(t, r.Apply(EventSubmit))
	assert.Equal(t, StatusSubmitted, r.Status)

	r = Registration{Status: StatusDraft}
	assert.NoError(t, r.Apply(EventSubmitForReview))
	assert.Equal(t, StatusUnderReview, r.Status)

	r = Registration{Status: StatusDraft}
	assert.NoError(t, r.Apply(EventWithdraw))
	assert.Equal(t, StatusWithdrawn, r.Status)
}

func TestApply_SubmittedTransitions(t *testing.T) {
	r := Registration{Status: StatusSubmitted}
	assert.NoError(t, r.Apply(EventStartReview))
	assert.Equal(t, StatusUnderReview, r.Status)

	r = Registration{Status: StatusSubmitted}
	assert.NoError(t, r.Apply(EventApprove))
	assert.Equal(t, StatusApproved, r.Status)

	r = Registration{Status: StatusSubmitted}
	assert.NoError(t, r.Apply(EventReject))
	assert.Equal(t, StatusRejected, r.Status)

	r = Registration{Status: StatusSubmitted}
	assert.NoError(t, r.Apply(EventWithdraw))
	assert.Equal(t, StatusWithdrawn, r.Status)
}

func TestApply_UnderReviewTransitions(t *testing.T) {
	r := Registration{Status: StatusUnderReview}
	assert.NoError(t, r.Apply(EventApprove))
	assert.Equal(t, StatusApproved, r.Status)

	r = Registration{Status: StatusUnderReview}
	assert.NoError(t, r.Apply(EventReject))
	assert.Equal(t, StatusRejected, r.Status)

	r = Registration{Status: StatusUnderReview}
	assert.NoError(t, r.Apply(EventWithdraw))
	assert.Equal(t, StatusWithdrawn, r.Status)
}

func TestApply_InvalidTransitions(t *testing.T) {
	cases := []struct {
		status Status
		event  TransitionEvent
	}{
		{StatusDraft, EventApprove},
		{StatusDraft, EventReject},
		{StatusDraft, EventStartReview},
		{StatusSubmitted, EventSubmit},
		{StatusUnderReview, EventSubmit},
		{StatusUnderReview, EventStartReview},
	}
	for _, c := range cases {
		r := Registration{Status: c.status}
		err := r.Apply(c.event)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s on %s", c.status, c.event)
		assert.Equal(t, c.status, r.Status, "status must not change on a refused transition")
	}
}

func TestApply_TerminalStatesAreFinal(t *testing.T) {
	events := []TransitionEvent{
		EventSubmit, EventSubmitForReview, EventStartReview,
		EventApprove, EventReject, EventWithdraw,
	}
	for _, s := range []Status{StatusApproved, StatusRejected, StatusWithdrawn} {
		assert.True(t, s.Terminal())
		for _, ev := range events {
			r := Registration{Status: s, PaymentStatus: PaymentPaid}
			assert.ErrorIs(t, r.Apply(ev), ErrInvalidTransition, "from %s on %s", s, ev)
		}
	}
}

// --------------------- Payment guard ---------------------
func TestApply_ApproveBlockedUntilPaid(t *testing.T) {
	for _, ps := range []PaymentStatus{PaymentNone, PaymentPending, PaymentFailed} {
		r := Registration{
			Status:          StatusSubmitted,
			PaymentRequired: true,
			PaymentStatus:   ps,
		}
		err := r.Apply(EventApprove)
		assert.ErrorIs(t, err, ErrPaymentRequired, "payment status %s", ps)
		assert.Equal(t, StatusSubmitted, r.Status)
	}
}

func TestApply_ApproveAllowedWhenPaid(t *testing.T) {
	r := Registration{
		Status:          StatusUnderReview,
		PaymentRequired: true,
		PaymentStatus:   PaymentPaid,
	}
	assert.NoError(t, r.Apply(EventApprove))
	assert.Equal(t, StatusApproved, r.Status)
}

func TestApply_FreeRegistrationIgnoresPaymentGuard(t *testing.T) {
	r := Registration{Status: StatusSubmitted, PaymentRequired: false}
	assert.NoError(t, r.Apply(EventApprove))
	assert.Equal(t, StatusApproved, r.Status)
}

func TestApply_RejectAndWithdrawUnaffectedByPayment(t *testing.T) {
	r := Registration{Status: StatusSubmitted, PaymentRequired: true, PaymentStatus: PaymentPending}
	assert.NoError(t, r.Apply(EventReject))

	r = Registration{Status: StatusSubmitted, PaymentRequired: true, PaymentStatus: PaymentPending}
	assert.NoError(t, r.Apply(EventWithdraw))
}

// --------------------- CanApply ---------------------
func TestCanApply_DoesNotMutate(t *testing.T) {
	r := Registration{Status: StatusSubmitted}
	assert.True(t, r.CanApply(EventApprove))
	assert.Equal(t, StatusSubmitted, r.Status)

	assert.False(t, r.CanApply(EventSubmit))
}

func TestEditable(t *testing.T) {
	assert.True(t, (&Registration{Status: StatusDraft}).Editable())
	assert.True(t, (&Registration{Status: StatusSubmitted}).Editable())
	assert.False(t, (&Registration{Status: StatusUnderReview}).Editable())
	assert.False(t, (&Registration{Status: StatusApproved}).Editable())
	assert.False(t, (&Registration{Status: StatusRejected}).Editable())
	assert.False(t, (&Registration{Status: StatusWithdrawn}).Editable())
}

func TestStatusCounts_Total(t *testing.T) {
	counts := StatusCounts{
		StatusDraft:     2,
		StatusSubmitted: 3,
		StatusApproved:  5,
	}
	assert.Equal(t, int64(10), counts.Total())
}

func TestPageRequest_Normalized(t *testing.T) {
	p := PageRequest{}.Normalized()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = PageRequest{Page: -3, Limit: 500}.Normalized()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = PageRequest{Page: 4, Limit: 50}.Normalized()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 50, p.Limit)
}
