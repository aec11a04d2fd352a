package registration

import (
	"time"

	"github.com/evermeet/booking-go/internal/domain/regform"
)

type SubmitDTO struct {
	Answers regform.AnswerMap          `json:"answers"`
	Files   map[string]regform.FileRef `json:"files"`
	AsDraft bool                       `json:"as_draft"`
}

type UpdateDTO struct {
	Answers regform.AnswerMap          `json:"answers"`
	Files   map[string]regform.FileRef `json:"files"`
}

type ReviewDTO struct {
	Status  Status `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

type WithdrawDTO struct {
	Reason string `json:"reason"`
}

type ConfirmPaymentDTO struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// ListFilters narrows a directory listing. The byStatus aggregate is
// always computed over the unfiltered scope.
type ListFilters struct {
	Status Status     `form:"status"`
	Search string     `form:"search"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
}

type PageRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

func (p PageRequest) Normalized() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 20
	}
	return p
}

type StatusCounts map[Status]int64

// Total sums the per-status counts; by construction it equals the
// unfiltered registration count of the scope.
func (s StatusCounts) Total() int64 {
	var total int64
	for _, n := range s {
		total += n
	}
	return total
}

type ListResult struct {
	Registrations []Registration `json:"registrations"`
	Total         int64          `json:"total"`
	ByStatus      StatusCounts   `json:"by_status"`
}

// PaymentIntentInfo is handed back to the submitting client so it can
// complete the payment with the provider.
type PaymentIntentInfo struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
}

// SubmitResult pairs the stored registration with the payment handle
// when the event is priced.
type SubmitResult struct {
	Registration *Registration      `json:"registration"`
	Payment      *PaymentIntentInfo `json:"payment,omitempty"`
}
