package application

import (
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/domain/registration"
)

func validAnswers() regform.AnswerMap {
	return regform.AnswerMap{"name": "Pat Doe", "size": "m"}
}

// --------------------- Submit ---------------------
func TestSubmit_NonParticipantForbidden(t *testing.T) {
	repos, _, _, _ := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	_, err := svc.Submit(vendorActor(), "event-1", registration.SubmitDTO{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmit_ConfigNotFound(t *testing.T) {
	repos, _, mockConfig, _ := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(regform.RegistrationConfig{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmit_DisabledConfig(t *testing.T) {
	repos, _, mockConfig, _ := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	cfg := sampleConfig(func(c *regform.RegistrationConfig) { c.Enabled = false })
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(cfg, nil)

	_, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.ErrorIs(t, err, ErrRegistrationDisabled)
}

func TestSubmit_CollectsAllValidationFailures(t *testing.T) {
	repos, _, mockConfig, _ := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)

	answers := regform.AnswerMap{
		"size":  "xl",    // not a declared option
		"rogue": "value", // no such field
	}
	_, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: answers})

	var verr *ValidationFailedError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "size")
	assert.Contains(t, verr.Fields, "rogue")
}

func TestSubmit_AsDraft(t *testing.T) {
	repos, _, mockConfig, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(registration.Registration{}, gorm.ErrRecordNotFound)

	var saved *registration.Registration
	mockReg.EXPECT().CreateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})

	res, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers(), AsDraft: true})
	assert.NoError(t, err)
	assert.Nil(t, res.Payment)
	assert.Equal(t, registration.StatusDraft, saved.Status)
	assert.Empty(t, saved.ConfirmationNumber)
	assert.Nil(t, saved.SubmittedAt)
	assert.Equal(t, "part-1", saved.ParticipantID)
	assert.Equal(t, "pat@part.test", saved.ParticipantEmail)
}

func TestSubmit_FreeEvent(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	payments := &stubPayments{}
	svc := NewSubmissionService(repos, payments, NopNotifier{})

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(registration.Registration{}, gorm.ErrRecordNotFound)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)

	var saved *registration.Registration
	mockReg.EXPECT().CreateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})

	res, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.NoError(t, err)
	assert.Nil(t, res.Payment)
	assert.Equal(t, 0, payments.calls)

	assert.Equal(t, registration.StatusSubmitted, saved.Status)
	assert.True(t, strings.HasPrefix(saved.ConfirmationNumber, "REG-"))
	assert.NotNil(t, saved.SubmittedAt)
	assert.False(t, saved.PaymentRequired)
	assert.Equal(t, sampleFields(), saved.FieldsSnapshot.Data())
}

func TestSubmit_RequiresApprovalGoesToReviewQueue(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	cfg := sampleConfig(func(c *regform.RegistrationConfig) { c.RequiresApproval = true })
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(cfg, nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(registration.Registration{}, gorm.ErrRecordNotFound)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)

	var saved *registration.Registration
	mockReg.EXPECT().CreateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})

	_, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusUnderReview, saved.Status)
}

func TestSubmit_PricedEventCreatesIntent(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	payments := &stubPayments{intentID: "pi_123", clientSecret: "secret_abc"}
	svc := NewSubmissionService(repos, payments, NopNotifier{})

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(registration.Registration{}, gorm.ErrRecordNotFound)
	mockEvent.EXPECT().GetEventByID("event-1").Return(pricedEvent(), nil)

	var saved *registration.Registration
	mockReg.EXPECT().CreateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})

	res, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.NoError(t, err)
	assert.Equal(t, 1, payments.calls)
	assert.Equal(t, "pi_123", res.Payment.PaymentIntentID)
	assert.Equal(t, "secret_abc", res.Payment.ClientSecret)

	assert.True(t, saved.PaymentRequired)
	assert.Equal(t, registration.PaymentPending, saved.PaymentStatus)
	assert.Equal(t, int64(2500), saved.AmountCents)
	assert.Equal(t, "pi_123", saved.ProviderIntentID)
	// Submitted but not approvable until the payment clears.
	assert.Equal(t, registration.StatusSubmitted, saved.Status)
}

func TestSubmit_ReusesExistingDraft(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	draft := registration.Registration{
		ID:            "reg-1",
		EventID:       "event-1",
		ParticipantID: "part-1",
		Status:        registration.StatusDraft,
		CreatedAt:     time.Now(),
	}

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(draft, nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)

	var saved *registration.Registration
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})

	res, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.NoError(t, err)
	assert.Equal(t, "reg-1", res.Registration.ID)
	assert.Equal(t, "reg-1", saved.ID)
	assert.Equal(t, registration.StatusSubmitted, saved.Status)
}

func TestSubmit_PublishesNotification(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	notifier := &captureNotifier{}
	svc := NewSubmissionService(repos, &stubPayments{}, notifier)

	cfg := sampleConfig(func(c *regform.RegistrationConfig) {
		c.EmailNotifications = datatypes.NewJSONType(regform.EmailNotifications{ToVendor: true, ToParticipant: true})
	})
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(cfg, nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(registration.Registration{}, gorm.ErrRecordNotFound)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)
	mockReg.EXPECT().CreateRegistration(gomock.Any()).Return(nil)

	_, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.NoError(t, err)

	assert.Len(t, notifier.published, 1)
	n := notifier.published[0]
	assert.Equal(t, NotifySubmitted, n.Kind)
	assert.Equal(t, "Summer Fair", n.EventTitle)
	assert.Equal(t, "pat@part.test", n.ParticipantEmail)
	assert.Equal(t, "vera@vendor.test", n.VendorEmail)
}

func TestSubmit_NoNotificationWhenFlagsOff(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	notifier := &captureNotifier{}
	svc := NewSubmissionService(repos, &stubPayments{}, notifier)

	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)
	mockReg.EXPECT().FindDraft("event-1", "part-1").Return(registration.Registration{}, gorm.ErrRecordNotFound)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)
	mockReg.EXPECT().CreateRegistration(gomock.Any()).Return(nil)

	_, err := svc.Submit(participantActor(), "event-1", registration.SubmitDTO{Answers: validAnswers()})
	assert.NoError(t, err)
	assert.Empty(t, notifier.published)
}

// --------------------- Update ---------------------
func TestUpdate_DraftValidatesAgainstLiveConfig(t *testing.T) {
	repos, _, mockConfig, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	draft := registration.Registration{
		ID:            "reg-1",
		EventID:       "event-1",
		ParticipantID: "part-1",
		Status:        registration.StatusDraft,
	}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(draft, nil)
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).Return(nil)

	out, err := svc.Update(participantActor(), "reg-1", registration.UpdateDTO{Answers: validAnswers()})
	assert.NoError(t, err)
	assert.Equal(t, validAnswers(), out.Answers.Data())
}

func TestUpdate_SubmittedValidatesAgainstSnapshot(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	// Snapshot still carries the original fields even if the vendor
	// has since rewritten the config.
	reg := registration.Registration{
		ID:             "reg-1",
		EventID:        "event-1",
		ParticipantID:  "part-1",
		Status:         registration.StatusSubmitted,
		FieldsSnapshot: datatypes.NewJSONType(sampleFields()),
	}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).Return(nil)

	_, err := svc.Update(participantActor(), "reg-1", registration.UpdateDTO{Answers: validAnswers()})
	assert.NoError(t, err)
}

func TestUpdate_NotOwnerForbidden(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	reg := registration.Registration{ID: "reg-1", ParticipantID: "someone-else", Status: registration.StatusDraft}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)

	_, err := svc.Update(participantActor(), "reg-1", registration.UpdateDTO{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_UnderReviewNotEditable(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	reg := registration.Registration{ID: "reg-1", ParticipantID: "part-1", Status: registration.StatusUnderReview}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)

	_, err := svc.Update(participantActor(), "reg-1", registration.UpdateDTO{})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUpdate_ValidationFailure(t *testing.T) {
	repos, _, mockConfig, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	draft := registration.Registration{ID: "reg-1", EventID: "event-1", ParticipantID: "part-1", Status: registration.StatusDraft}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(draft, nil)
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)

	_, err := svc.Update(participantActor(), "reg-1", registration.UpdateDTO{Answers: regform.AnswerMap{"size": "xxl"}})

	var verr *ValidationFailedError
	assert.ErrorAs(t, err, &verr)
}

// --------------------- Withdraw ---------------------
func TestWithdraw_ByParticipant(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	reg := registration.Registration{ID: "reg-1", EventID: "event-1", ParticipantID: "part-1", Status: registration.StatusSubmitted}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)

	var saved *registration.Registration
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})

	err := svc.Withdraw(participantActor(), "reg-1", "schedule conflict")
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusWithdrawn, saved.Status)
	assert.Equal(t, "schedule conflict", saved.WithdrawReason)
}

func TestWithdraw_ByEventVendor(t *testing.T) {
	repos, mockEvent, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	reg := registration.Registration{ID: "reg-1", EventID: "event-1", ParticipantID: "part-1", Status: registration.StatusUnderReview}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).Return(nil)

	err := svc.Withdraw(vendorActor(), "reg-1", "duplicate entry")
	assert.NoError(t, err)
}

func TestWithdraw_StrangerForbidden(t *testing.T) {
	repos, mockEvent, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	reg := registration.Registration{ID: "reg-1", EventID: "event-1", ParticipantID: "part-1", Status: registration.StatusSubmitted}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)

	otherVendor := sampleEvent()
	otherVendor.VendorID = "vendor-2"
	mockEvent.EXPECT().GetEventByID("event-1").Return(otherVendor, nil)

	err := svc.Withdraw(vendorActor(), "reg-1", "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestWithdraw_TerminalStatusRefused(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewSubmissionService(repos, &stubPayments{}, NopNotifier{})

	reg := registration.Registration{ID: "reg-1", EventID: "event-1", ParticipantID: "part-1", Status: registration.StatusApproved}
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)

	err := svc.Withdraw(participantActor(), "reg-1", "")
	assert.ErrorIs(t, err, registration.ErrInvalidTransition)
}
