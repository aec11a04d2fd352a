package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/domain/registration"
)

func submittedRegistration() registration.Registration {
	return registration.Registration{
		ID:               "reg-1",
		EventID:          "event-1",
		ParticipantID:    "part-1",
		ParticipantName:  "Pat",
		ParticipantEmail: "pat@part.test",
		Status:           registration.StatusSubmitted,
	}
}

// --------------------- StartReview ---------------------
func TestStartReview_Success(t *testing.T) {
	repos, mockEvent, _, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(submittedRegistration(), nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).Return(nil)

	out, err := svc.StartReview(vendorActor(), "reg-1")
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusUnderReview, out.Status)
}

func TestStartReview_AlreadyUnderReview(t *testing.T) {
	repos, mockEvent, _, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	reg := submittedRegistration()
	reg.Status = registration.StatusUnderReview
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)

	_, err := svc.StartReview(vendorActor(), "reg-1")
	assert.ErrorIs(t, err, registration.ErrInvalidTransition)
}

// --------------------- Review ---------------------
func TestReview_Approve(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(submittedRegistration(), nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)

	var saved *registration.Registration
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).DoAndReturn(func(r *registration.Registration) error {
		saved = r
		return nil
	})
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)

	out, err := svc.Review(vendorActor(), "reg-1", registration.ReviewDTO{
		Status:  registration.StatusApproved,
		Remarks: "welcome aboard",
	})
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusApproved, out.Status)
	assert.Equal(t, "welcome aboard", saved.ReviewRemarks)
	assert.NotNil(t, saved.ReviewedAt)
}

func TestReview_Reject(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	reg := submittedRegistration()
	reg.Status = registration.StatusUnderReview
	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).Return(nil)
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(sampleConfig(), nil)

	out, err := svc.Review(vendorActor(), "reg-1", registration.ReviewDTO{
		Status:  registration.StatusRejected,
		Remarks: "event is full",
	})
	assert.NoError(t, err)
	assert.Equal(t, registration.StatusRejected, out.Status)
}

func TestReview_ApproveUnpaidRefused(t *testing.T) {
	repos, mockEvent, _, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	reg := submittedRegistration()
	reg.PaymentRequired = true
	reg.PaymentStatus = registration.PaymentPending

	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(reg, nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil)

	_, err := svc.Review(vendorActor(), "reg-1", registration.ReviewDTO{Status: registration.StatusApproved})
	assert.ErrorIs(t, err, registration.ErrPaymentRequired)
}

func TestReview_InvalidTargetStatus(t *testing.T) {
	repos, _, _, _ := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	_, err := svc.Review(vendorActor(), "reg-1", registration.ReviewDTO{Status: registration.StatusWithdrawn})
	assert.ErrorIs(t, err, registration.ErrInvalidTransition)
}

func TestReview_ParticipantForbidden(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(submittedRegistration(), nil)

	_, err := svc.Review(participantActor(), "reg-1", registration.ReviewDTO{Status: registration.StatusApproved})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReview_OtherVendorForbidden(t *testing.T) {
	repos, mockEvent, _, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(submittedRegistration(), nil)

	ev := sampleEvent()
	ev.VendorID = "vendor-2"
	mockEvent.EXPECT().GetEventByID("event-1").Return(ev, nil)

	_, err := svc.Review(vendorActor(), "reg-1", registration.ReviewDTO{Status: registration.StatusApproved})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReview_UnknownRegistration(t *testing.T) {
	repos, _, _, mockReg := newMockRepos(t)
	svc := NewReviewService(repos, NopNotifier{})

	mockReg.EXPECT().GetRegistrationByID("ghost").Return(registration.Registration{}, gorm.ErrRecordNotFound)

	_, err := svc.Review(vendorActor(), "ghost", registration.ReviewDTO{Status: registration.StatusApproved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReview_NotifiesParticipant(t *testing.T) {
	repos, mockEvent, mockConfig, mockReg := newMockRepos(t)
	notifier := &captureNotifier{}
	svc := NewReviewService(repos, notifier)

	mockReg.EXPECT().GetRegistrationByID("reg-1").Return(submittedRegistration(), nil)
	mockEvent.EXPECT().GetEventByID("event-1").Return(sampleEvent(), nil).Times(2)
	mockReg.EXPECT().UpdateRegistration(gomock.Any()).Return(nil)

	cfg := sampleConfig(func(c *regform.RegistrationConfig) {
		c.EmailNotifications = datatypes.NewJSONType(regform.EmailNotifications{ToParticipant: true})
	})
	mockConfig.EXPECT().GetConfigByEventID("event-1").Return(cfg, nil)

	_, err := svc.Review(vendorActor(), "reg-1", registration.ReviewDTO{
		Status:  registration.StatusRejected,
		Remarks: "sold out",
	})
	assert.NoError(t, err)

	assert.Len(t, notifier.published, 1)
	n := notifier.published[0]
	assert.Equal(t, NotifyReviewed, n.Kind)
	assert.Equal(t, string(registration.StatusRejected), n.Status)
	assert.Equal(t, "sold out", n.Remarks)
	assert.Equal(t, "pat@part.test", n.ParticipantEmail)
}
