package application

import (
	"github.com/evermeet/booking-go/internal/repository"
)

type Services struct {
	Event      *EventService
	Config     *ConfigService
	Submission *SubmissionService
	Payment    *PaymentService
	Review     *ReviewService
	Directory  *DirectoryService
	File       *FileService
}

func New(repos *repository.Repos, payments PaymentProvider, notifier Notifier, store ObjectStore) *Services {
	return &Services{
		Event:      NewEventService(repos),
		Config:     NewConfigService(repos),
		Submission: NewSubmissionService(repos, payments, notifier),
		Payment:    NewPaymentService(repos),
		Review:     NewReviewService(repos, notifier),
		Directory:  NewDirectoryService(repos),
		File:       NewFileService(repos, store),
	}
}
