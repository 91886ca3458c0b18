package http

import (
	notificationUsecases "github.com/teamboard/teamboard/internal/application/notification/usecases"
	reminderUsecases "github.com/teamboard/teamboard/internal/application/reminder/usecases"
	settingUsecases "github.com/teamboard/teamboard/internal/application/setting/usecases"
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/config"
	"github.com/teamboard/teamboard/internal/infrastructure/crypto"
	"github.com/teamboard/teamboard/internal/infrastructure/messenger"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

// allUseCases holds the use cases and the services they share.
type allUseCases struct {
	credentialProvider *settingUsecases.MessengerCredentialProvider
	messengerClient    *messenger.Client
	createNotification *notificationUsecases.CreateNotificationUseCase
	processRemindersUC *reminderUsecases.ProcessRemindersUseCase
}

func newUseCases(repos *repositories, codec crypto.Codec, lease reminder.RunLease, cfg *config.Config, log logger.Interface) *allUseCases {
	credentialProvider := settingUsecases.NewMessengerCredentialProvider(
		repos.messengerConfigRepo,
		codec,
		cfg.Messenger,
		log.Named("messenger-credentials"),
	)
	messengerClient := messenger.NewClient(cfg.Messenger, credentialProvider, log.Named("messenger"))

	createNotification := notificationUsecases.NewCreateNotificationUseCase(
		repos.notificationRepo,
		repos.preferenceRepo,
		log,
	)

	resolver := reminderUsecases.NewChannelResolver(repos.channelRepo)
	collectors := []reminderUsecases.ItemCollector{
		reminderUsecases.NewActivityCollector(repos.reminderRepo, repos.templateRepo, resolver, createNotification, log),
		reminderUsecases.NewTaskCollector(repos.reminderRepo, repos.templateRepo, resolver, createNotification, log),
	}

	processRemindersUC := reminderUsecases.NewProcessRemindersUseCase(
		collectors,
		repos.channelRepo,
		messengerClient,
		credentialProvider,
		lease,
		reminderUsecases.ProcessRemindersConfig{
			DispatchDelay: cfg.Reminder.DispatchDelay,
			LeaseTTL:      cfg.Reminder.LeaseTTL,
		},
		log.Named("reminders"),
	)

	return &allUseCases{
		credentialProvider: credentialProvider,
		messengerClient:    messengerClient,
		createNotification: createNotification,
		processRemindersUC: processRemindersUC,
	}
}
