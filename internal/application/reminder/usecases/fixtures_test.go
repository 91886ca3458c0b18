package usecases

import (
	"context"
	"time"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/shared/biztime"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, biztime.Location())
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

var (
	dina = reminder.Person{UserID: 7, Name: "Dina"}
	budi = reminder.Person{UserID: 8, Name: "Budi"}
)

func launchActivity(status reminder.ActivityStatus) *reminder.Activity {
	return &reminder.Activity{
		ID:           1,
		Name:         "Product Launch",
		EndDate:      day(2026, 2, 22),
		Status:       status,
		ActivityType: "Campaign",
		PICs:         []reminder.Person{dina},
	}
}

func activityReminder(id uint, a *reminder.Activity, trigger reminder.Trigger, channel string) *reminder.ActivityReminder {
	return &reminder.ActivityReminder{
		Rule: reminder.Rule{
			ID:       id,
			ParentID: a.ID,
			Trigger:  trigger,
			Channel:  channel,
			Enabled:  true,
		},
		Activity: a,
	}
}

func bannerTask(status reminder.TaskStatus) *reminder.Task {
	return &reminder.Task{
		ID:           4,
		ActivityID:   uintPtr(1),
		ActivityName: "Product Launch",
		Name:         "Design banner",
		EndDate:      day(2026, 2, 24),
		Status:       status,
		PICs:         []reminder.Person{budi},
	}
}

func taskReminder(id uint, task *reminder.Task, trigger reminder.Trigger, channel string) *reminder.TaskReminder {
	return &reminder.TaskReminder{
		Rule: reminder.Rule{
			ID:       id,
			ParentID: task.ID,
			Trigger:  trigger,
			Channel:  channel,
			Enabled:  true,
		},
		Task: task,
	}
}

func defaultChannels() []*reminder.Channel {
	return []*reminder.Channel{
		{ID: 10, Name: "Marketing Finance Group", Type: "Marketing-Finance", DestinationID: "grp-mkt-fin"},
		{ID: 11, Name: "Marketing Group", Type: "Marketing", DestinationID: "grp-mkt"},
		{ID: 12, Name: "Design Group", Type: "Design", DestinationID: "grp-design"},
	}
}

type harness struct {
	reminders *mockReminderRepository
	templates *mockTemplateRepository
	channels  *mockChannelRepository
	notifier  *mockNotificationCreator
	log       *eventLog
	sender    *mockSender
	creds     *mockCredentials
	lease     *mockLease
	activity  *Collector[*reminder.ActivityReminder]
	task      *Collector[*reminder.TaskReminder]
	uc        *ProcessRemindersUseCase
}

func newHarness(today time.Time) *harness {
	h := &harness{
		reminders: &mockReminderRepository{},
		templates: &mockTemplateRepository{templates: map[uint]*reminder.MessageTemplate{}},
		channels:  &mockChannelRepository{channels: defaultChannels()},
		notifier:  &mockNotificationCreator{},
		log:       &eventLog{},
		creds:     &mockCredentials{},
		lease:     &mockLease{},
	}
	h.sender = &mockSender{log: h.log, failFor: map[string]error{}}

	log := logger.NewNopLogger()
	resolver := NewChannelResolver(h.channels)
	h.activity = NewActivityCollector(h.reminders, h.templates, resolver, h.notifier, log)
	h.task = NewTaskCollector(h.reminders, h.templates, resolver, h.notifier, log)

	h.uc = NewProcessRemindersUseCase(
		[]ItemCollector{h.activity, h.task},
		h.channels,
		h.sender,
		h.creds,
		h.lease,
		ProcessRemindersConfig{DispatchDelay: 90 * time.Second, LeaseTTL: time.Hour},
		log,
	)
	h.uc.wait = h.log.wait
	h.uc.now = func() time.Time { return today.Add(8 * time.Hour) }
	return h
}

func (h *harness) withActivityReminders(rs ...*reminder.ActivityReminder) *harness {
	h.reminders.ListActivityFunc = func(ctx context.Context) ([]*reminder.ActivityReminder, error) {
		return rs, nil
	}
	return h
}

func (h *harness) withTaskReminders(rs ...*reminder.TaskReminder) *harness {
	h.reminders.ListTaskFunc = func(ctx context.Context) ([]*reminder.TaskReminder, error) {
		return rs, nil
	}
	return h
}
