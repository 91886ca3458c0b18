package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationUsecases "github.com/teamboard/teamboard/internal/application/notification/usecases"
	vo "github.com/teamboard/teamboard/internal/domain/notification/valueobjects"
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/shared/biztime"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

const deadlineNotificationTitle = "Deadline Reminder"

// Collector evaluates one kind of reminder. The activity and task variants
// differ only in the list function and the parent they carry.
type Collector[R reminder.Reminder] struct {
	kind      reminder.ParentKind
	list      func(ctx context.Context) ([]R, error)
	templates reminder.TemplateRepository
	resolver  *ChannelResolver
	notifier  NotificationCreator
	logger    logger.Interface
}

func NewActivityCollector(
	repo reminder.ReminderRepository,
	templates reminder.TemplateRepository,
	resolver *ChannelResolver,
	notifier NotificationCreator,
	logger logger.Interface,
) *Collector[*reminder.ActivityReminder] {
	return &Collector[*reminder.ActivityReminder]{
		kind:      reminder.ParentKindActivity,
		list:      repo.ListEnabledActivityReminders,
		templates: templates,
		resolver:  resolver,
		notifier:  notifier,
		logger:    logger.Named("activity-collector"),
	}
}

func NewTaskCollector(
	repo reminder.ReminderRepository,
	templates reminder.TemplateRepository,
	resolver *ChannelResolver,
	notifier NotificationCreator,
	logger logger.Interface,
) *Collector[*reminder.TaskReminder] {
	return &Collector[*reminder.TaskReminder]{
		kind:      reminder.ParentKindTask,
		list:      repo.ListEnabledTaskReminders,
		templates: templates,
		resolver:  resolver,
		notifier:  notifier,
		logger:    logger.Named("task-collector"),
	}
}

// Collect returns the dispatch items due on today and creates the in-app
// notifications for every matching reminder. Only a failure to list the
// reminders is returned; per-reminder problems are logged and skipped.
func (c *Collector[R]) Collect(ctx context.Context, today time.Time) ([]reminder.DispatchItem, error) {
	reminders, err := c.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s reminders: %w", c.kind, err)
	}

	items := make([]reminder.DispatchItem, 0)
	for _, r := range reminders {
		if err := ctx.Err(); err != nil {
			return items, err
		}
		if item, ok := c.evaluate(ctx, r, today); ok {
			items = append(items, item)
		}
	}

	c.logger.Debugw("reminders collected",
		"date", biztime.FormatDate(today),
		"evaluated", len(reminders),
		"items", len(items),
	)

	return items, nil
}

func (c *Collector[R]) evaluate(ctx context.Context, r R, today time.Time) (reminder.DispatchItem, bool) {
	rule := r.ReminderRule()
	if !rule.Enabled {
		return reminder.DispatchItem{}, false
	}

	parent := r.ReminderParent()
	if parent == nil {
		c.logger.Warnw("reminder has no parent loaded, skipping", "reminder_id", rule.ID, "kind", c.kind)
		return reminder.DispatchItem{}, false
	}
	if parent.IsClosed() {
		return reminder.DispatchItem{}, false
	}
	if !reminder.ShouldTrigger(rule.Trigger, rule.CustomDays, parent.Deadline(), today) {
		return reminder.DispatchItem{}, false
	}

	message := c.buildMessage(ctx, rule, parent)

	var (
		item  reminder.DispatchItem
		found bool
	)
	channel, err := c.resolver.Resolve(ctx, rule.Channel)
	switch {
	case errors.Is(err, reminder.ErrChannelNotFound):
		c.logger.Warnw("reminder channel not found, message will not be sent",
			"reminder_id", rule.ID,
			"kind", c.kind,
			"channel", rule.Channel,
		)
	case err != nil:
		c.logger.Warnw("failed to resolve reminder channel",
			"reminder_id", rule.ID,
			"kind", c.kind,
			"channel", rule.Channel,
			"error", err,
		)
	default:
		item = reminder.DispatchItem{
			ChannelID:     channel.ID,
			DestinationID: channel.DestinationID,
			Message:       message,
			Label:         fmt.Sprintf("%s: %s -> %s", c.kind.Label(), parent.DisplayName(), rule.Channel),
		}
		found = true
	}

	c.notifyPICs(ctx, rule, parent)

	return item, found
}

// buildMessage picks the custom message, then the linked template, then the
// built-in fallback sentence.
func (c *Collector[R]) buildMessage(ctx context.Context, rule reminder.Rule, parent reminder.Parent) string {
	vars := parent.Variables()

	if rule.HasCustomMessage() {
		return reminder.Render(*rule.CustomMessage, vars)
	}

	if rule.TemplateID != nil {
		tpl, err := c.templates.GetByID(ctx, *rule.TemplateID)
		switch {
		case err != nil:
			c.logger.Warnw("failed to load message template, using fallback text",
				"reminder_id", rule.ID,
				"template_id", *rule.TemplateID,
				"error", err,
			)
		case tpl == nil || tpl.Body == "":
			c.logger.Warnw("message template not found, using fallback text",
				"reminder_id", rule.ID,
				"template_id", *rule.TemplateID,
			)
		default:
			return reminder.Render(tpl.Body, vars)
		}
	}

	return fallbackMessage(parent)
}

func fallbackMessage(parent reminder.Parent) string {
	return fmt.Sprintf("Reminder: %s is due on %s. Status: %s. PIC: %s.",
		parent.DisplayName(),
		biztime.FormatDate(parent.Deadline()),
		parent.StatusName(),
		reminder.JoinNames(parent.AssignedPICs()),
	)
}

func (c *Collector[R]) notifyPICs(ctx context.Context, rule reminder.Rule, parent reminder.Parent) {
	refs := parent.Refs()
	message := fmt.Sprintf("%s \"%s\" is due on %s (%s)",
		parent.Kind().Label(),
		parent.DisplayName(),
		biztime.FormatDate(parent.Deadline()),
		rule.Trigger,
	)

	for _, pic := range parent.AssignedPICs() {
		// Notification failures never affect collection.
		if _, err := c.notifier.Execute(ctx, notificationUsecases.CreateNotificationCommand{
			UserID:     pic.UserID,
			Type:       vo.NotificationTypeDeadlineAlert,
			Title:      deadlineNotificationTitle,
			Message:    message,
			TaskID:     refs.TaskID,
			ActivityID: refs.ActivityID,
		}); err != nil {
			c.logger.Warnw("failed to create deadline notification",
				"reminder_id", rule.ID,
				"user_id", pic.UserID,
				"error", err,
			)
		}
	}
}
