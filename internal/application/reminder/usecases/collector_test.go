package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/teamboard/teamboard/internal/domain/notification/valueobjects"
	"github.com/teamboard/teamboard/internal/domain/reminder"
)

func TestActivityCollector_DueReminder(t *testing.T) {
	today := day(2026, 2, 21)
	r := activityReminder(1, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Marketing")
	r.CustomMessage = strPtr("Hi {{pic_name}}, {{activity_name}} ends {{deadline}}")
	h := newHarness(today).withActivityReminders(r)

	got, err := h.activity.Collect(context.Background(), today)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(11), got[0].ChannelID)
	assert.Equal(t, "grp-mkt", got[0].DestinationID)
	assert.Equal(t, "Hi Dina, Product Launch ends 2026-02-22", got[0].Message)
	assert.Equal(t, "Activity: Product Launch -> Marketing", got[0].Label)

	require.Len(t, h.notifier.commands, 1)
	cmd := h.notifier.commands[0]
	assert.Equal(t, uint(7), cmd.UserID)
	assert.Equal(t, vo.NotificationTypeDeadlineAlert, cmd.Type)
	assert.Equal(t, "Deadline Reminder", cmd.Title)
	assert.Equal(t, `Activity "Product Launch" is due on 2026-02-22 (H-1)`, cmd.Message)
	require.NotNil(t, cmd.ActivityID)
	assert.Equal(t, uint(1), *cmd.ActivityID)
	assert.Nil(t, cmd.TaskID)
}

func TestCollector_MessageSourcePrecedence(t *testing.T) {
	today := day(2026, 2, 21)

	tests := []struct {
		name          string
		customMessage *string
		templateID    *uint
		templateErr   error
		want          string
	}{
		{
			name:          "custom message wins over template",
			customMessage: strPtr("Custom for {{activity_name}}"),
			templateID:    uintPtr(1),
			want:          "Custom for Product Launch",
		},
		{
			name:       "template used when no custom message",
			templateID: uintPtr(1),
			want:       "Template: Product Launch (Campaign) by Dina",
		},
		{
			name:          "blank custom message falls through to template",
			customMessage: strPtr("  "),
			templateID:    uintPtr(1),
			want:          "Template: Product Launch (Campaign) by Dina",
		},
		{
			name:       "missing template uses fallback",
			templateID: uintPtr(99),
			want:       "Reminder: Product Launch is due on 2026-02-22. Status: In Progress. PIC: Dina.",
		},
		{
			name:        "template lookup error uses fallback",
			templateID:  uintPtr(1),
			templateErr: errors.New("db down"),
			want:        "Reminder: Product Launch is due on 2026-02-22. Status: In Progress. PIC: Dina.",
		},
		{
			name: "no source uses fallback",
			want: "Reminder: Product Launch is due on 2026-02-22. Status: In Progress. PIC: Dina.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := activityReminder(1, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Marketing")
			r.CustomMessage = tt.customMessage
			r.TemplateID = tt.templateID
			h := newHarness(today).withActivityReminders(r)
			h.templates.templates[1] = &reminder.MessageTemplate{ID: 1, Body: "Template: {{activity_name}} ({{activity_type}}) by {{pic_name}}"}
			h.templates.err = tt.templateErr

			got, err := h.activity.Collect(context.Background(), today)

			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Message)
		})
	}
}

func TestCollector_SkipsDisabledClosedAndNotDue(t *testing.T) {
	today := day(2026, 2, 21)

	disabled := activityReminder(1, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Marketing")
	disabled.Enabled = false
	completed := activityReminder(2, launchActivity(reminder.ActivityStatusCompleted), reminder.TriggerOneDayBefore, "Marketing")
	cancelled := activityReminder(3, launchActivity(reminder.ActivityStatusCancelled), reminder.TriggerOneDayBefore, "Marketing")
	archived := activityReminder(4, launchActivity(reminder.ActivityStatusArchived), reminder.TriggerOneDayBefore, "Marketing")
	notDue := activityReminder(5, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerThreeDaysBefore, "Marketing")
	orphan := &reminder.ActivityReminder{Rule: reminder.Rule{ID: 6, Trigger: reminder.TriggerOneDayBefore, Channel: "Marketing", Enabled: true}}

	archivedTask := taskReminder(7, bannerTask(reminder.TaskStatusArchived), reminder.TriggerThreeDaysBefore, "Design")
	approvedTask := taskReminder(8, bannerTask(reminder.TaskStatusApproved), reminder.TriggerThreeDaysBefore, "Design")

	h := newHarness(today).
		withActivityReminders(disabled, completed, cancelled, archived, notDue, orphan).
		withTaskReminders(archivedTask, approvedTask)

	activityItems, err := h.activity.Collect(context.Background(), today)
	require.NoError(t, err)
	taskItems, err := h.task.Collect(context.Background(), today)
	require.NoError(t, err)

	assert.Empty(t, activityItems)
	assert.Empty(t, taskItems)
	assert.Empty(t, h.notifier.commands)
}

func TestTaskCollector_DueReminder(t *testing.T) {
	today := day(2026, 2, 21)
	r := taskReminder(3, bannerTask(reminder.TaskStatusInProgress), reminder.TriggerThreeDaysBefore, "Design")
	h := newHarness(today).withTaskReminders(r)

	got, err := h.task.Collect(context.Background(), today)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grp-design", got[0].DestinationID)
	assert.Equal(t, "Task: Design banner -> Design", got[0].Label)
	assert.Equal(t, "Reminder: Design banner is due on 2026-02-24. Status: In Progress. PIC: Budi.", got[0].Message)

	require.Len(t, h.notifier.commands, 1)
	cmd := h.notifier.commands[0]
	assert.Equal(t, uint(8), cmd.UserID)
	require.NotNil(t, cmd.TaskID)
	require.NotNil(t, cmd.ActivityID)
	assert.Equal(t, uint(4), *cmd.TaskID)
	assert.Equal(t, uint(1), *cmd.ActivityID)
}

func TestCollector_CustomTrigger(t *testing.T) {
	today := day(2026, 2, 12)
	r := activityReminder(1, launchActivity(reminder.ActivityStatusPlanned), reminder.TriggerCustom, "Marketing")
	r.CustomDays = func(v int) *int { return &v }(10)
	h := newHarness(today).withActivityReminders(r)

	got, err := h.activity.Collect(context.Background(), today)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCollector_ChannelNotFoundStillNotifies(t *testing.T) {
	today := day(2026, 2, 21)
	a := launchActivity(reminder.ActivityStatusInProgress)
	a.PICs = []reminder.Person{dina, budi}
	h := newHarness(today).withActivityReminders(activityReminder(1, a, reminder.TriggerOneDayBefore, "Sales"))

	got, err := h.activity.Collect(context.Background(), today)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []uint{7, 8}, h.notifier.userIDs())
}

func TestCollector_ChannelLookupErrorIsIsolated(t *testing.T) {
	today := day(2026, 2, 21)
	h := newHarness(today).withActivityReminders(activityReminder(1, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Marketing"))
	h.channels.findErr = errors.New("db down")

	got, err := h.activity.Collect(context.Background(), today)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, h.notifier.commands, 1)
}

func TestCollector_NotificationFailureDoesNotBlock(t *testing.T) {
	today := day(2026, 2, 21)
	h := newHarness(today).withActivityReminders(activityReminder(1, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Marketing"))
	h.notifier.err = errors.New("insert failed")

	got, err := h.activity.Collect(context.Background(), today)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCollector_NoPICsNoNotifications(t *testing.T) {
	today := day(2026, 2, 21)
	a := launchActivity(reminder.ActivityStatusInProgress)
	a.PICs = nil
	h := newHarness(today).withActivityReminders(activityReminder(1, a, reminder.TriggerOneDayBefore, "Marketing"))

	got, err := h.activity.Collect(context.Background(), today)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "PIC: -.")
	assert.Empty(t, h.notifier.commands)
}

func TestCollector_IdempotentForSameDay(t *testing.T) {
	today := day(2026, 2, 21)
	h := newHarness(today).
		withActivityReminders(
			activityReminder(1, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Marketing"),
			activityReminder(2, launchActivity(reminder.ActivityStatusInProgress), reminder.TriggerOneDayBefore, "Finance"),
		)

	first, err := h.activity.Collect(context.Background(), today)
	require.NoError(t, err)
	second, err := h.activity.Collect(context.Background(), today)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestCollector_ListError(t *testing.T) {
	h := newHarness(day(2026, 2, 21))
	h.reminders.ListActivityFunc = func(ctx context.Context) ([]*reminder.ActivityReminder, error) {
		return nil, errors.New("db down")
	}

	_, err := h.activity.Collect(context.Background(), day(2026, 2, 21))

	assert.Error(t, err)
}
