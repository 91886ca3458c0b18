package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

func TestReminderRepository_ListEnabledActivityReminders(t *testing.T) {
	db := setupTestDB(t)
	f := seedBoard(t, db)
	repo := NewReminderRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	days := 5
	msg := "Hi {{pic_name}}"
	rows := []models.ActivityReminderModel{
		{ActivityID: f.launch.ID, Trigger: "H-1", Channel: "Marketing", Enabled: true},
		{ActivityID: f.launch.ID, Trigger: "H-3", Channel: "Marketing", Enabled: false},
		{ActivityID: f.launch.ID, Trigger: "Custom", CustomDays: &days, Channel: "Design", CustomMessage: &msg, Enabled: true},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	got, err := repo.ListEnabledActivityReminders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, rows[0].ID, first.ID)
	assert.Equal(t, reminder.TriggerOneDayBefore, first.Trigger)
	assert.Equal(t, f.launch.ID, first.ParentID)
	assert.True(t, first.Enabled)

	require.NotNil(t, first.Activity)
	assert.Equal(t, "Product Launch", first.Activity.Name)
	assert.Equal(t, "Campaign", first.Activity.ActivityType)
	assert.Equal(t, reminder.ActivityStatusInProgress, first.Activity.Status)
	assert.Equal(t, "2026-02-22", first.Activity.EndDate.Format("2006-01-02"))
	assert.Equal(t, []reminder.Person{{UserID: f.dina.ID, Name: "Dina"}, {UserID: f.budi.ID, Name: "Budi"}}, first.Activity.PICs)
	assert.Equal(t, []reminder.Person{{UserID: f.rani.ID, Name: "Rani"}}, first.Activity.Approvers)

	custom := got[1]
	assert.Equal(t, reminder.TriggerCustom, custom.Trigger)
	require.NotNil(t, custom.CustomDays)
	assert.Equal(t, 5, *custom.CustomDays)
	assert.True(t, custom.HasCustomMessage())
}

func TestReminderRepository_ListEnabledTaskReminders(t *testing.T) {
	db := setupTestDB(t)
	f := seedBoard(t, db)
	repo := NewReminderRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	templateID := uint(3)
	require.NoError(t, db.Create(&models.TaskReminderModel{TaskID: f.banner.ID, Trigger: "Day-H", Channel: "Design", TemplateID: &templateID, Enabled: true}).Error)
	require.NoError(t, db.Create(&models.TaskReminderModel{TaskID: f.orphan.ID, Trigger: "H-7", Channel: "Ops", Enabled: true}).Error)

	got, err := repo.ListEnabledTaskReminders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	banner := got[0].Task
	require.NotNil(t, banner)
	assert.Equal(t, "Design banner", banner.Name)
	assert.Equal(t, "Product Launch", banner.ActivityName)
	assert.Equal(t, "Campaign", banner.ActivityType)
	require.NotNil(t, banner.ActivityID)
	assert.Equal(t, f.launch.ID, *banner.ActivityID)
	assert.Equal(t, []reminder.Person{{UserID: f.budi.ID, Name: "Budi"}}, banner.PICs)
	assert.Equal(t, &templateID, got[0].TemplateID)

	orphan := got[1].Task
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.ActivityID)
	assert.Empty(t, orphan.ActivityName)
	assert.Empty(t, orphan.PICs)
	assert.Equal(t, "-", orphan.Variables()[reminder.VarActivityName])
}

func TestReminderRepository_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db, logger.NewNopLogger())

	activities, err := repo.ListEnabledActivityReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, activities)

	tasks, err := repo.ListEnabledTaskReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
