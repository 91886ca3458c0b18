package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teamboard/teamboard/internal/shared/biztime"
)

func strPtr(s string) *string { return &s }

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{"fixed trigger", Rule{Trigger: TriggerOneDayBefore, Channel: "Marketing"}, false},
		{"custom with days", Rule{Trigger: TriggerCustom, CustomDays: intPtr(14), Channel: "Marketing"}, false},
		{"custom without days", Rule{Trigger: TriggerCustom, Channel: "Marketing"}, true},
		{"custom with zero days", Rule{Trigger: TriggerCustom, CustomDays: intPtr(0), Channel: "Marketing"}, true},
		{"invalid trigger", Rule{Trigger: "H-9", Channel: "Marketing"}, true},
		{"blank channel", Rule{Trigger: TriggerDeadlineDay, Channel: "  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRule_HasCustomMessage(t *testing.T) {
	assert.False(t, Rule{}.HasCustomMessage())
	assert.False(t, Rule{CustomMessage: strPtr("   ")}.HasCustomMessage())
	assert.True(t, Rule{CustomMessage: strPtr("Hi {{pic_name}}")}.HasCustomMessage())
}

func TestActivity_IsClosed(t *testing.T) {
	tests := []struct {
		status ActivityStatus
		want   bool
	}{
		{ActivityStatusPlanned, false},
		{ActivityStatusInProgress, false},
		{ActivityStatusCompleted, true},
		{ActivityStatusCancelled, true},
		{ActivityStatusArchived, true},
	}
	for _, tt := range tests {
		a := &Activity{Status: tt.status}
		assert.Equal(t, tt.want, a.IsClosed(), string(tt.status))
	}
}

func TestTask_IsClosed(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{TaskStatusTodo, false},
		{TaskStatusInProgress, false},
		{TaskStatusReview, false},
		{TaskStatusApproved, true},
		{TaskStatusArchived, true},
	}
	for _, tt := range tests {
		task := &Task{Status: tt.status}
		assert.Equal(t, tt.want, task.IsClosed(), string(tt.status))
	}
}

func TestActivity_Variables(t *testing.T) {
	a := &Activity{
		ID:           3,
		Name:         "Product Launch",
		EndDate:      time.Date(2026, 2, 22, 0, 0, 0, 0, biztime.Location()),
		Status:       ActivityStatusInProgress,
		ActivityType: "Campaign",
		PICs:         []Person{{UserID: 1, Name: "Dina"}, {UserID: 2, Name: "Budi"}},
	}

	vars := a.Variables()
	assert.Equal(t, "Product Launch", vars[VarActivityName])
	assert.Equal(t, "2026-02-22", vars[VarDeadline])
	assert.Equal(t, "Dina, Budi", vars[VarPICName])
	assert.Equal(t, "In Progress", vars[VarStatus])
	assert.Equal(t, "Campaign", vars[VarActivityType])
	assert.Equal(t, "-", vars[VarApproverName])

	refs := a.Refs()
	if assert.NotNil(t, refs.ActivityID) {
		assert.Equal(t, uint(3), *refs.ActivityID)
	}
	assert.Nil(t, refs.TaskID)
}

func TestTask_VariablesAndRefs(t *testing.T) {
	activityID := uint(9)
	task := &Task{
		ID:           4,
		ActivityID:   &activityID,
		ActivityName: "Product Launch",
		Name:         "Design banner",
		EndDate:      time.Date(2026, 3, 1, 0, 0, 0, 0, biztime.Location()),
		Status:       TaskStatusReview,
		Approvers:    []Person{{UserID: 5, Name: "Sari"}},
	}

	vars := task.Variables()
	assert.Equal(t, "Design banner", vars[VarTaskName])
	assert.Equal(t, "Product Launch", vars[VarActivityName])
	assert.Equal(t, "2026-03-01", vars[VarDeadline])
	assert.Equal(t, "-", vars[VarPICName])
	assert.Equal(t, "-", vars[VarActivityType])
	assert.Equal(t, "Sari", vars[VarApproverName])

	refs := task.Refs()
	if assert.NotNil(t, refs.TaskID) && assert.NotNil(t, refs.ActivityID) {
		assert.Equal(t, uint(4), *refs.TaskID)
		assert.Equal(t, uint(9), *refs.ActivityID)
	}
}

func TestReminder_NilParent(t *testing.T) {
	assert.Nil(t, (&ActivityReminder{}).ReminderParent())
	assert.Nil(t, (&TaskReminder{}).ReminderParent())
}
