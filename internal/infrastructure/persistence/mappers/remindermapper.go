package mappers

import (
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

// ReminderMapper converts reminder rows and their preloaded parents into
// domain reminders. Unknown trigger strings are carried through as-is so
// that they simply never fire.
type ReminderMapper interface {
	ActivityReminderToEntity(model *models.ActivityReminderModel) *reminder.ActivityReminder
	TaskReminderToEntity(model *models.TaskReminderModel) *reminder.TaskReminder
	ActivityReminderToEntities(models []*models.ActivityReminderModel) []*reminder.ActivityReminder
	TaskReminderToEntities(models []*models.TaskReminderModel) []*reminder.TaskReminder
	ActivityToEntity(model *models.ActivityModel) *reminder.Activity
	TaskToEntity(model *models.TaskModel) *reminder.Task
}

type ReminderMapperImpl struct{}

func NewReminderMapper() ReminderMapper {
	return &ReminderMapperImpl{}
}

func (m *ReminderMapperImpl) ActivityReminderToEntity(model *models.ActivityReminderModel) *reminder.ActivityReminder {
	if model == nil {
		return nil
	}
	return &reminder.ActivityReminder{
		Rule: reminder.Rule{
			ID:            model.ID,
			ParentID:      model.ActivityID,
			Trigger:       reminder.Trigger(model.Trigger),
			CustomDays:    model.CustomDays,
			Channel:       model.Channel,
			TemplateID:    model.TemplateID,
			CustomMessage: model.CustomMessage,
			Enabled:       model.Enabled,
		},
		Activity: m.ActivityToEntity(model.Activity),
	}
}

func (m *ReminderMapperImpl) TaskReminderToEntity(model *models.TaskReminderModel) *reminder.TaskReminder {
	if model == nil {
		return nil
	}
	return &reminder.TaskReminder{
		Rule: reminder.Rule{
			ID:            model.ID,
			ParentID:      model.TaskID,
			Trigger:       reminder.Trigger(model.Trigger),
			CustomDays:    model.CustomDays,
			Channel:       model.Channel,
			TemplateID:    model.TemplateID,
			CustomMessage: model.CustomMessage,
			Enabled:       model.Enabled,
		},
		Task: m.TaskToEntity(model.Task),
	}
}

func (m *ReminderMapperImpl) ActivityReminderToEntities(ms []*models.ActivityReminderModel) []*reminder.ActivityReminder {
	entities := make([]*reminder.ActivityReminder, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ActivityReminderToEntity(model))
	}
	return entities
}

func (m *ReminderMapperImpl) TaskReminderToEntities(ms []*models.TaskReminderModel) []*reminder.TaskReminder {
	entities := make([]*reminder.TaskReminder, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.TaskReminderToEntity(model))
	}
	return entities
}

func (m *ReminderMapperImpl) ActivityToEntity(model *models.ActivityModel) *reminder.Activity {
	if model == nil {
		return nil
	}
	activity := &reminder.Activity{
		ID:        model.ID,
		Name:      model.Name,
		EndDate:   model.EndDate,
		Status:    reminder.ActivityStatus(model.Status),
		PICs:      toPeople(model.PICs),
		Approvers: toPeople(model.Approvers),
	}
	if model.ActivityType != nil {
		activity.ActivityType = model.ActivityType.Name
	}
	return activity
}

func (m *ReminderMapperImpl) TaskToEntity(model *models.TaskModel) *reminder.Task {
	if model == nil {
		return nil
	}
	task := &reminder.Task{
		ID:         model.ID,
		ActivityID: model.ActivityID,
		Name:       model.Name,
		EndDate:    model.EndDate,
		Status:     reminder.TaskStatus(model.Status),
		PICs:       toPeople(model.PICs),
		Approvers:  toPeople(model.Approvers),
	}
	if model.Activity != nil {
		task.ActivityName = model.Activity.Name
		if model.Activity.ActivityType != nil {
			task.ActivityType = model.Activity.ActivityType.Name
		}
	}
	return task
}

func toPeople(users []models.UserModel) []reminder.Person {
	if len(users) == 0 {
		return nil
	}
	people := make([]reminder.Person, 0, len(users))
	for _, u := range users {
		people = append(people, reminder.Person{UserID: u.ID, Name: u.Name})
	}
	return people
}
