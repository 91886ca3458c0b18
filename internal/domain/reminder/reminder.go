// Package reminder holds the reminder rules attached to activities and tasks,
// the trigger and template logic evaluated against them, and the contracts
// the dispatch engine needs from persistence.
package reminder

import (
	"fmt"
	"strings"
)

// Rule is the configuration shared by activity and task reminders.
// CustomMessage takes precedence over TemplateID when both are set.
type Rule struct {
	ID            uint
	ParentID      uint
	Trigger       Trigger
	CustomDays    *int
	Channel       string
	TemplateID    *uint
	CustomMessage *string
	Enabled       bool
}

// Validate checks the rule invariants enforced when rules are created.
func (r Rule) Validate() error {
	if !r.Trigger.IsValid() {
		return fmt.Errorf("invalid reminder trigger: %s", r.Trigger)
	}
	if r.Trigger.IsCustom() {
		if r.CustomDays == nil {
			return fmt.Errorf("custom days is required for custom trigger")
		}
		if *r.CustomDays <= 0 {
			return fmt.Errorf("custom days must be positive")
		}
	}
	if strings.TrimSpace(r.Channel) == "" {
		return fmt.Errorf("channel is required")
	}
	return nil
}

// HasCustomMessage reports whether a non-blank literal message is configured.
func (r Rule) HasCustomMessage() bool {
	return r.CustomMessage != nil && strings.TrimSpace(*r.CustomMessage) != ""
}

// Reminder is a rule together with the parent it is attached to.
type Reminder interface {
	ReminderRule() Rule
	ReminderParent() Parent
}

// ActivityReminder is a reminder attached to an activity.
type ActivityReminder struct {
	Rule
	Activity *Activity
}

func (r *ActivityReminder) ReminderRule() Rule { return r.Rule }

func (r *ActivityReminder) ReminderParent() Parent {
	if r.Activity == nil {
		return nil
	}
	return r.Activity
}

// TaskReminder is a reminder attached to a task.
type TaskReminder struct {
	Rule
	Task *Task
}

func (r *TaskReminder) ReminderRule() Rule { return r.Rule }

func (r *TaskReminder) ReminderParent() Parent {
	if r.Task == nil {
		return nil
	}
	return r.Task
}
