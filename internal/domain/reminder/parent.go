package reminder

import (
	"strings"
	"time"

	"github.com/teamboard/teamboard/internal/shared/biztime"
)

// ParentKind names the entity a reminder is attached to.
type ParentKind string

const (
	ParentKindActivity ParentKind = "activity"
	ParentKindTask     ParentKind = "task"
)

// Label returns the capitalised kind used in messages and logs.
func (k ParentKind) Label() string {
	switch k {
	case ParentKindActivity:
		return "Activity"
	case ParentKindTask:
		return "Task"
	default:
		return string(k)
	}
}

// Person is a user referenced by a parent entity (PIC or approver).
type Person struct {
	UserID uint
	Name   string
}

// ParentRefs identifies the parent on in-app notifications.
type ParentRefs struct {
	ActivityID *uint
	TaskID     *uint
}

// Parent is the read-only view of an activity or task that reminder
// evaluation needs. Both parent shapes implement it so a single collector
// serves both reminder kinds.
type Parent interface {
	Kind() ParentKind
	ParentID() uint
	DisplayName() string
	Deadline() time.Time
	StatusName() string
	AssignedPICs() []Person
	IsClosed() bool
	Refs() ParentRefs
	Variables() map[string]string
}

type ActivityStatus string

const (
	ActivityStatusPlanned    ActivityStatus = "Planned"
	ActivityStatusInProgress ActivityStatus = "In Progress"
	ActivityStatusCompleted  ActivityStatus = "Completed"
	ActivityStatusCancelled  ActivityStatus = "Cancelled"
	ActivityStatusArchived   ActivityStatus = "Archived"
)

var closedActivityStatuses = map[ActivityStatus]bool{
	ActivityStatusCompleted: true,
	ActivityStatusCancelled: true,
	ActivityStatusArchived:  true,
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusReview     TaskStatus = "Review"
	TaskStatusApproved   TaskStatus = "Approved"
	TaskStatusArchived   TaskStatus = "Archived"
)

var closedTaskStatuses = map[TaskStatus]bool{
	TaskStatusApproved: true,
	TaskStatusArchived: true,
}

// Activity is the activity snapshot loaded together with its reminders.
type Activity struct {
	ID           uint
	Name         string
	EndDate      time.Time
	Status       ActivityStatus
	ActivityType string
	PICs         []Person
	Approvers    []Person
}

func (a *Activity) Kind() ParentKind       { return ParentKindActivity }
func (a *Activity) ParentID() uint         { return a.ID }
func (a *Activity) DisplayName() string    { return a.Name }
func (a *Activity) Deadline() time.Time    { return a.EndDate }
func (a *Activity) StatusName() string     { return string(a.Status) }
func (a *Activity) AssignedPICs() []Person { return a.PICs }
func (a *Activity) IsClosed() bool         { return closedActivityStatuses[a.Status] }

func (a *Activity) Refs() ParentRefs {
	id := a.ID
	return ParentRefs{ActivityID: &id}
}

func (a *Activity) Variables() map[string]string {
	return map[string]string{
		VarActivityName: a.Name,
		VarDeadline:     biztime.FormatDate(a.EndDate),
		VarPICName:      JoinNames(a.PICs),
		VarStatus:       string(a.Status),
		VarActivityType: dashIfEmpty(a.ActivityType),
		VarApproverName: JoinNames(a.Approvers),
	}
}

// Task is the task snapshot loaded together with its reminders. ActivityName
// and ActivityType come from the owning activity when there is one.
type Task struct {
	ID           uint
	ActivityID   *uint
	ActivityName string
	ActivityType string
	Name         string
	EndDate      time.Time
	Status       TaskStatus
	PICs         []Person
	Approvers    []Person
}

func (t *Task) Kind() ParentKind       { return ParentKindTask }
func (t *Task) ParentID() uint         { return t.ID }
func (t *Task) DisplayName() string    { return t.Name }
func (t *Task) Deadline() time.Time    { return t.EndDate }
func (t *Task) StatusName() string     { return string(t.Status) }
func (t *Task) AssignedPICs() []Person { return t.PICs }
func (t *Task) IsClosed() bool         { return closedTaskStatuses[t.Status] }

func (t *Task) Refs() ParentRefs {
	id := t.ID
	refs := ParentRefs{TaskID: &id}
	if t.ActivityID != nil {
		activityID := *t.ActivityID
		refs.ActivityID = &activityID
	}
	return refs
}

func (t *Task) Variables() map[string]string {
	return map[string]string{
		VarTaskName:     t.Name,
		VarActivityName: dashIfEmpty(t.ActivityName),
		VarDeadline:     biztime.FormatDate(t.EndDate),
		VarPICName:      JoinNames(t.PICs),
		VarStatus:       string(t.Status),
		VarActivityType: dashIfEmpty(t.ActivityType),
		VarApproverName: JoinNames(t.Approvers),
	}
}

// JoinNames joins the people's names with ", ", or returns "-" when empty.
func JoinNames(people []Person) string {
	if len(people) == 0 {
		return "-"
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
