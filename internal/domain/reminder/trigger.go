package reminder

import (
	"fmt"
	"time"

	"github.com/teamboard/teamboard/internal/shared/biztime"
)

// Trigger is a symbolic offset before a deadline at which a reminder fires.
type Trigger string

const (
	TriggerSevenDaysBefore Trigger = "H-7"
	TriggerThreeDaysBefore Trigger = "H-3"
	TriggerOneDayBefore    Trigger = "H-1"
	TriggerDeadlineDay     Trigger = "Day-H"
	TriggerCustom          Trigger = "Custom"
)

var fixedOffsets = map[Trigger]int{
	TriggerSevenDaysBefore: 7,
	TriggerThreeDaysBefore: 3,
	TriggerOneDayBefore:    1,
	TriggerDeadlineDay:     0,
}

func (t Trigger) String() string {
	return string(t)
}

func (t Trigger) IsValid() bool {
	if t == TriggerCustom {
		return true
	}
	_, ok := fixedOffsets[t]
	return ok
}

func (t Trigger) IsCustom() bool {
	return t == TriggerCustom
}

func NewTrigger(s string) (Trigger, error) {
	t := Trigger(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid reminder trigger: %s", s)
	}
	return t, nil
}

// ShouldTrigger reports whether a reminder with the given trigger fires on
// today for a parent whose deadline is targetDate. Only calendar dates in the
// business timezone are compared. Custom triggers need a non-nil customDays.
func ShouldTrigger(trigger Trigger, customDays *int, targetDate, today time.Time) bool {
	diffDays := biztime.DaysBetween(today, targetDate)

	if trigger == TriggerCustom {
		return customDays != nil && diffDays == *customDays
	}

	offset, ok := fixedOffsets[trigger]
	if !ok {
		return false
	}
	return diffDays == offset
}
