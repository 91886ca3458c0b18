package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/shared/biztime"
)

func intPtr(v int) *int { return &v }

func TestShouldTrigger_OffsetGrid(t *testing.T) {
	today := time.Date(2026, 2, 10, 0, 0, 0, 0, biztime.Location())

	kinds := []struct {
		trigger    Trigger
		customDays *int
		want       int
	}{
		{TriggerSevenDaysBefore, nil, 7},
		{TriggerThreeDaysBefore, nil, 3},
		{TriggerOneDayBefore, nil, 1},
		{TriggerDeadlineDay, nil, 0},
		{TriggerCustom, intPtr(5), 5},
		{TriggerCustom, intPtr(10), 10},
	}

	for _, k := range kinds {
		for d := -10; d <= 10; d++ {
			target := today.AddDate(0, 0, d)
			got := ShouldTrigger(k.trigger, k.customDays, target, today)
			assert.Equal(t, d == k.want, got, "trigger=%s d=%d", k.trigger, d)
		}
	}
}

func TestShouldTrigger_CustomWithoutDays(t *testing.T) {
	today := time.Date(2026, 2, 10, 0, 0, 0, 0, biztime.Location())
	for d := -10; d <= 10; d++ {
		assert.False(t, ShouldTrigger(TriggerCustom, nil, today.AddDate(0, 0, d), today))
	}
}

func TestShouldTrigger_UnknownTrigger(t *testing.T) {
	today := time.Date(2026, 2, 10, 0, 0, 0, 0, biztime.Location())
	for d := -10; d <= 10; d++ {
		assert.False(t, ShouldTrigger(Trigger("H-2"), nil, today.AddDate(0, 0, d), today))
	}
}

func TestShouldTrigger_IgnoresTimeOfDay(t *testing.T) {
	loc := biztime.Location()
	today := time.Date(2026, 2, 21, 23, 59, 0, 0, loc)
	target := time.Date(2026, 2, 22, 0, 1, 0, 0, loc)

	assert.True(t, ShouldTrigger(TriggerOneDayBefore, nil, target, today))
	assert.False(t, ShouldTrigger(TriggerDeadlineDay, nil, target, today))
}

func TestShouldTrigger_UTCStoredDeadline(t *testing.T) {
	// 2026-02-21T18:00Z is already 2026-02-22 01:00 in Jakarta.
	target := time.Date(2026, 2, 21, 18, 0, 0, 0, time.UTC)
	today := time.Date(2026, 2, 21, 0, 0, 0, 0, biztime.Location())

	assert.True(t, ShouldTrigger(TriggerOneDayBefore, nil, target, today))
}

func TestNewTrigger(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"H-7", false},
		{"H-3", false},
		{"H-1", false},
		{"Day-H", false},
		{"Custom", false},
		{"H-2", true},
		{"", true},
		{"day-h", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTrigger(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
