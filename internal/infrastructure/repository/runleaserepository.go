package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
	apperrors "github.com/teamboard/teamboard/internal/shared/errors"
)

// RunLeaseRepository is a reminder.RunLease backed by one row per lease
// name. Takeover of an expired row is a compare-and-swap on the previous
// holder, so two processes racing for it cannot both win.
type RunLeaseRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRunLeaseRepository(db *gorm.DB) *RunLeaseRepository {
	return &RunLeaseRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

var _ reminder.RunLease = (*RunLeaseRepository)(nil)

func (r *RunLeaseRepository) Acquire(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	now := r.now()
	db := r.db.WithContext(ctx)

	var current models.ReminderRunLeaseModel
	err := db.Where("name = ?", name).First(&current).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		lease := models.ReminderRunLeaseModel{
			Name:       name,
			Holder:     token,
			AcquiredAt: now,
			ExpiresAt:  now.Add(ttl),
		}
		if err := db.Create(&lease).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return "", false, nil
			}
			return "", false, fmt.Errorf("failed to create run lease: %w", err)
		}
		return token, true, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to read run lease: %w", err)
	}

	if current.ExpiresAt.After(now) {
		return "", false, nil
	}

	result := db.Model(&models.ReminderRunLeaseModel{}).
		Where("name = ? AND holder = ?", name, current.Holder).
		Updates(map[string]any{
			"holder":      token,
			"acquired_at": now,
			"expires_at":  now.Add(ttl),
		})
	if result.Error != nil {
		return "", false, fmt.Errorf("failed to take over expired run lease: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return token, true, nil
}

// Release deletes the lease only while token still holds it.
func (r *RunLeaseRepository) Release(ctx context.Context, name, token string) error {
	err := r.db.WithContext(ctx).
		Where("name = ? AND holder = ?", name, token).
		Delete(&models.ReminderRunLeaseModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to release run lease: %w", err)
	}
	return nil
}
