package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/teamboard/internal/domain/setting"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

func TestMessengerConfigRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessengerConfigRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	missing, err := repo.GetByKey(ctx, setting.DefaultMessengerConfigKey)
	require.NoError(t, err)
	assert.Nil(t, missing)

	cfg := &setting.MessengerConfig{
		Key:             setting.DefaultMessengerConfigKey,
		EncryptedAPIKey: "enc:first",
		NumberKey:       "NUM-1",
	}
	require.NoError(t, repo.Upsert(ctx, cfg))
	assert.NotZero(t, cfg.ID)

	require.NoError(t, repo.Upsert(ctx, &setting.MessengerConfig{
		Key:             setting.DefaultMessengerConfigKey,
		EncryptedAPIKey: "enc:second",
		NumberKey:       "NUM-2",
	}))

	got, err := repo.GetByKey(ctx, setting.DefaultMessengerConfigKey)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cfg.ID, got.ID)
	assert.Equal(t, "enc:second", got.EncryptedAPIKey)
	assert.Equal(t, "NUM-2", got.NumberKey)

	var count int64
	require.NoError(t, db.Table("messenger_configs").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
