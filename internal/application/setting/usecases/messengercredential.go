package usecases

import (
	"context"

	"github.com/teamboard/teamboard/internal/domain/setting"
	sharedConfig "github.com/teamboard/teamboard/internal/shared/config"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

const (
	SourceDatabase    = "database"
	SourceEnvironment = "environment"
)

// SecretCodec decrypts and encrypts secrets kept in the database.
type SecretCodec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

// MessengerCredentialProvider resolves messenger credentials on every call.
// The stored "default" record takes precedence over environment values.
type MessengerCredentialProvider struct {
	repo     setting.MessengerConfigRepository
	codec    SecretCodec
	fallback sharedConfig.MessengerConfig
	logger   logger.Interface
}

func NewMessengerCredentialProvider(
	repo setting.MessengerConfigRepository,
	codec SecretCodec,
	fallback sharedConfig.MessengerConfig,
	logger logger.Interface,
) *MessengerCredentialProvider {
	return &MessengerCredentialProvider{
		repo:     repo,
		codec:    codec,
		fallback: fallback,
		logger:   logger,
	}
}

// GetMessengerCredential returns setting.ErrMessengerCredentialsMissing when
// no complete credential is available from either source.
func (p *MessengerCredentialProvider) GetMessengerCredential(ctx context.Context) (setting.MessengerCredential, error) {
	if cred, ok := p.fromDatabase(ctx); ok {
		return cred, nil
	}

	cred := setting.MessengerCredential{
		APIKey:    p.fallback.APIKey,
		NumberKey: p.fallback.NumberKey,
		Source:    SourceEnvironment,
	}
	if cred.IsComplete() {
		return cred, nil
	}

	return setting.MessengerCredential{}, setting.ErrMessengerCredentialsMissing
}

func (p *MessengerCredentialProvider) fromDatabase(ctx context.Context) (setting.MessengerCredential, bool) {
	record, err := p.repo.GetByKey(ctx, setting.DefaultMessengerConfigKey)
	if err != nil {
		p.logger.Warnw("failed to get messenger config from database, using env config",
			"error", err,
		)
		return setting.MessengerCredential{}, false
	}
	if record == nil || record.EncryptedAPIKey == "" {
		return setting.MessengerCredential{}, false
	}

	apiKey, err := p.codec.Decrypt(record.EncryptedAPIKey)
	if err != nil {
		p.logger.Warnw("failed to decrypt stored messenger api key, using env config",
			"config_id", record.ID,
			"error", err,
		)
		return setting.MessengerCredential{}, false
	}

	cred := setting.MessengerCredential{
		APIKey:    apiKey,
		NumberKey: record.NumberKey,
		Source:    SourceDatabase,
	}
	return cred, cred.IsComplete()
}

// SaveMessengerCredential encrypts the api key and stores it as the default record.
func (p *MessengerCredentialProvider) SaveMessengerCredential(ctx context.Context, apiKey, numberKey string) error {
	if apiKey == "" || numberKey == "" {
		return setting.ErrMessengerCredentialsMissing
	}

	encrypted, err := p.codec.Encrypt(apiKey)
	if err != nil {
		return err
	}

	if err := p.repo.Upsert(ctx, &setting.MessengerConfig{
		Key:             setting.DefaultMessengerConfigKey,
		EncryptedAPIKey: encrypted,
		NumberKey:       numberKey,
	}); err != nil {
		return err
	}

	p.logger.Infow("messenger credentials updated", "key", setting.DefaultMessengerConfigKey)
	return nil
}
