package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reminderUsecases "github.com/teamboard/teamboard/internal/application/reminder/usecases"
	settingUsecases "github.com/teamboard/teamboard/internal/application/setting/usecases"
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/cache"
	"github.com/teamboard/teamboard/internal/infrastructure/config"
	"github.com/teamboard/teamboard/internal/infrastructure/crypto"
	"github.com/teamboard/teamboard/internal/infrastructure/messenger"
	"github.com/teamboard/teamboard/internal/infrastructure/repository"
	"github.com/teamboard/teamboard/internal/infrastructure/scheduler"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

const (
	LeaseBackendDatabase = "database"
	LeaseBackendRedis    = "redis"
)

// runDrainTimeout bounds how long Shutdown waits for cancelled runs.
const runDrainTimeout = 10 * time.Second

// Container wires infrastructure, use cases and handlers together and owns
// the background scheduler and the redis connection.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	codec crypto.Codec
	lease reminder.RunLease

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer builds every component. It fails on configuration errors
// such as a bad encryption key or an unreachable redis lease backend.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.repos = newRepositories(db, c.codec, log)
	c.ucs = newUseCases(c.repos, c.codec, c.lease, cfg, log)

	hdlrs, err := newHandlers(db, c.ucs, cfg, log)
	if err != nil {
		return nil, err
	}
	c.hdlrs = hdlrs

	return c, nil
}

func (c *Container) initInfrastructure() error {
	codec, err := crypto.NewCodec(c.cfg.Crypto.EncryptionKey)
	if err != nil {
		return fmt.Errorf("invalid encryption key: %w", err)
	}
	if _, ok := codec.(crypto.Plaintext); ok {
		c.log.Warnw("no encryption key configured, channel destinations and api keys are stored in plaintext")
	}
	c.codec = codec

	switch backend := strings.ToLower(c.cfg.Reminder.LeaseBackend); backend {
	case "", LeaseBackendDatabase:
		c.lease = repository.NewRunLeaseRepository(c.db)
	case LeaseBackendRedis:
		client, err := initRedis(c.cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.lease = cache.NewRedisRunLease(client)
	default:
		return fmt.Errorf("unsupported reminder lease backend: %s", backend)
	}

	return nil
}

// initRedis creates the client and checks the connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return client, nil
}

// ReminderUseCase exposes the orchestrator for the CLI.
func (c *Container) ReminderUseCase() *reminderUsecases.ProcessRemindersUseCase {
	return c.ucs.processRemindersUC
}

// StartScheduler registers the daily reminder job and starts the scheduler.
func (c *Container) StartScheduler() error {
	if !c.cfg.Reminder.Enabled {
		c.log.Infow("reminder scheduler disabled")
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterReminderJobs(c.ucs.processRemindersUC, c.cfg.Reminder.Cron, c.cfg.Reminder.LeaseTTL); err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}
	manager.Start()
	c.schedulerManager = manager

	return nil
}

// Shutdown stops in-flight reminder runs, then the scheduler, then closes
// the redis connection. Runs release their lease on the way out.
func (c *Container) Shutdown() {
	if c.hdlrs != nil && c.hdlrs.reminderHandler != nil {
		ctx, cancel := context.WithTimeout(context.Background(), runDrainTimeout)
		if err := c.hdlrs.reminderHandler.Shutdown(ctx); err != nil {
			c.log.Warnw("reminder runs did not stop in time", "error", err)
		}
		cancel()
	}
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

// MessengerCredentials exposes the credential store for the CLI.
func (c *Container) MessengerCredentials() *settingUsecases.MessengerCredentialProvider {
	return c.ucs.credentialProvider
}

// MessengerClient exposes the provider client for the CLI.
func (c *Container) MessengerClient() *messenger.Client {
	return c.ucs.messengerClient
}
