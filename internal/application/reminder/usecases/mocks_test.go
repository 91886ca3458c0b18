package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	notificationUsecases "github.com/teamboard/teamboard/internal/application/notification/usecases"
	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/domain/setting"
)

type mockReminderRepository struct {
	ListActivityFunc func(ctx context.Context) ([]*reminder.ActivityReminder, error)
	ListTaskFunc     func(ctx context.Context) ([]*reminder.TaskReminder, error)
}

func (m *mockReminderRepository) ListEnabledActivityReminders(ctx context.Context) ([]*reminder.ActivityReminder, error) {
	if m.ListActivityFunc != nil {
		return m.ListActivityFunc(ctx)
	}
	return nil, nil
}

func (m *mockReminderRepository) ListEnabledTaskReminders(ctx context.Context) ([]*reminder.TaskReminder, error) {
	if m.ListTaskFunc != nil {
		return m.ListTaskFunc(ctx)
	}
	return nil, nil
}

type mockTemplateRepository struct {
	templates map[uint]*reminder.MessageTemplate
	err       error
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, id uint) (*reminder.MessageTemplate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.templates[id], nil
}

// mockChannelRepository mimics the SQL lookups: exact type match, then
// substring match in id order.
type mockChannelRepository struct {
	mu        sync.Mutex
	channels  []*reminder.Channel
	findErr   error
	updates   []uint
	updateErr error
}

func (m *mockChannelRepository) FindByExactType(ctx context.Context, channelType string) (*reminder.Channel, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, c := range m.channels {
		if c.Type == channelType {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockChannelRepository) FindByContainsType(ctx context.Context, channelType string) (*reminder.Channel, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, c := range m.channels {
		if strings.Contains(c.Type, channelType) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockChannelRepository) UpdateLastSent(ctx context.Context, channelID uint, sentAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, channelID)
	for _, c := range m.channels {
		if c.ID == channelID {
			t := sentAt
			c.LastMessageSentAt = &t
		}
	}
	return nil
}

type mockNotificationCreator struct {
	mu       sync.Mutex
	commands []notificationUsecases.CreateNotificationCommand
	err      error
}

func (m *mockNotificationCreator) Execute(ctx context.Context, cmd notificationUsecases.CreateNotificationCommand) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	m.commands = append(m.commands, cmd)
	return true, nil
}

func (m *mockNotificationCreator) userIDs() []uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uint, 0, len(m.commands))
	for _, c := range m.commands {
		ids = append(ids, c.UserID)
	}
	return ids
}

// eventLog records sends and waits in the order they happen.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type mockSender struct {
	log      *eventLog
	failFor  map[string]error
	messages []string
}

func (m *mockSender) SendToGroup(ctx context.Context, destinationID, message string) error {
	m.messages = append(m.messages, message)
	if err, ok := m.failFor[destinationID]; ok {
		m.log.add("send-fail:%s", destinationID)
		return err
	}
	m.log.add("send:%s", destinationID)
	return nil
}

func (l *eventLog) wait(ctx context.Context, d time.Duration) error {
	l.add("wait:%s", d)
	return ctx.Err()
}

type mockCredentials struct {
	err error
}

func (m *mockCredentials) GetMessengerCredential(ctx context.Context) (setting.MessengerCredential, error) {
	if m.err != nil {
		return setting.MessengerCredential{}, m.err
	}
	return setting.MessengerCredential{APIKey: "k", NumberKey: "n", Source: "environment"}, nil
}

type mockLease struct {
	mu         sync.Mutex
	holder     string
	seq        int
	acquires   int
	releases   int
	acquireErr error
}

func (m *mockLease) Acquire(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.acquireErr != nil {
		return "", false, m.acquireErr
	}
	if m.holder != "" {
		return "", false, nil
	}
	m.seq++
	m.acquires++
	m.holder = fmt.Sprintf("token-%d", m.seq)
	return m.holder, true, nil
}

func (m *mockLease) Release(ctx context.Context, name, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.holder == token {
		m.holder = ""
		m.releases++
	}
	return nil
}

func (m *mockLease) held() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holder != ""
}
