package assistant

import (
	"sync"
	"time"

	"salonbot/internal/booking"
	"salonbot/internal/structs"
	"salonbot/internal/user"
	"salonbot/pkg/config"
	"salonbot/pkg/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
)

var Module = fx.Provide(NewOpenAIClient, NewRegistry)

const (
	defaultPollInterval = 1500 * time.Millisecond
	defaultRunTimeout   = 2 * time.Minute
)

func NewOpenAIClient(cfg config.IConfig) *openai.Client {
	oc := openai.DefaultConfig(cfg.GetString("openai.api_key"))
	if baseURL := cfg.GetString("openai.base_url"); baseURL != "" {
		oc.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(oc)
}

type (
	RegistryParams struct {
		fx.In
		Logger  logger.Logger
		Config  config.IConfig
		Client  *openai.Client
		Users   user.Service
		Booking booking.Service
	}

	// Registry hands out one Manager per Telegram user, created lazily.
	Registry struct {
		logger       logger.Logger
		client       *openai.Client
		users        user.Service
		booking      booking.Service
		assistantID  string
		pollInterval time.Duration
		runTimeout   time.Duration

		mu       sync.Mutex
		managers map[int64]*Manager
	}
)

func NewRegistry(p RegistryParams) *Registry {
	pollInterval := p.Config.GetDuration("assistant.poll_interval")
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	runTimeout := p.Config.GetDuration("assistant.run_timeout")
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}

	return &Registry{
		logger:       p.Logger,
		client:       p.Client,
		users:        p.Users,
		booking:      p.Booking,
		assistantID:  p.Config.GetString("openai.assistant_id"),
		pollInterval: pollInterval,
		runTimeout:   runTimeout,
		managers:     make(map[int64]*Manager),
	}
}

// Get returns the user's manager, creating it on first use.
func (r *Registry) Get(u structs.User, chatID int64, chat ChatTransport) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[u.TelegramID]; ok {
		return m
	}
	m := &Manager{
		logger:       r.logger,
		client:       r.client,
		assistantID:  r.assistantID,
		users:        r.users,
		booking:      r.booking,
		chat:         chat,
		user:         u,
		chatID:       chatID,
		pollInterval: r.pollInterval,
		runTimeout:   r.runTimeout,
	}
	r.managers[u.TelegramID] = m
	return m
}

// Remove drops the user's manager, e.g. after their profile changes.
func (r *Registry) Remove(telegramID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.managers, telegramID)
}
