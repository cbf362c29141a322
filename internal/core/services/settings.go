package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEndpointURL     = "endpoint.url"
	keyEndpointTimeout = "endpoint.timeout"
	keyIdentityClient  = "identity.client_id"
	keyIdentityPort    = "identity.callback_port"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Endpoint: domain.EndpointSettings{
			URL:     s.configStore.GetString(keyEndpointURL),
			Timeout: s.getDuration(keyEndpointTimeout, defaults.Endpoint.Timeout),
		},
		Identity: domain.IdentitySettings{
			ClientID:     s.configStore.GetString(keyIdentityClient),
			CallbackPort: s.getInt(keyIdentityPort, defaults.Identity.CallbackPort),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}

	if err := s.configStore.Set(keyEndpointURL, settings.Endpoint.URL); err != nil {
		return fmt.Errorf("save endpoint url: %w", err)
	}
	if err := s.configStore.Set(keyEndpointTimeout, settings.Endpoint.Timeout.String()); err != nil {
		return fmt.Errorf("save endpoint timeout: %w", err)
	}
	if err := s.configStore.Set(keyIdentityClient, settings.Identity.ClientID); err != nil {
		return fmt.Errorf("save identity client_id: %w", err)
	}
	if err := s.configStore.Set(keyIdentityPort, settings.Identity.CallbackPort); err != nil {
		return fmt.Errorf("save identity callback_port: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}

	return nil
}

// SetEndpoint updates the record store URL and exchange timeout.
func (s *SettingsService) SetEndpoint(url string, timeout time.Duration) error {
	if url == "" {
		return fmt.Errorf("%w: endpoint url must not be empty", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Endpoint.URL = url
	if timeout > 0 {
		settings.Endpoint.Timeout = timeout
	}

	return s.Save(settings)
}

// SetIdentity updates the sign-in client id and callback port.
func (s *SettingsService) SetIdentity(clientID string, callbackPort int) error {
	if clientID == "" {
		return fmt.Errorf("%w: client id must not be empty", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Identity.ClientID = clientID
	settings.Identity.CallbackPort = callbackPort

	return s.Save(settings)
}

// Validate checks that settings allow a submission to be made.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Endpoint.IsConfigured() {
		return fmt.Errorf("%w: endpoint.url is not configured", domain.ErrInvalidInput)
	}
	if !settings.Identity.IsConfigured() {
		return fmt.Errorf("%w: identity.client_id is not configured", domain.ErrInvalidInput)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
