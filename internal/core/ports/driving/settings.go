package driving

import (
	"time"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetEndpoint updates the record store URL and exchange timeout.
	// A zero timeout keeps the default.
	SetEndpoint(url string, timeout time.Duration) error

	// SetIdentity updates the sign-in client id and callback port.
	SetIdentity(clientID string, callbackPort int) error

	// Validate checks that settings allow a submission to be made.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
