package domain

import "time"

// Default endpoint behaviour. The submission endpoint has no retry and
// a single in-flight request, so the transport timeout is the only
// protection against a hung exchange.
const (
	// DefaultSubmitTimeout bounds one submission exchange.
	DefaultSubmitTimeout = 20 * time.Second

	// DefaultCallbackPort is the local port for the sign-in redirect.
	// Zero means pick any free port.
	DefaultCallbackPort = 0
)

// EndpointSettings holds record store configuration.
type EndpointSettings struct {
	// URL is the HTTPS POST target accepting submissions.
	URL string

	// Timeout bounds a single submission exchange. Expiry is treated
	// as a transport failure.
	Timeout time.Duration
}

// IsConfigured returns true if the endpoint is usable.
func (e EndpointSettings) IsConfigured() bool {
	return e.URL != ""
}

// IdentitySettings holds sign-in configuration.
type IdentitySettings struct {
	// ClientID is the OAuth client id used for Google sign-in.
	ClientID string

	// CallbackPort is the local redirect port (0 = any free port).
	CallbackPort int
}

// IsConfigured returns true if sign-in is usable.
func (i IdentitySettings) IsConfigured() bool {
	return i.ClientID != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Endpoint holds record store settings.
	Endpoint EndpointSettings

	// Identity holds sign-in settings.
	Identity IdentitySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Endpoint URL and client id have no defaults; users must configure
// them before a submission can be made.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Endpoint: EndpointSettings{
			Timeout: DefaultSubmitTimeout,
		},
		Identity: IdentitySettings{
			CallbackPort: DefaultCallbackPort,
		},
	}
}
