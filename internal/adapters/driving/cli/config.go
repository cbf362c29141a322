package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and configure the submission endpoint and sign-in client.

Settings are stored in ~/.inspecta/config.toml.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var (
	endpointTimeout time.Duration

	configEndpointCmd = &cobra.Command{
		Use:   "endpoint <url>",
		Short: "Set the submission endpoint",
		Long: `Set the URL of the deployed record sheet web app.

The optional --timeout flag bounds a single submission exchange.`,
		Args: cobra.ExactArgs(1),
		RunE: runConfigEndpoint,
	}
)

var (
	callbackPort int

	configIdentityCmd = &cobra.Command{
		Use:   "identity <client-id>",
		Short: "Set the sign-in client id",
		Long: `Set the OAuth client id used for Google sign-in.

The optional --port flag pins the loopback callback port; 0 picks a
random available port.`,
		Args: cobra.ExactArgs(1),
		RunE: runConfigIdentity,
	}
)

func init() {
	configEndpointCmd.Flags().DurationVar(&endpointTimeout, "timeout", 0, "Submission exchange timeout (e.g. 20s)")
	configIdentityCmd.Flags().IntVar(&callbackPort, "port", 0, "Loopback callback port for sign-in")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEndpointCmd)
	configCmd.AddCommand(configIdentityCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Endpoint]")
	if settings.Endpoint.URL != "" {
		cmd.Printf("  URL: %s\n", settings.Endpoint.URL)
	} else {
		cmd.Printf("  URL: (not set)\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.Endpoint.Timeout)
	status := "configured"
	if !settings.Endpoint.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Identity]")
	if settings.Identity.ClientID != "" {
		cmd.Printf("  Client ID: %s\n", settings.Identity.ClientID)
	} else {
		cmd.Printf("  Client ID: (not set)\n")
	}
	if settings.Identity.CallbackPort != 0 {
		cmd.Printf("  Callback port: %d\n", settings.Identity.CallbackPort)
	} else {
		cmd.Printf("  Callback port: (random)\n")
	}
	status = "configured"
	if !settings.Identity.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'inspecta config endpoint' and 'inspecta config identity' to finish setup.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigEndpoint(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetEndpoint(args[0], endpointTimeout); err != nil {
		return fmt.Errorf("failed to set endpoint: %w", err)
	}

	cmd.Printf("Endpoint set to: %s\n", args[0])
	return nil
}

func runConfigIdentity(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetIdentity(args[0], callbackPort); err != nil {
		return fmt.Errorf("failed to set identity: %w", err)
	}

	cmd.Printf("Client id set to: %s\n", args[0])
	return nil
}
