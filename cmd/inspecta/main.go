// Command inspecta is a terminal client for filling in workplace
// inspection checklists and submitting them to the central record
// sheet. Run with no arguments to open the interactive checklist.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driven/identity/google"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driven/record/appsscript"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/inspecta-cli/internal/core/services"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Unconfigured adapters stay nil; the services degrade to clear
	// errors instead of failing at startup, so the form is usable
	// before any configuration exists.
	var provider driven.IdentityProvider
	if settings.Identity.IsConfigured() {
		provider, err = google.NewProvider(google.Config{
			ClientID:     settings.Identity.ClientID,
			CallbackPort: settings.Identity.CallbackPort,
		})
		if err != nil {
			return fmt.Errorf("configure sign-in: %w", err)
		}
	}

	var recordStore driven.RecordStore
	if settings.Endpoint.IsConfigured() {
		recordStore, err = appsscript.NewRecordStore(appsscript.Config{
			URL:     settings.Endpoint.URL,
			Timeout: settings.Endpoint.Timeout,
		})
		if err != nil {
			return fmt.Errorf("configure endpoint: %w", err)
		}
	}

	checklistService := services.NewChecklistService(domain.DefaultSchema())
	sessionService := services.NewSessionService(provider)
	submissionService := services.NewSubmissionService(checklistService, sessionService, recordStore)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Checklist:  checklistService,
		Session:    sessionService,
		Submission: submissionService,
		Settings:   settingsService,
	})

	return cli.Execute()
}
