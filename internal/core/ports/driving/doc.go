// Package driving defines the driving ports (primary interfaces) of
// the hexagonal architecture.
//
// Driving ports are the use-case interfaces through which the CLI and
// TUI adapters operate the core: editing the checklist, managing the
// identity session, and running the submission pipeline. They are
// implemented by internal/core/services.
//
// # Import Rules
//
//   - Can Import: domain, standard library
//   - Cannot Import: services, adapters, external dependencies
package driving
