// Package services implements the driving ports with the core
// business logic of Inspecta.
//
// Services are plain structs with constructor-injected driven ports:
//
//   - ChecklistService: answer sheet, metadata and derived summaries
//   - SessionService: identity session state machine
//   - SubmissionService: the validate/serialize/send/interpret pipeline
//   - SettingsService: typed access to application configuration
//
// No service touches the network or filesystem directly; all I/O goes
// through driven ports so every service is testable with in-memory
// fakes.
package services
