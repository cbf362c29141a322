// Package driven defines the driven ports (secondary interfaces) of
// the hexagonal architecture.
//
// Driven ports are the interfaces the core requires from the outside
// world: the remote record store, the identity provider, and the
// configuration store. Implementations live in internal/adapters/driven.
//
// # Import Rules
//
//   - Can Import: domain, standard library
//   - Cannot Import: services, adapters, external dependencies
package driven
