// Package file persists application settings to a TOML file under the
// user's home directory. It implements the driven.ConfigStore port;
// dot-notation keys are stored as nested TOML tables.
package file
