// Package config handles loading, parsing, and validating application
// configuration from environment variables and optional config files.
package config
