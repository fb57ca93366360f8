// Package config handles configuration management for htmlfixture.
// It layers embedded defaults, a project TOML file, environment variables
// and explicit overrides with koanf.
package config
