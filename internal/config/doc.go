// Package config provides the configuration for the rtfdump CLI.
// Values come from built-in defaults, then an optional YAML file
// (.rtfdump.yaml), then command-line flags.
package config
