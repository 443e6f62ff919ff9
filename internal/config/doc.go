// Package config defines the application configuration structure and
// handles loading it from files and environment variables.
package config
