// Package config provides configuration loading and validation for the realm
// tool. Configuration is layered: defaults -> base.yaml -> {profile}.yaml ->
// env vars.
package config

import "time"

// Config holds all configuration for the realm tool.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Output    OutputConfig    `koanf:"output"`
	CLI       CLIConfig       `koanf:"cli"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// DatasetConfig lists the files the store is populated from at startup.
type DatasetConfig struct {
	Paths       []string `koanf:"paths" validate:"min=1,dive,notblank"`
	Concurrency int      `koanf:"concurrency" validate:"gte=1"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=json yaml"`
}

// CLIConfig holds per-command execution settings.
type CLIConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// TelemetryConfig holds OpenTelemetry settings. Its fields are only
// checked while Enabled is set.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
