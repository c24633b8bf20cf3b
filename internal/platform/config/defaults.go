package config

const defaultDatasetConcurrency = 4

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"dataset.paths":       []string{"data/realm.yaml"},
		"dataset.concurrency": defaultDatasetConcurrency,

		"output.format": "json",

		"cli.timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "realm",
	}
}

// listKeys are the keys whose env var values are comma-separated lists.
var listKeys = map[string]bool{
	"dataset.paths": true,
}
