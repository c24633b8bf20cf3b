package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// profilePattern keeps profile names usable as a bare file name.
var profilePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load reads configuration from, lowest precedence first:
//
//  1. Built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_ environment variables
//
// An environment variable is matched against the keys already loaded, so
// underscores inside a key survive. List keys take a comma-separated value:
//
//	APP_OUTPUT_FORMAT               -> output.format
//	APP_TELEMETRY_SERVICE_NAME      -> telemetry.service_name
//	APP_DATASET_PATHS=a.yaml,b.yaml -> dataset.paths = [a.yaml b.yaml]
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	basePath := filepath.Join(o.configDir, "base.yaml")
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	layers := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config " + basePath, provider: file.Provider(basePath), parser: yaml.Parser()},
		{name: "profile config " + profilePath, provider: file.Provider(profilePath), parser: yaml.Parser()},
	}

	k := koanf.New(".")
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	envProvider := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k.Keys()),
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if !profilePattern.MatchString(profile) {
		return fmt.Errorf("profile %q must contain only letters, digits, '-' and '_'", profile)
	}
	return nil
}

// envTransform maps APP_TELEMETRY_SERVICE_NAME to "telemetry.service_name"
// by looking the underscored form up among known keys. Unknown variables
// fall back to treating every underscore as a separator.
func envTransform(keys []string) func(key, value string) (string, any) {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))

		koanfKey, ok := known[name]
		if !ok {
			return strings.ReplaceAll(name, "_", "."), value
		}
		if listKeys[koanfKey] {
			return koanfKey, splitList(value)
		}
		return koanfKey, value
	}
}

// splitList turns "a, b,,c" into [a b c].
func splitList(value string) []string {
	var out []string
	for p := range strings.SplitSeq(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
