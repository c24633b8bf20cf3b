package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their koanf key so messages match the YAML.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterStructValidation(telemetryRules, TelemetryConfig{})

	return v
}

// Validate checks all configuration values and returns one joined error
// per invalid field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, len(verrs))
	for i, fe := range verrs {
		errs[i] = fmt.Errorf("%s %s", keyPath(fe.Namespace()), describe(fe))
	}
	return errors.Join(errs...)
}

// telemetryRules applies only while telemetry is enabled; a disabled block
// may hold anything.
func telemetryRules(sl validator.StructLevel) {
	t, ok := sl.Current().Interface().(TelemetryConfig)
	if !ok || !t.Enabled {
		return
	}

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		sl.ReportError(t.Exporter, "exporter", "Exporter", "oneof", "stdout otlp")
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		sl.ReportError(t.Endpoint, "endpoint", "Endpoint", "otlp_endpoint", "")
	}
	if t.ServiceName == "" {
		sl.ReportError(t.ServiceName, "service_name", "ServiceName", "required", "")
	}
}

// keyPath drops the root struct name: "Config.dataset.paths[1]" ->
// "dataset.paths[1]".
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s; got %q",
			strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must list at least %s entry", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "gt":
		return "must be positive"
	case "notblank":
		return "must not be blank"
	case "required":
		return "must not be empty"
	case "otlp_endpoint":
		return "must not be empty when exporter is otlp"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
