package ports

import "context"

// HealthChecker is implemented by components whose state decides whether
// the tool can answer queries, such as the dataset source and the store.
type HealthChecker interface {
	// Name identifies the component in health output.
	Name() string

	// HealthCheck returns nil when the component is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns results keyed by name. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
