// Package health runs component health checks for the health command.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe [ports.HealthRegistry]. Checkers sharing a
// name overwrite each other's result; the last registered wins.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker outside the lock and returns results keyed by
// name.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Status is one component's line in a Report.
type Status struct {
	Name    string `json:"name" yaml:"name"`
	Healthy bool   `json:"healthy" yaml:"healthy"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the outcome of running every registered check.
type Report struct {
	Healthy    bool     `json:"healthy" yaml:"healthy"`
	Components []Status `json:"components" yaml:"components"`
}

// Summarize orders results by name and reports overall health. An empty
// result set is healthy.
func Summarize(results map[string]error) Report {
	report := Report{Healthy: true, Components: make([]Status, 0, len(results))}
	for name, err := range results {
		s := Status{Name: name, Healthy: err == nil}
		if err != nil {
			s.Error = err.Error()
			report.Healthy = false
		}
		report.Components = append(report.Components, s)
	}
	slices.SortFunc(report.Components, func(a, b Status) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return report
}
