package ports

import "context"

// HealthChecker is a dependency reported by GET /health.
type HealthChecker interface {
	Name() string
	// Ping returns nil when the dependency answers.
	Ping(ctx context.Context) error
}
