package handler

// Config selects the routes mounted next to the dispatcher.
type Config struct {
	// Health mounts GET /health.
	Health bool `conf:"health"`

	// Metrics mounts GET /metrics and records request metrics.
	Metrics bool `conf:"metrics"`
}
