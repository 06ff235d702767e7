package dispatch

// Config is the configuration of the request dispatcher.
type Config struct {
	// MaxBodyBytes bounds the size of request bodies. Zero disables the limit.
	MaxBodyBytes int64 `conf:"max_body_bytes" validate:"gte=0"`
}

// DefaultMaxBodyBytes is the body limit applied when none is configured.
const DefaultMaxBodyBytes int64 = 1 << 20
