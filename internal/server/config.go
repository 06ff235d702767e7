package server

import "time"

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port" validate:"gte=0,lte=65535"`
	H2c  bool   `conf:"h2c"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	ReadHeaderTimeout time.Duration `conf:"read_header_timeout" validate:"gte=0"`
}
