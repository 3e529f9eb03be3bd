// Package config loads server configuration from DNS_-prefixed environment
// variables over struct defaults, and validates the result.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Port is the UDP port the server binds to.
	Port int `koanf:"port" validate:"required,gte=1,lt=65535"`

	// Resolver is the optional upstream resolver address in host:port
	// form. When empty, the server answers from the static local source
	// instead of forwarding.
	Resolver string `koanf:"resolver" validate:"omitempty,host_port"`

	// LocalAddr is the IPv4 address the static local source answers with
	// when no resolver is configured.
	LocalAddr string `koanf:"local_addr" validate:"required,ip4_addr"`

	// LocalTTL is the TTL in seconds for static local answers.
	LocalTTL uint32 `koanf:"local_ttl" validate:"required,gte=1"`

	// Timeout is the upstream exchange deadline in seconds.
	Timeout uint `koanf:"timeout" validate:"required,gte=1"`

	// MaxInflight bounds the number of concurrently handled requests.
	MaxInflight uint `koanf:"max_inflight" validate:"required,gte=1"`
}

// DEFAULT_APP_CONFIG defines the default configuration for the server:
// no upstream resolver (static local answers), the reference 8.8.8.8/60s
// local answer, and a 5 second upstream deadline.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:         "prod",
	LogLevel:    "info",
	Port:        53,
	Resolver:    "",
	LocalAddr:   "8.8.8.8",
	LocalTTL:    60,
	Timeout:     5,
	MaxInflight: 128,
}

// validHostPort validates a "host:port" value: a non-empty host (name or
// IP) and a numeric port in range. Hostnames are allowed because upstream
// resolvers are dialed, not parsed.
func validHostPort(fl validator.FieldLevel) bool {
	host, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil || host == "" || port == "" {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum > 0
}

// envLoader loads environment variables with the prefix "DNS_",
// lowercasing keys and stripping the prefix. Split out so tests can swap it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNS_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DNS_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG via the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables into an AppConfig, applying defaults
// and running validation.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("host_port", validHostPort); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
