package config

import (
	"errors"
	"time"

	"nachna/shared/common/env"
)

var (
	ErrInvalidHTTPPort = errors.New("HTTP_PORT must be a positive integer")
	ErrGracefulTimeout = errors.New("GRACEFUL_TIMEOUT must be a positive duration")
	ErrDSN             = errors.New("DB_DSN must be set")
)

// รวมการโหลดค่าคอนฟิกทั้งหมดไว้ในจุดเดียว
type Config struct {
	HTTPPort        int
	GracefulTimeout time.Duration
	DSN             string
	GatewayHost     string
	GatewayBasePath string
	OtlpEndpoint    string
	Rewards         RewardsPolicy
}

func Load() (*Config, error) {
	rewards, err := LoadRewardsPolicy(env.Get("REWARDS_POLICY_FILE"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		HTTPPort:        env.GetIntDefault("HTTP_PORT", 8090),
		GracefulTimeout: env.GetDurationDefault("GRACEFUL_TIMEOUT", 5*time.Second),
		DSN:             env.Get("DB_DSN"),
		GatewayHost:     env.Get("GATEWAY_HOST"),
		GatewayBasePath: env.GetDefault("GATEWAY_BASEURL", "/api/v1"),
		OtlpEndpoint:    env.Get("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Rewards:         rewards,
	}
	err = config.Validate()
	if err != nil {
		return nil, err
	}
	return config, err
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 {
		return ErrInvalidHTTPPort
	}
	if c.GracefulTimeout <= 0 {
		return ErrGracefulTimeout
	}
	if len(c.DSN) == 0 {
		return ErrDSN
	}

	return nil
}
