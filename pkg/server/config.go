// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/joeshaw/envdecode"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/verkey/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits
	MaxBulkRequests int
	MaxBodyBytes    int64

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// envOverrides lists the settings that can be changed from the environment.
// Zero values mean unset.
type envOverrides struct {
	Port                   int     `env:"PORT,strict"`
	ShutdownTimeoutSeconds int     `env:"SHUTDOWN_TIMEOUT_SECONDS,strict"`
	RateLimit              float64 `env:"RATE_LIMIT,strict"`
	RateLimitBurst         int     `env:"RATE_LIMIT_BURST,strict"`
	MaxBulkRequests        int     `env:"MAX_BULK_REQUESTS,strict"`
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by the environment. A malformed
// environment is logged and ignored as a whole.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              8080,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		MaxBulkRequests:   defaults.ServerMaxBulkRequests,
		MaxBodyBytes:      defaults.ServerMaxBodyBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			slog.Warn("ignoring invalid server environment", "error", err)
		}
		return cfg
	}

	if env.Port > 0 {
		cfg.Port = env.Port
	}
	// Allow customization of shutdown timeout to match K8s eviction grace period
	if env.ShutdownTimeoutSeconds > 0 {
		cfg.ShutdownTimeout = time.Duration(env.ShutdownTimeoutSeconds) * time.Second
	}
	if env.RateLimit > 0 {
		cfg.RateLimit = rate.Limit(env.RateLimit)
	}
	if env.RateLimitBurst > 0 {
		cfg.RateLimitBurst = env.RateLimitBurst
	}
	if env.MaxBulkRequests > 0 {
		cfg.MaxBulkRequests = env.MaxBulkRequests
	}

	return cfg
}
