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

package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/verkey/pkg/index"
	"github.com/NVIDIA/verkey/pkg/logging"
	"github.com/NVIDIA/verkey/pkg/server"
)

const (
	name           = "verkeyd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/verkey/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, opens the index selected by VERKEY_INDEX, sets up
// routes, and handles graceful shutdown.
func Serve() error {
	return ServeContext(context.Background())
}

// ServeContext is Serve with a caller-controlled lifetime.
func ServeContext(ctx context.Context) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	idx, err := index.NewFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer func() {
		if cerr := idx.Close(); cerr != nil {
			slog.Warn("failed to close index", "error", cerr)
		}
	}()

	cfg := server.NewConfig()
	h := NewHandler(
		WithIndex(idx),
		WithMaxBulkRequests(cfg.MaxBulkRequests),
		WithMaxBodyBytes(cfg.MaxBodyBytes),
	)

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
