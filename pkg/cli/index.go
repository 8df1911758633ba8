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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/verkey/pkg/defaults"
	"github.com/NVIDIA/verkey/pkg/index"
	"github.com/NVIDIA/verkey/pkg/serializer"
)

func indexCmd() *cli.Command {
	return &cli.Command{
		Name:                  "index",
		Aliases:               []string{"idx"},
		EnableShellCompletion: true,
		Usage:                 "Store and query versions in a key-ordered index",
		Description: `Manage a version index. The memory backend lives only for the duration
of one command; use the redis backend to keep entries between runs.

  export VERKEY_INDEX=redis REDIS_ADDR=localhost:6379
  verkey index put 1.9 1.10 2.0
  verkey index range --min 1.9 --max 1.99
  verkey index len`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Value:   index.BackendMemory,
				Sources: cli.EnvVars("VERKEY_INDEX"),
				Usage:   fmt.Sprintf("Index backend (%s, %s)", index.BackendMemory, index.BackendRedis),
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Sources: cli.EnvVars("REDIS_ADDR"),
				Usage:   "Redis address (host:port) for the redis backend",
			},
			segmentsFlag(),
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIIndexTimeout,
				Usage: "Overall timeout for the index operation",
			},
		},
		Commands: []*cli.Command{
			indexPutCmd(),
			indexRangeCmd(),
			indexDeleteCmd(),
			indexLenCmd(),
			indexExportCmd(),
			indexImportCmd(),
			indexSchemaCmd(),
		},
	}
}

func indexPutCmd() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Add versions to the index",
		ArgsUsage: "<version...>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: withIndex("<version...>", func(ctx context.Context, cmd *cli.Command, idx index.Index) error {
			entries := make([]index.Entry, 0, cmd.NArg())
			for _, v := range cmd.Args().Slice() {
				e, err := idx.Put(ctx, v)
				if err != nil {
					return fmt.Errorf("version %q: %w", v, err)
				}
				entries = append(entries, e)
			}
			slog.Debug("indexed versions", "count", len(entries))
			return write(ctx, cmd, entries)
		}),
	}
}

func indexRangeCmd() *cli.Command {
	return &cli.Command{
		Name:  "range",
		Usage: "List indexed versions between two bounds, in key order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "min",
				Usage: "Lowest version to include (default: unbounded)",
			},
			&cli.StringFlag{
				Name:  "max",
				Usage: "Highest version to include (default: unbounded)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   defaults.IndexRangeLimit,
				Usage:   "Maximum number of entries to return",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: withIndex("", func(ctx context.Context, cmd *cli.Command, idx index.Index) error {
			entries, err := idx.Range(ctx, cmd.String("min"), cmd.String("max"), int(cmd.Int("limit")))
			if err != nil {
				return err
			}
			return write(ctx, cmd, entries)
		}),
	}
}

func indexDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Remove versions from the index",
		ArgsUsage: "<version...>",
		Action: withIndex("<version...>", func(ctx context.Context, cmd *cli.Command, idx index.Index) error {
			for _, v := range cmd.Args().Slice() {
				if err := idx.Delete(ctx, v); err != nil {
					return fmt.Errorf("version %q: %w", v, err)
				}
			}
			slog.Debug("removed versions", "count", cmd.NArg())
			return nil
		}),
	}
}

func indexLenCmd() *cli.Command {
	return &cli.Command{
		Name:  "len",
		Usage: "Print the number of indexed versions",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: withIndex("", func(ctx context.Context, cmd *cli.Command, idx index.Index) error {
			n, err := idx.Len(ctx)
			if err != nil {
				return err
			}
			return write(ctx, cmd, n)
		}),
	}
}

func indexExportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write every indexed version to a KeySet document",
		Description: `Export the index as a KeySet document that "index import" can load into
another backend with the same segment count. Text and table formats are
written as yaml.

  verkey index export -t yaml -o versions.keyset.yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: withIndex("", func(ctx context.Context, cmd *cli.Command, idx index.Index) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			// documents have no line form
			if format == serializer.FormatText || format == serializer.FormatTable {
				format = serializer.FormatYAML
			}

			ks, err := index.Export(ctx, idx, version)
			if err != nil {
				return err
			}
			slog.Debug("exported index", "entries", len(ks.Entries))
			return writeAs(ctx, cmd, format, ks)
		}),
	}
}

func indexImportCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Load a KeySet document into the index",
		ArgsUsage: "<file>",
		Action: withIndex("<file>", func(ctx context.Context, cmd *cli.Command, idx index.Index) error {
			path := cmd.Args().First()
			ks, err := serializer.FromFile[index.KeySet](path)
			if err != nil {
				return err
			}

			n, err := index.Import(ctx, idx, ks)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			slog.Info("imported key set", "path", path, "entries", n)
			return nil
		}),
	}
}

func indexSchemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON Schema of a KeySet document",
		Flags: []cli.Flag{
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeAs(ctx, cmd, serializer.FormatJSON, index.KeySetSchema())
		},
	}
}

// withIndex opens the configured index for the duration of fn. A non-empty
// argsUsage requires at least one positional argument.
func withIndex(argsUsage string, fn func(context.Context, *cli.Command, index.Index) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if argsUsage != "" && cmd.NArg() == 0 {
			return usageError(cmd, argsUsage, 0)
		}

		segments, err := parseSegments(cmd)
		if err != nil {
			return err
		}

		cfg, err := index.LoadConfig()
		if err != nil {
			return err
		}
		cfg.Backend = cmd.String("backend")
		cfg.Segments = segments
		if addr := cmd.String("redis-addr"); addr != "" {
			cfg.Redis.Addr = addr
		}

		ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
		defer cancel()

		idx, err := index.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := idx.Close(); cerr != nil {
				slog.Warn("failed to close index", "error", cerr)
			}
		}()

		slog.Debug("opened index", "backend", cfg.Backend, "segments", segments)
		return fn(ctx, cmd, idx)
	}
}
