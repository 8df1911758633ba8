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
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/logging"
	"github.com/NVIDIA/verkey/pkg/serializer"
	ver "github.com/NVIDIA/verkey/pkg/version"
)

const (
	name           = "verkey"
	versionDefault = "dev"

	// exitUsage is returned for argument errors, matching common shell tools.
	exitUsage = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flag constructors. urfave flags hold parsed state and must not be shared.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatText),
		Sources: cli.EnvVars("VERKEY_FORMAT"),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func segmentsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "segments",
		Aliases: []string{"s"},
		Value:   ver.MaxSegments,
		Sources: cli.EnvVars("VERKEY_SEGMENTS"),
		Usage:   fmt.Sprintf("Number of version segments to encode (%d to %d)", ver.MinSegments, ver.MaxSegments),
	}
}

func strictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "Reject segments that are not unsigned 32-bit integers instead of encoding them as zero",
	}
}

func reverseFlag(usage string) cli.Flag {
	return &cli.BoolFlag{
		Name:    "reverse",
		Aliases: []string{"r"},
		Usage:   usage,
	}
}

// Execute runs the verkey command line and exits with a non-zero status on
// failure. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Encode dotted version strings into sortable keys",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: `verkey turns dotted version strings ("1.22.3") into fixed-width,
39-character keys over the alphabet A..J. Comparing two keys as plain strings
orders them the same way as comparing the versions numerically:

  verkey encode 1.9 1.10        # two keys, the second sorts after the first
  verkey sort < versions.txt    # order a list of versions
  verkey decode <key> -s 3      # recover the numeric segments of a key

Keys from "verkey encode" match those produced by the semver_value host
function for the same segment count.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			encodeCmd(),
			callCmd(),
			decodeCmd(),
			sortCmd(),
			compareCmd(),
			imageCmd(),
			indexCmd(),
		},
	}
}

// commandLister prints the names of visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(out, c.Name)
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeUsage,
			fmt.Sprintf("unknown output format: %q", cmd.String("format")),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return f, nil
}

// parseSegments reads the --segments flag and checks its bounds.
func parseSegments(cmd *cli.Command) (int, error) {
	n := int(cmd.Int("segments"))
	if err := ver.CheckSegments(n); err != nil {
		return 0, err
	}
	return n, nil
}

// newOutput returns a writer for the --output flag in the given format.
// The caller must Close it.
func newOutput(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if path := strings.TrimSpace(cmd.String("output")); path != "" && path != "-" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, cmd.Root().Writer)
}

// write serializes data with the command's output settings.
func write(ctx context.Context, cmd *cli.Command, data any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	return writeAs(ctx, cmd, format, data)
}

// writeAs serializes data in format to the command's output.
func writeAs(ctx context.Context, cmd *cli.Command, format serializer.Format, data any) error {
	out := newOutput(cmd, format)
	defer func() {
		if cerr := out.Close(); cerr != nil {
			slog.Warn("failed to close output", "error", cerr)
		}
	}()
	return out.Serialize(ctx, data)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if apperrors.IsCode(err, apperrors.ErrCodeUsage) {
		return exitUsage
	}
	return 1
}

// usageError reports a wrong argument count for cmd.
func usageError(cmd *cli.Command, want string, got int) error {
	return apperrors.NewWithContext(apperrors.ErrCodeUsage,
		fmt.Sprintf("usage: %s %s", cmd.FullName(), want),
		map[string]any{"args": got})
}
