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
	"runtime"
	"sort"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/verkey/pkg/serializer"
	ver "github.com/NVIDIA/verkey/pkg/version"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Read versions from a file (.txt one per line, .json or .yaml list)",
	}
}

// encodedVersion pairs an input version with its key.
type encodedVersion struct {
	Version string `json:"version" yaml:"version"`
	Key     string `json:"key" yaml:"key"`
}

// Text returns the key alone so text output can be piped.
func (e encodedVersion) Text() string {
	return e.Key
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		Aliases:               []string{"enc"},
		EnableShellCompletion: true,
		Usage:                 "Encode versions into sortable keys",
		ArgsUsage:             "[version...]",
		Description: `Encode each version into a 39-character key. Versions are taken from the
arguments, from --file, or from stdin one per line (blank lines and lines
starting with # are skipped).

Segments that are not unsigned integers encode as zero unless --strict is
set. Output order matches input order.

  verkey encode 1.22.3
  verkey encode -s 3 --format json 1.9 1.10
  kubectl version -o json | jq -r .serverVersion.gitVersion | verkey encode`,
		Flags: []cli.Flag{
			segmentsFlag(),
			strictFlag(),
			fileFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			segments, err := parseSegments(cmd)
			if err != nil {
				return err
			}

			versions, err := readVersions(cmd)
			if err != nil {
				return err
			}

			results, err := encodeVersions(ctx, versions, segments, cmd.Bool("strict"))
			if err != nil {
				return err
			}

			slog.Debug("encoded versions", "count", len(results), "segments", segments)
			return write(ctx, cmd, results)
		},
	}
}

// readVersions returns the command arguments, or the --file list, or stdin lines.
func readVersions(cmd *cli.Command) ([]string, error) {
	if cmd.NArg() > 0 {
		return cmd.Args().Slice(), nil
	}

	if path := cmd.String("file"); path != "" {
		list, err := serializer.FromFile[[]string](path)
		if err != nil {
			return nil, fmt.Errorf("failed to read versions from %s: %w", path, err)
		}
		return *list, nil
	}

	in := cmd.Root().Reader
	if in == nil {
		in = os.Stdin
	}
	return serializer.ReadLines(in)
}

// encodeVersions encodes versions concurrently, preserving input order.
// The first failure cancels the remaining work.
func encodeVersions(ctx context.Context, versions []string, segments int, strict bool) ([]encodedVersion, error) {
	encode := ver.Encode
	if strict {
		encode = ver.EncodeStrict
	}

	out := make([]encodedVersion, len(versions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, v := range versions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key, err := encode(v, segments)
			if err != nil {
				return fmt.Errorf("version %q: %w", v, err)
			}
			out[i] = encodedVersion{Version: v, Key: key}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sortedVersion is an encodedVersion whose text form is the version.
type sortedVersion struct {
	Version string `json:"version" yaml:"version"`
	Key     string `json:"key" yaml:"key"`
}

// Text returns the version.
func (s sortedVersion) Text() string {
	return s.Version
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions by their keys",
		ArgsUsage:             "[version...]",
		Description: `Order versions by encoded key. Input is read like "verkey encode".
Versions with equal keys keep their input order.

  printf '1.10\n1.9\n1.9.1\n' | verkey sort -s 3
  verkey sort --reverse 2.0 10.0 1.0`,
		Flags: []cli.Flag{
			segmentsFlag(),
			strictFlag(),
			fileFlag(),
			reverseFlag("Sort in descending order"),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			segments, err := parseSegments(cmd)
			if err != nil {
				return err
			}

			versions, err := readVersions(cmd)
			if err != nil {
				return err
			}

			encoded, err := encodeVersions(ctx, versions, segments, cmd.Bool("strict"))
			if err != nil {
				return err
			}

			return write(ctx, cmd, sortVersions(encoded, cmd.Bool("reverse")))
		},
	}
}

func sortVersions(encoded []encodedVersion, reverse bool) []sortedVersion {
	out := make([]sortedVersion, len(encoded))
	for i, e := range encoded {
		out[i] = sortedVersion(e)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if reverse {
			return out[a].Key > out[b].Key
		}
		return out[a].Key < out[b].Key
	})
	return out
}
