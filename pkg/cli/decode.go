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

	"github.com/urfave/cli/v3"

	ver "github.com/NVIDIA/verkey/pkg/version"
)

// decodedKey is the numeric content of a key.
type decodedKey struct {
	Key      string   `json:"key" yaml:"key"`
	Value    string   `json:"value" yaml:"value"`
	Segments []uint32 `json:"segments" yaml:"segments"`
	Version  string   `json:"version" yaml:"version"`
}

// Text returns the recovered dotted version.
func (d decodedKey) Text() string {
	return d.Version
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "decode",
		Aliases:               []string{"dec"},
		EnableShellCompletion: true,
		Usage:                 "Recover the numeric segments of keys",
		ArgsUsage:             "<key...>",
		Description: `Decode each key back into its packed value and split it into 32-bit
segments. Non-numeric segments were encoded as zero and segments of 2^32 or
more spilled into their neighbour, so the result is the numeric version the
key sorts as, not necessarily the original text.

  verkey decode -s 3 AAAAAAAAAAAAAAAAAAABIEEGHEEAICCJJEIGCBB`,
		Flags: []cli.Flag{
			segmentsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return usageError(cmd, "<key...>", 0)
			}

			segments, err := parseSegments(cmd)
			if err != nil {
				return err
			}

			out := make([]decodedKey, 0, cmd.NArg())
			for _, key := range cmd.Args().Slice() {
				v, err := ver.Decode(key)
				if err != nil {
					return fmt.Errorf("key %q: %w", key, err)
				}
				parts := ver.Unpack(v, segments)
				out = append(out, decodedKey{
					Key:      key,
					Value:    v.String(),
					Segments: parts,
					Version:  ver.FormatSegments(parts),
				})
			}
			return write(ctx, cmd, out)
		},
	}
}
