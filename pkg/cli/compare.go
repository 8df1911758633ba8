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

	"github.com/urfave/cli/v3"

	ver "github.com/NVIDIA/verkey/pkg/version"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		Aliases:               []string{"cmp"},
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by key (prints -1, 0 or 1)",
		ArgsUsage:             "<a> <b>",
		Flags: []cli.Flag{
			segmentsFlag(),
			strictFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return usageError(cmd, "<a> <b>", cmd.NArg())
			}

			segments, err := parseSegments(cmd)
			if err != nil {
				return err
			}

			a, b := cmd.Args().Get(0), cmd.Args().Get(1)
			if cmd.Bool("strict") {
				for _, v := range []string{a, b} {
					if err := ver.Validate(v, segments); err != nil {
						return err
					}
				}
			}

			result, err := ver.Compare(a, b, segments)
			if err != nil {
				return err
			}
			return write(ctx, cmd, result)
		},
	}
}
