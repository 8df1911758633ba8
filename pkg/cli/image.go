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
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/verkey/pkg/reference"
)

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "image",
		Aliases:               []string{"img"},
		EnableShellCompletion: true,
		Usage:                 "Order container image references by tag version",
		ArgsUsage:             "<reference...>",
		Description: `Parse each image reference, take the version from its tag ("v" prefix,
"-suffix" and "+metadata" removed) and order the images by key. Text output
prints the normalized references.

  verkey image -s 3 nginx:1.27.2 nginx:1.9.15 nvcr.io/nvidia/gpu-operator:v25.3.0`,
		Flags: []cli.Flag{
			segmentsFlag(),
			reverseFlag("Newest first"),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return usageError(cmd, "<reference...>", 0)
			}

			segments, err := parseSegments(cmd)
			if err != nil {
				return err
			}

			images, err := reference.SortImages(cmd.Args().Slice(), segments)
			if err != nil {
				return err
			}
			if cmd.Bool("reverse") {
				slices.Reverse(images)
			}
			return write(ctx, cmd, images)
		},
	}
}
