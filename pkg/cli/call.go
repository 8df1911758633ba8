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

	"github.com/NVIDIA/verkey/pkg/udf"
)

func callCmd() *cli.Command {
	return &cli.Command{
		Name:                  "call",
		EnableShellCompletion: true,
		Usage:                 "Invoke " + udf.Name + " with raw arguments",
		ArgsUsage:             "<semver> <segments>",
		Description: `Run the host function exactly as a query engine would: both arguments
are coerced from text, the argument count is checked first and bounds errors
are reported as such.

  verkey call 1.22.3 3`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.Args().Slice()
			args := make([]any, len(raw))
			for i, a := range raw {
				args[i] = a
			}

			key, err := udf.Call(args...)
			if err != nil {
				return err
			}
			return write(ctx, cmd, key)
		},
	}
}
