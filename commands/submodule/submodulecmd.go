// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package submodule

import (
	"context"

	"github.com/espressif/github-actions/internal/cmdsubmodule"
	"github.com/espressif/github-actions/internal/docs/submoduledocs"
	"github.com/spf13/cobra"
)

func GetCommand(ctx context.Context, name string) *cobra.Command {
	sub := &cobra.Command{
		Use:     "submodule",
		Short:   submoduledocs.SubmoduleShort,
		Long:    submoduledocs.SubmoduleLong,
		Aliases: []string{"sub"},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := cmd.Flags().GetBool("help")
			if err != nil {
				return err
			}
			if h {
				return cmd.Help()
			}
			return cmd.Usage()
		},
	}

	sub.AddCommand(
		cmdsubmodule.NewUpdateCommand(ctx, name),
		cmdsubmodule.NewListCommand(ctx, name),
	)
	return sub
}
