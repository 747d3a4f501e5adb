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

package commands

import (
	"context"
	"strings"

	"github.com/espressif/github-actions/commands/submodule"
	"github.com/spf13/cobra"
)

// NormalizeCommand will modify commands to be consistent, e.g. silencing usage
// on errors
func NormalizeCommand(c ...*cobra.Command) {
	for i := range c {
		cmd := c[i]
		cmd.Short = strings.TrimSuffix(strings.TrimSpace(cmd.Short), ".")
		cmd.SilenceUsage = true
		NormalizeCommand(cmd.Commands()...)
	}
}

// GetCommands returns the set of commands to be registered
func GetCommands(ctx context.Context, name string) []*cobra.Command {
	var c []*cobra.Command
	submoduleCmd := submodule.GetCommand(ctx, name)

	c = append(c, submoduleCmd)

	// apply cross-cutting issues to commands
	NormalizeCommand(c...)
	return c
}
