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

package cmdsubmodule

import (
	"context"
	"strconv"

	docs "github.com/espressif/github-actions/internal/docs/submoduledocs"
	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/printer"
	"github.com/espressif/github-actions/internal/submodule"
	"github.com/espressif/github-actions/internal/util/cmdutil"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewListRunner returns a command runner.
func NewListRunner(ctx context.Context, parent string) *ListRunner {
	r := &ListRunner{
		ctx: ctx,
	}
	c := &cobra.Command{
		Use:     "list [flags]",
		Aliases: []string{"ls"},
		Short:   docs.ListShort,
		Long:    docs.ListShort + "\n" + docs.ListLong,
		Example: docs.ListExamples,
		Args:    cobra.NoArgs,
		RunE:    r.runE,
	}
	c.Flags().StringVar(&r.repo, "repo", "",
		"path of the git repository. defaults to the current directory.")
	cmdutil.FixDocs("ghactions", parent, c)
	r.Command = c
	return r
}

func NewListCommand(ctx context.Context, parent string) *cobra.Command {
	return NewListRunner(ctx, parent).Command
}

// ListRunner contains the run function.
type ListRunner struct {
	ctx     context.Context
	Command *cobra.Command
	repo    string
}

func (r *ListRunner) runE(c *cobra.Command, _ []string) error {
	const op errors.Op = "cmdsubmodule.list.runE"
	runner, err := openRepo(r.ctx, r.repo)
	if err != nil {
		return cmdutil.HandleError(c, errors.E(op, err))
	}
	configs, err := submodule.LoadConfigs(r.ctx, runner)
	if err != nil {
		return cmdutil.HandleError(c, errors.E(op, err))
	}

	t := table.NewWriter()
	t.SetOutputMirror(printer.FromContextOrDie(r.ctx).OutStream())
	t.AppendHeader(table.Row{"SUBMODULE", "BRANCH", "TAG GLOB", "LIGHTWEIGHT", "MANIFEST", "VERSION REGEX", "GROUPS", "URL"})
	for _, cfg := range configs {
		t.AppendRow([]interface{}{
			cfg.Path,
			cfg.Branch,
			cfg.TagGlob,
			strconv.FormatBool(cfg.IncludeLightweight),
			cfg.Manifest,
			cfg.VersionPattern.String(),
			cfg.VersionPattern.Arity(),
			cfg.URL,
		})
	}
	t.Render()
	return nil
}
