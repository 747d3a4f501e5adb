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

// Package cmdsubmodule contains the submodule commands.
package cmdsubmodule

import (
	"context"
	"fmt"
	"os"

	"github.com/espressif/github-actions/internal/autoupdate"
	docs "github.com/espressif/github-actions/internal/docs/submoduledocs"
	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/github"
	"github.com/espressif/github-actions/internal/gitutil"
	"github.com/espressif/github-actions/internal/printer"
	"github.com/espressif/github-actions/internal/submodule"
	"github.com/espressif/github-actions/internal/util/cmdutil"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// GitHubTokenEnv is the environment variable the GitHub token is read from.
const GitHubTokenEnv = "GITHUB_TOKEN"

// NewUpdateRunner returns a command runner.
func NewUpdateRunner(ctx context.Context, parent string) *UpdateRunner {
	r := &UpdateRunner{
		ctx:       ctx,
		newOpener: newGitHubOpener,
	}
	c := &cobra.Command{
		Use:     "update [flags]",
		Short:   docs.UpdateShort,
		Long:    docs.UpdateShort + "\n" + docs.UpdateLong,
		Example: docs.UpdateExamples,
		Args:    cobra.NoArgs,
		PreRunE: r.preRunE,
		RunE:    r.runE,
	}

	c.Flags().StringVar(&r.repo, "repo", "",
		"path of the git repository. defaults to the current directory.")
	c.Flags().BoolVarP(&r.Options.DryRun, "dry-run", "n", false,
		"only check, don't perform any updates.")
	c.Flags().BoolVar(&r.allowDirty, "allow-dirty", false,
		"don't fail if the repository has uncommitted changes.")
	c.Flags().StringVar(&r.Options.PushRemote, "push-to-remote", "origin",
		"name of the remote to push update branches to. empty disables pushing.")
	c.Flags().StringVar(&r.Options.PullRequestRepo, "open-github-pr-in", "",
		"GitHub repository (owner/name) to open pull requests in.")
	c.Flags().StringVar(&r.Options.PullRequestBase, "pr-base", autoupdate.DefaultPullRequestBase,
		"base branch of the pull requests.")
	c.Flags().StringVar(&r.apiURL, "github-api-url", "",
		"API endpoint of a GitHub Enterprise server.")
	c.Flags().StringVar(&r.envFile, "env-file", "",
		"file with KEY=VALUE lines to load into the environment.")
	c.Flags().BoolVar(&r.Options.KeepGoing, "keep-going", false,
		"continue with the next submodule when one fails.")
	cmdutil.FixDocs("ghactions", parent, c)
	r.Command = c
	return r
}

func NewUpdateCommand(ctx context.Context, parent string) *cobra.Command {
	return NewUpdateRunner(ctx, parent).Command
}

// UpdateRunner contains the run function.
type UpdateRunner struct {
	ctx        context.Context
	Command    *cobra.Command
	Options    autoupdate.Options
	repo       string
	allowDirty bool
	apiURL     string
	envFile    string

	newOpener func(ctx context.Context, token, apiURL string) (github.PullRequestOpener, error)

	runner *gitutil.GitLocalRunner
	opener github.PullRequestOpener
}

func newGitHubOpener(ctx context.Context, token, apiURL string) (github.PullRequestOpener, error) {
	return github.NewClient(ctx, token, apiURL)
}

func (r *UpdateRunner) preRunE(_ *cobra.Command, _ []string) error {
	const op errors.Op = "cmdsubmodule.update.preRunE"
	if r.envFile != "" {
		if err := godotenv.Load(r.envFile); err != nil {
			return errors.E(op, errors.IO, fmt.Errorf("cannot load env file %q: %w", r.envFile, err))
		}
	}

	runner, err := openRepo(r.ctx, r.repo)
	if err != nil {
		return errors.E(op, err)
	}
	r.runner = runner

	if r.Options.PullRequestRepo == "" {
		return nil
	}
	if r.Options.PushRemote == "" {
		return errors.E(op, errors.InvalidParam,
			fmt.Errorf("--open-github-pr-in requires --push-to-remote"))
	}
	if _, _, err := github.SplitRepo(r.Options.PullRequestRepo); err != nil {
		return errors.E(op, err)
	}
	token := os.Getenv(GitHubTokenEnv)
	if token == "" {
		return errors.E(op, errors.MissingParam,
			fmt.Errorf("%s environment variable must be set to open pull requests", GitHubTokenEnv))
	}
	r.opener, err = r.newOpener(r.ctx, token, r.apiURL)
	if err != nil {
		return errors.E(op, err)
	}
	return nil
}

func (r *UpdateRunner) runE(c *cobra.Command, _ []string) error {
	const op errors.Op = "cmdsubmodule.update.runE"
	pr := printer.FromContextOrDie(r.ctx)

	configs, err := submodule.LoadConfigs(r.ctx, r.runner)
	if err != nil {
		return errors.E(op, err)
	}

	if !r.allowDirty {
		dirty, err := r.runner.IsDirty(r.ctx)
		if err != nil {
			return errors.E(op, err)
		}
		if dirty {
			return errors.E(op, errors.Precondition,
				fmt.Errorf("repository at %s: %w", r.runner.Dir, errors.ErrDirtyRepo))
		}
	}

	if len(configs) == 0 {
		pr.Printf("no submodule has autoupdate enabled\n")
		return nil
	}

	results, err := autoupdate.NewUpdater(r.runner, r.Options, r.opener).Run(r.ctx, configs)
	if len(results) > 0 {
		autoupdate.PrintSummary(pr.OutStream(), results)
	}
	if err != nil {
		return cmdutil.HandleError(c, errors.E(op, err))
	}
	return nil
}
