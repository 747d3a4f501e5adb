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

// Package autoupdate moves submodules to the latest tag of the branch they
// track and commits the result on a dedicated branch.
package autoupdate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/github"
	"github.com/espressif/github-actions/internal/gitutil"
	"github.com/espressif/github-actions/internal/manifest"
	"github.com/espressif/github-actions/internal/printer"
	"github.com/espressif/github-actions/internal/submodule"
	"github.com/espressif/github-actions/internal/types"
	stringsutil "github.com/espressif/github-actions/internal/util/strings"
	"k8s.io/klog/v2"
)

// DefaultPullRequestBase is the branch pull requests target by default.
const DefaultPullRequestBase = "master"

// Options control what the Updater does with an update once it is
// committed.
type Options struct {
	// DryRun only reports the updates that would be made.
	DryRun bool

	// PushRemote is the remote update branches are force pushed to. Empty
	// disables pushing.
	PushRemote string

	// PullRequestRepo is the owner/name of the GitHub repository pull
	// requests are opened in. Empty disables pull requests. Requires
	// PushRemote.
	PullRequestRepo string

	// PullRequestBase is the base branch of pull requests.
	PullRequestBase string

	// KeepGoing makes the Updater continue with the next submodule when one
	// fails. The errors are returned together at the end.
	KeepGoing bool
}

// Action is the outcome of processing one submodule.
type Action string

const (
	ActionUpToDate    Action = "up-to-date"
	ActionAhead       Action = "ahead"
	ActionWouldUpdate Action = "would-update"
	ActionUpdated     Action = "updated"
	ActionFailed      Action = "failed"
)

// Result describes what happened to one submodule.
type Result struct {
	Path types.SubmodulePath

	// Branch is the tracked remote branch.
	Branch string

	// OldCommit is the commit the submodule was at.
	OldCommit string

	// Tag and NewCommit are the latest tag on Branch and its commit.
	Tag       string
	NewCommit string

	Action Action

	// UpdateBranch is the branch the update was (or would be) committed on.
	UpdateBranch string

	// PullRequestURL is set when a pull request was opened.
	PullRequestURL string

	// Err is set when Action is ActionFailed.
	Err error
}

// Updater updates the submodules of one repository.
type Updater struct {
	// Runner runs git in the parent repository.
	Runner *gitutil.GitLocalRunner

	Options Options

	// PullRequests opens pull requests. Required if Options.PullRequestRepo
	// is set.
	PullRequests github.PullRequestOpener
}

// NewUpdater returns an Updater for the repository of runner.
func NewUpdater(runner *gitutil.GitLocalRunner, opts Options, prs github.PullRequestOpener) *Updater {
	if opts.PullRequestBase == "" {
		opts.PullRequestBase = DefaultPullRequestBase
	}
	return &Updater{
		Runner:       runner,
		Options:      opts,
		PullRequests: prs,
	}
}

// Run processes configs one after the other. The parent repository is put
// back on its original branch after each submodule.
//
// Unless Options.KeepGoing is set, Run stops at the first failing submodule.
// The returned results cover every submodule processed so far.
func (u *Updater) Run(ctx context.Context, configs []submodule.Config) ([]Result, error) {
	const op errors.Op = "autoupdate.Run"
	if err := u.validate(); err != nil {
		return nil, errors.E(op, err)
	}
	pr := printer.FromContextOrDie(ctx)

	var results []Result
	var errs []error
	for _, cfg := range configs {
		res, err := u.updateOne(ctx, cfg)
		if err != nil {
			err = errors.E(op, cfg.Path, err)
			res.Action = ActionFailed
			res.Err = err
		}
		results = append(results, res)
		if err == nil {
			continue
		}
		if !u.Options.KeepGoing {
			return results, err
		}
		pr.OptPrintf(printer.NewOpt().Sub(cfg.Path).Stderr(), "update failed: %v\n", err)
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}

func (u *Updater) validate() error {
	if u.Options.PullRequestRepo == "" {
		return nil
	}
	if u.Options.PushRemote == "" {
		return errors.E(errors.InvalidParam,
			fmt.Errorf("opening a pull request in %s requires a push remote", u.Options.PullRequestRepo))
	}
	if u.PullRequests == nil {
		return errors.E(errors.MissingParam,
			fmt.Errorf("no pull request client configured for %s", u.Options.PullRequestRepo))
	}
	return nil
}

func (u *Updater) updateOne(ctx context.Context, cfg submodule.Config) (_ Result, err error) {
	const op errors.Op = "autoupdate.updateOne"
	pr := printer.FromContextOrDie(ctx)
	opt := printer.NewOpt().Sub(cfg.Path)
	path := cfg.Path.String()
	res := Result{
		Path:   cfg.Path,
		Branch: cfg.Branch,
	}

	scope, err := enterScope(ctx, u.Runner)
	if err != nil {
		return res, errors.E(op, err)
	}
	defer func() {
		if rerr := scope.restore(ctx); rerr != nil {
			err = errors.Join(err, errors.E(op, rerr))
		}
	}()

	pr.OptPrintf(opt, "checking for updates\n")
	if cfg.Manifest != "" {
		if _, err := os.Stat(filepath.Join(u.Runner.Dir, cfg.Manifest)); err != nil {
			return res, errors.E(op, errors.Config,
				fmt.Errorf("%s %q: %w", submodule.KeyManifest, cfg.Manifest, err))
		}
	}
	if err := u.ensureInitialized(ctx, path); err != nil {
		return res, errors.E(op, err)
	}
	sub := u.Runner.In(path)

	rr, err := u.Runner.Run(ctx, "rev-parse", "HEAD:"+path)
	if err != nil {
		return res, errors.E(op, errors.Git, fmt.Errorf("cannot read the recorded commit: %w", err))
	}
	recorded := strings.TrimSpace(rr.Stdout)
	current, err := sub.RevParse(ctx, "HEAD")
	if err != nil {
		return res, errors.E(op, errors.Git, err)
	}
	res.OldCommit = current
	pr.OptPrintf(opt, "currently at %s (%s)\n", describe(ctx, sub, current), current)

	if err := Fetch(ctx, sub, cfg.Branch); err != nil {
		return res, errors.E(op, err)
	}
	tag, err := FindLatestTag(ctx, sub, cfg.Branch, cfg.TagGlob, cfg.IncludeLightweight)
	if err != nil {
		return res, errors.E(op, err)
	}
	res.Tag, res.NewCommit = tag.Name, tag.Commit
	pr.OptPrintf(opt, "latest tag on %s: %s (%s)\n", cfg.Branch, tag.Name, tag.Commit)

	if tag.Commit == recorded || tag.Commit == current {
		pr.OptPrintf(opt, "already at the latest tag, nothing to do\n")
		res.Action = ActionUpToDate
		return res, nil
	}
	if !NeedsUpdate(ctx, sub, current, tag) {
		pr.OptPrintf(opt, "latest tag is behind the current commit, nothing to do\n")
		res.Action = ActionAhead
		return res, nil
	}

	changelog, err := Changelog(ctx, sub, cfg.URL, current, tag.Commit)
	if err != nil {
		return res, errors.E(op, err)
	}
	msg := CommitMessage(path, tag.Name, current, tag.Commit, changelog)
	res.UpdateBranch = BranchName(cfg.ShortName(), tag.Name)

	if u.Options.DryRun {
		pr.OptPrintf(opt, "would update to %s on branch %s\n", tag.Name, res.UpdateBranch)
		pr.OptPrintf(opt, "commit message:\n")
		pr.OptPrintf(printer.NewOpt().Indent(2), "%s\n", msg)
		res.Action = ActionWouldUpdate
		return res, nil
	}

	pr.OptPrintf(opt, "updating to %s\n", tag.Name)
	if _, err := sub.Run(ctx, "checkout", "--quiet", tag.Commit); err != nil {
		return res, errors.E(op, errors.Git, err)
	}
	if err := scope.stage(ctx, path); err != nil {
		return res, errors.E(op, err)
	}

	if cfg.Manifest != "" {
		if err := u.updateManifest(ctx, scope, cfg, tag); err != nil {
			return res, errors.E(op, err)
		}
	}

	pr.OptPrintf(opt, "creating branch %s\n", res.UpdateBranch)
	if _, err := u.Runner.Run(ctx, "checkout", "--quiet", "-B", res.UpdateBranch); err != nil {
		return res, errors.E(op, errors.Git, err)
	}
	if _, err := u.Runner.Run(ctx, "commit", "--quiet", "-m", msg); err != nil {
		return res, errors.E(op, errors.Git, err)
	}
	scope.committed = true
	res.Action = ActionUpdated
	klog.V(2).Infof("committed update of %s to %s on %s", path, tag.Name, res.UpdateBranch)

	if u.Options.PushRemote == "" {
		return res, nil
	}
	pr.OptPrintf(opt, "pushing %s to %s\n", res.UpdateBranch, u.Options.PushRemote)
	refspec := res.UpdateBranch + ":" + res.UpdateBranch
	if _, err := u.Runner.RunVerbose(ctx, "push", "--force", u.Options.PushRemote, refspec); err != nil {
		return res, errors.E(op, errors.Remote, err)
	}

	if u.Options.PullRequestRepo == "" {
		return res, nil
	}
	title, body := stringsutil.SplitFirstLine(msg)
	pr.OptPrintf(opt, "opening a pull request in %s: %q\n", u.Options.PullRequestRepo, title)
	url, err := u.PullRequests.OpenPullRequest(ctx, github.PullRequest{
		Repo:  u.Options.PullRequestRepo,
		Head:  res.UpdateBranch,
		Base:  u.Options.PullRequestBase,
		Title: title,
		Body:  body,
	})
	if err != nil {
		return res, errors.E(op, errors.Remote, err)
	}
	res.PullRequestURL = url
	pr.OptPrintf(opt, "opened %s\n", url)
	return res, nil
}

// ensureInitialized checks out the submodule at path if it isn't yet.
func (u *Updater) ensureInitialized(ctx context.Context, path string) error {
	const op errors.Op = "autoupdate.ensureInitialized"
	if _, err := os.Stat(filepath.Join(u.Runner.Dir, path, ".git")); err == nil {
		return nil
	}
	klog.V(2).Infof("initializing submodule %s", path)
	if _, err := u.Runner.Run(ctx, "submodule", "update", "--init", "--", path); err != nil {
		return errors.E(op, errors.Git, fmt.Errorf("cannot initialize submodule: %w", err))
	}
	return nil
}

// updateManifest writes the version of tag to the manifest of cfg and
// stages it.
func (u *Updater) updateManifest(ctx context.Context, scope *restoreScope, cfg submodule.Config, tag RemoteTag) error {
	const op errors.Op = "autoupdate.updateManifest"
	pr := printer.FromContextOrDie(ctx)

	v, err := cfg.VersionPattern.Extract(tag.Name)
	if err != nil {
		return errors.E(op, err)
	}

	p := filepath.Join(u.Runner.Dir, cfg.Manifest)
	if b, err := os.ReadFile(p); err == nil {
		if cur, found := manifest.ReadVersion(b); found {
			if curVer, err := semver.NewVersion(cur); err == nil && v.Semver().LessThan(curVer) {
				pr.OptPrintf(printer.NewOpt().Sub(cfg.Path).Stderr(), "warning: %s moves from version %s back to %s\n",
					cfg.Manifest, curVer, v)
			}
		}
	}

	pr.OptPrintf(printer.NewOpt().Sub(cfg.Path), "updating version in %s to %s\n", cfg.Manifest, v)
	if err := manifest.UpdateFile(p, v); err != nil {
		return errors.E(op, err)
	}
	return scope.stage(ctx, cfg.Manifest)
}

// describe returns the name of commit relative to the closest tag, or the
// commit itself if it can't be described.
func describe(ctx context.Context, runner *gitutil.GitLocalRunner, commit string) string {
	rr, err := runner.Run(ctx, "describe", "--tags", "--abbrev=8", commit)
	if err != nil {
		return commit
	}
	return strings.TrimSpace(rr.Stdout)
}
