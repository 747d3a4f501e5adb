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

package autoupdate

import (
	"context"
	"fmt"
	"strings"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/gitutil"
)

// Remote is the name of the remote submodules fetch tags from.
const Remote = "origin"

// RemoteTag is a tag together with the commit it points to.
type RemoteTag struct {
	Name   string
	Commit string
}

// Fetch fetches branch and all tags of the remote into the submodule
// repository of runner.
func Fetch(ctx context.Context, runner *gitutil.GitLocalRunner, branch string) error {
	const op errors.Op = "autoupdate.Fetch"
	if _, err := runner.Run(ctx, "fetch", "--quiet", "--tags", Remote, branch); err != nil {
		return errors.E(op, errors.Git, fmt.Errorf("cannot fetch branch %q: %w", branch, err))
	}
	return nil
}

// FindLatestTag returns the tag closest to the tip of the remote-tracking
// branch. Only tags matching glob are considered when glob is not empty, and
// lightweight tags are only considered if includeLightweight is true.
// The error wraps errors.ErrNoMatchingTag if no tag qualifies.
func FindLatestTag(ctx context.Context, runner *gitutil.GitLocalRunner,
	branch, glob string, includeLightweight bool) (RemoteTag, error) {
	const op errors.Op = "autoupdate.FindLatestTag"

	args := []string{"--abbrev=0"}
	if glob != "" {
		args = append(args, "--match", glob)
	}
	if includeLightweight {
		args = append(args, "--tags")
	}
	args = append(args, Remote+"/"+branch)

	rr, err := runner.Run(ctx, "describe", args...)
	if err != nil {
		if gitutil.IsType(err, gitutil.NoTagFound) {
			return RemoteTag{}, errors.E(op, errors.Git, fmt.Errorf(
				"branch %q, glob %q: %w", branch, glob, errors.ErrNoMatchingTag))
		}
		return RemoteTag{}, errors.E(op, errors.Git, fmt.Errorf(
			"git describe %s: %w", strings.Join(args, " "), err))
	}
	name := strings.TrimSpace(rr.Stdout)

	rr, err = runner.Run(ctx, "rev-list", "-n", "1", "refs/tags/"+name)
	if err != nil {
		return RemoteTag{}, errors.E(op, errors.Git, fmt.Errorf("cannot resolve tag %q: %w", name, err))
	}
	return RemoteTag{
		Name:   name,
		Commit: strings.TrimSpace(rr.Stdout),
	}, nil
}
