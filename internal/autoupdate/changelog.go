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

const githubURLPrefix = "https://github.com/"

// Changelog lists the commits in from..to, one "- <hash>: <subject>" line
// per commit. For submodules hosted on GitHub the hash is rendered as a
// link to the commit.
func Changelog(ctx context.Context, runner *gitutil.GitLocalRunner, url, from, to string) (string, error) {
	const op errors.Op = "autoupdate.Changelog"
	rr, err := runner.Run(ctx, "log", "--format="+logFormat(url), from+".."+to)
	if err != nil {
		return "", errors.E(op, errors.Git, fmt.Errorf("cannot list commits %s..%s: %w", from, to, err))
	}
	return strings.TrimRight(rr.Stdout, "\n"), nil
}

func logFormat(url string) string {
	if !strings.HasPrefix(url, githubURLPrefix) {
		return "- %h: %s"
	}
	// % starts a placeholder in git pretty formats
	base := strings.ReplaceAll(strings.TrimSuffix(url, ".git"), "%", "%%")
	return "- " + base + "/commit/%h: %s"
}

// CommitMessage returns the message of the commit updating the submodule at
// path from commit from to tag.
func CommitMessage(path, tag, from, to, changelog string) string {
	return fmt.Sprintf("%s: Update to %s\n\nChanges between %s and %s:\n\n%s", path, tag, from, to, changelog)
}

// BranchName returns the name of the branch the update of a submodule to tag
// is committed on.
func BranchName(shortName, tag string) string {
	return fmt.Sprintf("update/%s_%s", shortName, tag)
}
