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

	"github.com/espressif/github-actions/internal/gitutil"
	"k8s.io/klog/v2"
)

// NeedsUpdate reports whether a submodule checked out at current has to be
// moved to tag. It returns false if current is the tag commit or one of its
// descendants. If git can't tell, NeedsUpdate logs a warning and returns
// false so that a submodule is never moved in an unexpected direction.
func NeedsUpdate(ctx context.Context, runner *gitutil.GitLocalRunner, current string, tag RemoteTag) bool {
	if tag.Commit == current {
		return false
	}
	_, err := runner.Run(ctx, "merge-base", "--is-ancestor", tag.Commit, current)
	if err == nil {
		return false
	}
	if gitutil.ExitCode(err) == 1 {
		return true
	}
	klog.Warningf("cannot compare %s with tag %s (%s), assuming no update is needed: %v",
		current, tag.Name, tag.Commit, err)
	return false
}
