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

// Package submoduledocs holds the help text of the submodule commands.
package submoduledocs

var SubmoduleShort = `Keep git submodules on the latest release of their upstream`
var SubmoduleLong = `
The submodule command group reads the auto-update policy of each submodule
from .gitmodules and moves submodules to the latest tag of the branch they
track.

A submodule takes part when its section in .gitmodules sets:

  autoupdate = true
  autoupdate-branch = BRANCH

and optionally:

  autoupdate-tag-glob = GLOB              # only consider tags matching GLOB
  autoupdate-include-lightweight = true   # also consider lightweight tags
  autoupdate-manifest = PATH              # manifest whose version line follows the tag
  autoupdate-ver-regex = REGEX            # extracts the version from the tag name
`

var UpdateShort = `Update submodules to the latest tag of their tracked branch`
var UpdateLong = `
  ghactions submodule update [flags]

For every submodule with auto-update enabled, update fetches the tracked
branch and its tags, finds the closest tag on the branch and, if the
submodule is behind it, commits the new submodule pointer (and manifest
version) on a branch named update/<name>_<tag>. The branch can be pushed
and a GitHub pull request opened for it.

The repository is put back on its original branch after each submodule.

Flags:

  --repo:
    Path of the git repository. Defaults to the current directory.

  --dry-run, -n:
    Only report what would be updated.

  --allow-dirty:
    Don't fail if the repository has uncommitted changes.

  --push-to-remote:
    Remote the update branches are force pushed to. Defaults to "origin".
    Set to "" to disable pushing.

  --open-github-pr-in:
    GitHub repository (owner/name) to open pull requests in. The token is
    read from the GITHUB_TOKEN environment variable.

  --pr-base:
    Base branch of the pull requests. Defaults to "master".

  --github-api-url:
    API endpoint of a GitHub Enterprise server.

  --env-file:
    File with KEY=VALUE lines loaded into the environment first.

  --keep-going:
    Continue with the next submodule when one fails.
`
var UpdateExamples = `
  # check for updates without changing anything
  $ ghactions submodule update --dry-run

  # commit updates locally, without pushing
  $ ghactions submodule update --push-to-remote ""

  # push update branches and open pull requests
  $ GITHUB_TOKEN=... ghactions submodule update --open-github-pr-in espressif/esp-idf
`

var ListShort = `List the auto-update policy of the submodules`
var ListLong = `
  ghactions submodule list [flags]

Flags:

  --repo:
    Path of the git repository. Defaults to the current directory.
`
var ListExamples = `
  $ ghactions submodule list --repo ~/esp/esp-idf
`
