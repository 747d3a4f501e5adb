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

package resolver

import (
	"fmt"
	"strings"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/gitutil"
)

//nolint:gochecknoinits
func init() {
	AddErrorResolver(&gitExecErrorResolver{})
}

const (
	genericGitExecError = `
Error: Failed to execute git command {{ printf "%q" .gitcmd }}
{{- if gt (len .dir) 0 }} in {{ printf "%q" .dir }}{{ end }}
{{- if gt (len .ref) 0 }} for reference {{ printf "%q" .ref }}{{ end }}.
{{- template "ExecOutputDetails" . }}
`

	unknownRefGitExecError = `
Error: Unknown ref {{ printf "%q" .ref }}. Please verify that the reference exists.
{{- template "ExecOutputDetails" . }}
`

	gitNotFoundError = `
Error: No git executable found. git must be installed and available in the path.
`

	authRequiredGitExecError = `
Error: The remote requires authentication. Please configure git credentials for it.
{{- template "ExecOutputDetails" . }}
`

	unavailableGitExecError = `
Error: Unable to access the remote repository.
{{- template "ExecOutputDetails" . }}
`

	notFoundGitExecError = `
Error: Remote repository not found.
{{- template "ExecOutputDetails" . }}
`
)

// gitExecErrorResolver is an implementation of the ErrorResolver interface
// that can produce error messages for errors of the gitutil.GitExecError type.
type gitExecErrorResolver struct{}

func (*gitExecErrorResolver) Resolve(err error) (ResolvedResult, bool) {
	var gitExecErr *gitutil.GitExecError
	if !errors.As(err, &gitExecErr) {
		return ResolvedResult{}, false
	}
	// Conditions with a dedicated resolver take precedence.
	if errors.Is(err, errors.ErrNoMatchingTag) {
		return ResolvedResult{}, false
	}

	fullCommand := strings.TrimSpace(fmt.Sprintf("git %s %s", gitExecErr.Command,
		strings.Join(gitExecErr.Args, " ")))
	tmplArgs := map[string]interface{}{
		"gitcmd": fullCommand,
		"dir":    gitExecErr.Repo,
		"ref":    gitExecErr.Ref,
		"stdout": gitExecErr.StdOut,
		"stderr": gitExecErr.StdErr,
	}

	var tmpl string
	switch gitExecErr.Type {
	case gitutil.UnknownReference:
		tmpl = unknownRefGitExecError
	case gitutil.GitExecutableNotFound:
		tmpl = gitNotFoundError
	case gitutil.HTTPSAuthRequired:
		tmpl = authRequiredGitExecError
	case gitutil.RepositoryUnavailable:
		tmpl = unavailableGitExecError
	case gitutil.RepositoryNotFound:
		tmpl = notFoundGitExecError
	default:
		tmpl = genericGitExecError
	}
	return ResolvedResult{
		Message:  withSubmodule(err, ExecuteTemplate(tmpl, tmplArgs)),
		ExitCode: 1,
	}, true
}

// withSubmodule prefixes msg with the submodule err is about, if any.
func withSubmodule(err error, msg string) string {
	var e *errors.Error
	for cur := err; errors.As(cur, &e); cur = e.Err {
		if !e.Submodule.Empty() {
			return fmt.Sprintf("Submodule %q: %s", e.Submodule.String(), msg)
		}
	}
	return msg
}
