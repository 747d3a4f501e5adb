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
	"github.com/espressif/github-actions/internal/errors"
)

//nolint:gochecknoinits
func init() {
	AddErrorResolver(&validationErrorResolver{})
	AddErrorResolver(&conditionErrorResolver{})
}

const (
	validationError = `
Error: Invalid auto-update configuration in .gitmodules:
{{- template "Violations" . }}
`

	noMatchingTagError = `
Error: No tag on the tracked branch matches the configured glob and tag type.
Check autoupdate-branch, autoupdate-tag-glob and autoupdate-include-lightweight.

Details:
{{ .err }}
`

	versionFormatError = `
Error: The tag name doesn't yield a version. Check autoupdate-ver-regex.

Details:
{{ .err }}
`

	manifestError = `
Error: The manifest needs exactly one 'version: "x.y.z"' line.

Details:
{{ .err }}
`

	dirtyRepoError = `
Error: The repository has uncommitted changes. Commit or stash them, or pass --allow-dirty.
`
)

// validationErrorResolver lists the violations of an invalid .gitmodules
// section.
type validationErrorResolver struct{}

func (*validationErrorResolver) Resolve(err error) (ResolvedResult, bool) {
	var validationErr *errors.ValidationError
	if !errors.As(err, &validationErr) {
		return ResolvedResult{}, false
	}
	msg := ExecuteTemplate(validationError, map[string]interface{}{
		"violations": validationErr.Violations,
	})
	return ResolvedResult{
		Message:  withSubmodule(err, msg),
		ExitCode: 1,
	}, true
}

// conditionErrorResolver explains the conditions reported by the update
// engine.
type conditionErrorResolver struct{}

func (*conditionErrorResolver) Resolve(err error) (ResolvedResult, bool) {
	var tmpl string
	switch {
	case errors.Is(err, errors.ErrNoMatchingTag):
		tmpl = noMatchingTagError
	case errors.Is(err, errors.ErrInvalidVersionFormat):
		tmpl = versionFormatError
	case errors.Is(err, errors.ErrNoVersionLine), errors.Is(err, errors.ErrDuplicateVersionLine):
		tmpl = manifestError
	case errors.Is(err, errors.ErrDirtyRepo):
		tmpl = dirtyRepoError
	default:
		return ResolvedResult{}, false
	}
	msg := ExecuteTemplate(tmpl, map[string]interface{}{
		"err": innermost(err).Error(),
	})
	return ResolvedResult{
		Message:  withSubmodule(err, msg),
		ExitCode: 1,
	}, true
}

// innermost returns the error wrapped by the deepest *errors.Error in the
// chain of err.
func innermost(err error) error {
	var e *errors.Error
	for errors.As(err, &e) && e.Err != nil {
		err = e.Err
	}
	return err
}
