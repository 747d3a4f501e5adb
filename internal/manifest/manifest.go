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

// Package manifest rewrites the version line of component manifests such
// as idf_component.yml.
//
// Patching is line based: the file doesn't have to be valid YAML and all
// bytes outside of the version value are preserved.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/version"
	"gopkg.in/yaml.v3"
)

// versionLineRegex matches a manifest line (without its terminator) of the
// form `version: "x.y.z"`, optionally followed by a comment.
var versionLineRegex = regexp.MustCompile(`^(version\s*:\s*)"[^"]+"([ \t]*(?:#.*)?)$`)

// PatchVersionLine returns contents with the value of its only version line
// replaced by v.
func PatchVersionLine(contents []byte, v version.SemanticVersion) ([]byte, error) {
	const op errors.Op = "manifest.PatchVersionLine"

	lines := splitLines(contents)
	found := -1
	for i, l := range lines {
		if !versionLineRegex.Match(l.text) {
			continue
		}
		if found >= 0 {
			return nil, errors.E(op, errors.Manifest, fmt.Errorf(
				"lines %d and %d: %w", found+1, i+1, errors.ErrDuplicateVersionLine))
		}
		found = i
	}
	if found < 0 {
		return nil, errors.E(op, errors.Manifest, fmt.Errorf(
			`no 'version: "x.y.z"' line: %w`, errors.ErrNoVersionLine))
	}

	l := &lines[found]
	l.text = versionLineRegex.ReplaceAll(l.text, []byte(`${1}"`+v.String()+`"${2}`))
	if len(l.eol) == 0 {
		l.eol = []byte("\n")
	}

	out := make([]byte, 0, len(contents)+len(v.String()))
	for _, l := range lines {
		out = append(out, l.text...)
		out = append(out, l.eol...)
	}
	return out, nil
}

// UpdateFile patches the version line of the manifest at path in place.
func UpdateFile(path string, v version.SemanticVersion) error {
	const op errors.Op = "manifest.UpdateFile"
	info, err := os.Stat(path)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}
	patched, err := PatchVersionLine(b, v)
	if err != nil {
		return errors.E(op, fmt.Errorf("%s: %w", path, err))
	}
	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return errors.E(op, errors.IO, err)
	}
	return nil
}

// ReadVersion returns the top-level version value of a YAML manifest. The
// second return value is false if the manifest can't be parsed as YAML or
// has no version.
func ReadVersion(contents []byte) (string, bool) {
	var m struct {
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return "", false
	}
	return m.Version, m.Version != ""
}

type line struct {
	text []byte
	eol  []byte
}

// splitLines splits b into lines, keeping "\n" or "\r\n" terminators apart
// from the text. The last line has no terminator if b doesn't end with one.
func splitLines(b []byte) []line {
	var lines []line
	for len(b) > 0 {
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			lines = append(lines, line{text: b})
			break
		}
		text, eol := b[:i], b[i:i+1]
		if len(text) > 0 && text[len(text)-1] == '\r' {
			text, eol = b[:i-1], b[i-1:i+1]
		}
		lines = append(lines, line{text: text, eol: eol})
		b = b[i+1:]
	}
	return lines
}
