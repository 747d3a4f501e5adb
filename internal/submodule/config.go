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

// Package submodule loads the auto-update policy of the submodules of a
// repository from its .gitmodules file.
package submodule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/gitutil"
	"github.com/espressif/github-actions/internal/printer"
	"github.com/espressif/github-actions/internal/types"
	"github.com/espressif/github-actions/internal/version"
)

// GitmodulesFile is the name of the file holding submodule metadata.
const GitmodulesFile = ".gitmodules"

// Keys read from each submodule section of .gitmodules.
const (
	KeyPath               = "path"
	KeyURL                = "url"
	KeyAutoupdate         = "autoupdate"
	KeyBranch             = "autoupdate-branch"
	KeyTagGlob            = "autoupdate-tag-glob"
	KeyIncludeLightweight = "autoupdate-include-lightweight"
	KeyManifest           = "autoupdate-manifest"
	KeyVersionRegex       = "autoupdate-ver-regex"
)

// Config is the auto-update policy of one submodule.
type Config struct {
	// Name is the name of the submodule section in .gitmodules.
	Name string

	// Path is the location of the submodule in the repository.
	Path types.SubmodulePath

	// URL is the remote the submodule is cloned from.
	URL string

	// Branch is the remote branch whose tags are tracked.
	Branch string

	// TagGlob restricts the tags considered. Empty means all tags.
	TagGlob string

	// IncludeLightweight makes lightweight tags eligible.
	IncludeLightweight bool

	// Manifest is the path, relative to the repository root, of a manifest
	// whose version line follows the submodule tag. Empty if not set.
	Manifest string

	// VersionPattern extracts the version written to Manifest from the tag.
	VersionPattern *version.Pattern
}

// ShortName returns the last element of the submodule path.
func (c Config) ShortName() string {
	return c.Path.Base()
}

// section holds the raw keys of one submodule section.
type section struct {
	name string
	keys map[string]string
}

// LoadConfigs reads .gitmodules in the repository of runner and returns the
// policy of every submodule with auto-update enabled, in file order.
func LoadConfigs(ctx context.Context, runner *gitutil.GitLocalRunner) ([]Config, error) {
	const op errors.Op = "submodule.LoadConfigs"
	pr := printer.FromContextOrDie(ctx)

	if _, err := os.Stat(filepath.Join(runner.Dir, GitmodulesFile)); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.E(op, errors.IO, err)
	}

	rr, err := runner.Run(ctx, "config", "--file", GitmodulesFile, "--null", "--list")
	if err != nil {
		return nil, errors.E(op, errors.Config, err)
	}

	var configs []Config
	for _, s := range parseSections(rr.Stdout) {
		cfg, enabled, err := s.toConfig()
		if err != nil {
			return nil, errors.E(op, types.SubmodulePath(s.displayName()), err)
		}
		if !enabled {
			pr.Printf("Skipping submodule %s, autoupdate not enabled\n", s.displayName())
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// parseSections parses the output of `git config --null --list` and groups
// the submodule keys by section, in the order sections first appear.
func parseSections(out string) []*section {
	var sections []*section
	byName := make(map[string]*section)
	for _, entry := range strings.Split(out, "\x00") {
		if entry == "" {
			continue
		}
		key, value, hasValue := strings.Cut(entry, "\n")
		if !hasValue {
			// a key without "=" is an implicit true
			value = "true"
		}
		if !strings.HasPrefix(key, "submodule.") {
			continue
		}
		rest := strings.TrimPrefix(key, "submodule.")
		i := strings.LastIndex(rest, ".")
		if i <= 0 {
			continue
		}
		name, variable := rest[:i], rest[i+1:]
		s, found := byName[name]
		if !found {
			s = &section{name: name, keys: make(map[string]string)}
			byName[name] = s
			sections = append(sections, s)
		}
		s.keys[variable] = value
	}
	return sections
}

func (s *section) displayName() string {
	if p := s.keys[KeyPath]; p != "" {
		return p
	}
	return s.name
}

// toConfig validates the section. The second return value is false if
// auto-update is not enabled for the submodule; no other key is validated
// in that case.
func (s *section) toConfig() (Config, bool, error) {
	const op errors.Op = "submodule.toConfig"
	var violations errors.Violations

	enabled, v := parseBool(s.keys, KeyAutoupdate, false)
	if v != nil {
		violations = append(violations, *v)
	}
	if !enabled && len(violations) == 0 {
		return Config{}, false, nil
	}

	cfg := Config{
		Name:     s.name,
		Path:     types.SubmodulePath(s.keys[KeyPath]),
		URL:      s.keys[KeyURL],
		Branch:   s.keys[KeyBranch],
		TagGlob:  s.keys[KeyTagGlob],
		Manifest: s.keys[KeyManifest],
	}
	for _, k := range []string{KeyPath, KeyURL, KeyBranch} {
		if strings.TrimSpace(s.keys[k]) == "" {
			violations = append(violations, errors.Violation{Field: k, Type: errors.Missing})
		}
	}

	cfg.IncludeLightweight, v = parseBool(s.keys, KeyIncludeLightweight, false)
	if v != nil {
		violations = append(violations, *v)
	}

	if reason := checkTagGlob(cfg.TagGlob); reason != "" {
		violations = append(violations, errors.Violation{
			Field:  KeyTagGlob,
			Value:  cfg.TagGlob,
			Type:   errors.Invalid,
			Reason: reason,
		})
	}

	if filepath.IsAbs(cfg.Manifest) || strings.HasPrefix(filepath.Clean(cfg.Manifest), "..") {
		violations = append(violations, errors.Violation{
			Field:  KeyManifest,
			Value:  cfg.Manifest,
			Type:   errors.Invalid,
			Reason: "must be a path inside the repository",
		})
	}

	cfg.VersionPattern = version.Default
	if expr, found := s.keys[KeyVersionRegex]; found && expr != "" {
		p, err := version.Compile(expr)
		if err != nil {
			violations = append(violations, errors.Violation{
				Field:  KeyVersionRegex,
				Value:  expr,
				Type:   errors.Invalid,
				Reason: err.Error(),
			})
		} else {
			cfg.VersionPattern = p
		}
	}

	if len(violations) > 0 {
		return Config{}, false, errors.E(op, errors.Config, fmt.Errorf("%w: %s",
			&errors.ValidationError{Violations: violations}, describe(violations)))
	}
	return cfg, true, nil
}

// checkTagGlob returns why glob can't be passed to `git describe --match`,
// or "" if it can. git's wildmatch has no brace alternation.
func checkTagGlob(glob string) string {
	if glob == "" {
		return ""
	}
	if strings.ContainsAny(glob, "{}") {
		return "brace alternation is not supported by git describe --match"
	}
	if !doublestar.ValidatePattern(glob) {
		return "not a valid glob pattern"
	}
	return ""
}

func describe(violations errors.Violations) string {
	var parts []string
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}

// parseBool reads a boolean key. Only "true" and "false" are accepted.
func parseBool(keys map[string]string, key string, def bool) (bool, *errors.Violation) {
	raw, found := keys[key]
	if !found {
		return def, nil
	}
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return def, &errors.Violation{
		Field:  key,
		Value:  raw,
		Type:   errors.Invalid,
		Reason: "must be true or false",
	}
}
