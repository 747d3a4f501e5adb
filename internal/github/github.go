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

// Package github opens pull requests on GitHub.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/google/go-github/v63/github"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

// PullRequest describes a pull request to open.
type PullRequest struct {
	// Repo is the repository the pull request is opened in, as owner/name.
	Repo string

	// Head is the branch holding the changes.
	Head string

	// Base is the branch the changes are merged into.
	Base string

	Title string
	Body  string
}

// PullRequestOpener opens pull requests and returns their URL.
type PullRequestOpener interface {
	OpenPullRequest(ctx context.Context, pr PullRequest) (string, error)
}

// Client opens pull requests through the GitHub REST API.
type Client struct {
	gh *github.Client
}

// NewClient returns a Client authenticating with token. If apiURL is not
// empty it is used as the API endpoint of a GitHub Enterprise server.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	const op errors.Op = "github.NewClient"
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	gh := github.NewClient(httpClient)
	if apiURL != "" {
		var err error
		gh, err = gh.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, errors.E(op, errors.InvalidParam,
				fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err))
		}
	}
	return &Client{gh: gh}, nil
}

// OpenPullRequest opens pr. Maintainers of the base repository are allowed
// to push to the head branch.
func (c *Client) OpenPullRequest(ctx context.Context, pr PullRequest) (string, error) {
	const op errors.Op = "github.OpenPullRequest"
	owner, name, err := SplitRepo(pr.Repo)
	if err != nil {
		return "", errors.E(op, err)
	}

	klog.V(2).Infof("creating pull request %s -> %s in %s", pr.Head, pr.Base, pr.Repo)
	created, _, err := c.gh.PullRequests.Create(ctx, owner, name, &github.NewPullRequest{
		Title:               github.String(pr.Title),
		Head:                github.String(pr.Head),
		Base:                github.String(pr.Base),
		Body:                github.String(pr.Body),
		MaintainerCanModify: github.Bool(true),
	})
	if err != nil {
		return "", errors.E(op, errors.Remote,
			fmt.Errorf("cannot open pull request in %s: %w", pr.Repo, err))
	}
	return created.GetHTMLURL(), nil
}

// SplitRepo splits an "owner/name" repository reference.
func SplitRepo(repo string) (string, string, error) {
	owner, name, found := strings.Cut(repo, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", errors.E(errors.InvalidParam,
			fmt.Errorf("repository %q must be in the form owner/name", repo))
	}
	return owner, name, nil
}
