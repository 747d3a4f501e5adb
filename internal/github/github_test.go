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

package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPullRequest(t *testing.T) {
	var got map[string]interface{}
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v3/repos/espressif/esp-idf/pulls" {
			http.NotFound(w, r)
			return
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 7, "html_url": "https://github.example.com/espressif/esp-idf/pull/7"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	c, err := NewClient(ctx, "s3cr3t", srv.URL+"/")
	require.NoError(t, err)

	url, err := c.OpenPullRequest(ctx, PullRequest{
		Repo:  "espressif/esp-idf",
		Head:  "update/foo_v2.0",
		Base:  "master",
		Title: "components/foo: Update to v2.0",
		Body:  "Changes between a and b:",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.example.com/espressif/esp-idf/pull/7", url)
	assert.Equal(t, "Bearer s3cr3t", auth)
	assert.Equal(t, map[string]interface{}{
		"title":                 "components/foo: Update to v2.0",
		"head":                  "update/foo_v2.0",
		"base":                  "master",
		"body":                  "Changes between a and b:",
		"maintainer_can_modify": true,
	}, got)
}

func TestOpenPullRequest_apiError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Validation Failed"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	c, err := NewClient(ctx, "s3cr3t", srv.URL+"/")
	require.NoError(t, err)

	_, err = c.OpenPullRequest(ctx, PullRequest{Repo: "espressif/esp-idf", Head: "a", Base: "master"})
	require.Error(t, err)
	assert.Equal(t, errors.Remote, errors.KindOf(err))
	assert.Contains(t, err.Error(), "Validation Failed")
}

func TestSplitRepo(t *testing.T) {
	testCases := map[string]struct {
		repo  string
		owner string
		name  string
		err   bool
	}{
		"valid":         {repo: "espressif/esp-idf", owner: "espressif", name: "esp-idf"},
		"missing slash": {repo: "esp-idf", err: true},
		"empty owner":   {repo: "/esp-idf", err: true},
		"empty name":    {repo: "espressif/", err: true},
		"too many":      {repo: "a/b/c", err: true},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			owner, name, err := SplitRepo(tc.repo)
			if tc.err {
				require.Error(t, err)
				assert.Equal(t, errors.InvalidParam, errors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.name, name)
		})
	}
}
