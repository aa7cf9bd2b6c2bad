package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.BaseURL = server.URL
	return client
}

func TestListPulls(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/repos/cmckay/gitpr/pulls", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		assert.Equal(t, "token test-token", r.Header.Get("Authorization"))

		w.Write([]byte(`[
			{"number": 7, "title": "Fix fetch", "user": {"login": "alice"}},
			{"number": 9, "title": "Add rebase mode", "user": {"login": "bob"}}
		]`))
	})

	pulls, err := client.ListPulls("cmckay/gitpr")
	require.NoError(t, err)
	require.Len(t, pulls, 2)
	assert.Equal(t, 7, pulls[0].Number)
	assert.Equal(t, "Fix fetch", pulls[0].Title)
	assert.Equal(t, "bob", pulls[1].User.Login)
}

func TestGetPull(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/cmckay/gitpr/pulls/42", r.URL.Path)

		w.Write([]byte(`{
			"number": 42,
			"title": "LPS-1234 Fix login",
			"html_url": "https://github.com/cmckay/gitpr/pull/42",
			"head": {
				"ref": "LPS-1234-fix-login",
				"repo": {"private": true, "ssh_url": "git@github.com:alice/gitpr.git"}
			}
		}`))
	})

	pull, err := client.GetPull("cmckay/gitpr", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, pull.Number)
	assert.Equal(t, "LPS-1234-fix-login", pull.Head.Ref)
	require.NotNil(t, pull.Head.Repo)
	assert.True(t, pull.Head.Repo.Private)
}

func TestCreatePull(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/repos/reviewer/gitpr/pulls", r.URL.Path)

		var newPull NewPull
		require.NoError(t, json.NewDecoder(r.Body).Decode(&newPull))
		assert.Equal(t, "cmckay:LPS-1234", newPull.Head)
		assert.Equal(t, "master", newPull.Base)
		assert.Equal(t, "LPS-1234", newPull.Title)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number": 5, "html_url": "https://github.com/reviewer/gitpr/pull/5"}`))
	})

	pull, err := client.CreatePull("reviewer/gitpr", NewPull{
		Title: "LPS-1234",
		Head:  "cmckay:LPS-1234",
		Base:  "master",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, pull.Number)
	assert.Equal(t, "https://github.com/reviewer/gitpr/pull/5", pull.HTMLURL)
}

func TestClosePull(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/repos/cmckay/gitpr/pulls/3", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "closed", body["state"])

		w.Write([]byte(`{"number": 3, "state": "closed"}`))
	})

	require.NoError(t, client.ClosePull("cmckay/gitpr", 3))
}

func TestComment(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/repos/cmckay/gitpr/issues/3/comments", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Merged, thanks!", body["body"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1}`))
	})

	require.NoError(t, client.Comment("cmckay/gitpr", 3, "Merged, thanks!"))
}

func TestRepositories(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/cmckay/repos", r.URL.Path)

		w.Write([]byte(`[
			{"name": "gitpr", "full_name": "cmckay/gitpr", "open_issues_count": 4},
			{"name": "dotfiles", "full_name": "cmckay/dotfiles", "open_issues_count": 0}
		]`))
	})

	repos, err := client.Repositories("cmckay")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, 4, repos[0].OpenIssues)
	assert.Equal(t, "cmckay/dotfiles", repos[1].FullName)
}

func TestRepositoriesFollowsPagination(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/cmckay/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		switch r.URL.Query().Get("page") {
		case "1":
			var repos []Repo
			for i := 0; i < 100; i++ {
				repos = append(repos, Repo{Name: fmt.Sprintf("repo-%d", i)})
			}
			require.NoError(t, json.NewEncoder(w).Encode(repos))
		case "2":
			w.Write([]byte(`[{"name": "last"}]`))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	repos, err := client.Repositories("cmckay")
	require.NoError(t, err)
	require.Len(t, repos, 101)
	assert.Equal(t, "last", repos[100].Name)
}

func TestListPullsFollowsPagination(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			var pulls []PullRequest
			for i := 1; i <= 100; i++ {
				pulls = append(pulls, PullRequest{Number: i})
			}
			require.NoError(t, json.NewEncoder(w).Encode(pulls))
		case "2":
			w.Write([]byte(`[{"number": 101}]`))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	pulls, err := client.ListPulls("cmckay/gitpr")
	require.NoError(t, err)
	require.Len(t, pulls, 101)
	assert.Equal(t, 101, pulls[100].Number)
}

func TestAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})

	_, err := client.GetPull("cmckay/gitpr", 999)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestUnauthenticatedRequestOmitsHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient("")
	client.BaseURL = server.URL

	_, err := client.ListPulls("cmckay/gitpr")
	require.NoError(t, err)
}
