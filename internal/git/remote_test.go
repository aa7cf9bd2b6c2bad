package git

import (
	"testing"
)

func TestParseRepoName(t *testing.T) {
	remotes := `origin	git@github.com:cmckay/gitpr.git (fetch)
origin	git@github.com:cmckay/gitpr.git (push)
upstream	https://github.com/liferay/gitpr.git (fetch)
upstream	https://github.com/liferay/gitpr.git (push)
mirror	git@gitlab.com:cmckay/gitpr.git (fetch)
mirror	git@gitlab.com:cmckay/gitpr.git (push)
`

	tests := []struct {
		name       string
		remoteName string
		expected   string
	}{
		{
			name:       "ssh remote",
			remoteName: "origin",
			expected:   "cmckay/gitpr",
		},
		{
			name:       "https remote",
			remoteName: "upstream",
			expected:   "liferay/gitpr",
		},
		{
			name:       "non-github remote",
			remoteName: "mirror",
			expected:   "",
		},
		{
			name:       "unknown remote",
			remoteName: "nonexistent",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRepoName(remotes, tt.remoteName)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseRepoNameWithoutGitSuffix(t *testing.T) {
	remotes := "origin\thttps://github.com/cmckay/gitpr (fetch)\norigin\thttps://github.com/cmckay/gitpr (push)"

	got := ParseRepoName(remotes, "origin")
	if got != "cmckay/gitpr" {
		t.Errorf("expected cmckay/gitpr, got %q", got)
	}
}

func TestParseRepoNameEmptyOutput(t *testing.T) {
	if got := ParseRepoName("", "origin"); got != "" {
		t.Errorf("expected empty repo name, got %q", got)
	}
}
