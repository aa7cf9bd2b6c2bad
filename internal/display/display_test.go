package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/connormckay/gitpr/internal/config"
	"github.com/connormckay/gitpr/internal/github"
)

func testPull() *github.PullRequest {
	return &github.PullRequest{
		Number:  42,
		Title:   "LPS-1234 Fix login",
		Body:    "The login form rejects valid passwords containing spaces.",
		HTMLURL: "https://github.com/cmckay/gitpr/pull/42",
		User:    github.User{Login: "alice", Name: "Alice Doe"},
	}
}

func TestShowPullRequestMinimalUncolored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.DefaultOptions().Colors, false)

	p.ShowPullRequestMinimal(testPull())

	got := buf.String()
	expected := "REQUEST 42 - LPS-1234 Fix login by Alice Doe (alice)\n"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestShowPullRequestMinimalFallsBackToLogin(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.DefaultOptions().Colors, false)

	pull := testPull()
	pull.User.Name = ""
	p.ShowPullRequestMinimal(pull)

	if !strings.Contains(buf.String(), "by alice (alice)") {
		t.Errorf("expected login fallback, got %q", buf.String())
	}
}

func TestShowPullRequestIncludesURLAndBody(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.DefaultOptions().Colors, false)

	p.ShowPullRequest(testPull())

	got := buf.String()
	if !strings.Contains(got, "    https://github.com/cmckay/gitpr/pull/42") {
		t.Errorf("expected indented URL, got %q", got)
	}
	if !strings.Contains(got, "    The login form") {
		t.Errorf("expected indented body, got %q", got)
	}
}

func TestShowPullRequestSkipsEmptyBody(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.DefaultOptions().Colors, false)

	pull := testPull()
	pull.Body = "  \n "
	p.ShowPullRequest(pull)

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "    ") && !strings.Contains(line, "https://") {
			t.Errorf("unexpected body line: %q", line)
		}
	}
}

func TestColorizeAppliesConfiguredColor(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, map[string]string{"status": "blue"}, true)

	got := p.Colorize("Fetching", "status", false)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escape in %q", got)
	}
	if !strings.Contains(got, "Fetching") {
		t.Errorf("expected original text in %q", got)
	}
}

func TestColorizeDefaultColorIsPlain(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, map[string]string{"status": "default"}, true)

	if got := p.Colorize("Fetching", "status", false); got != "Fetching" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestColorizeDisabledIsPlain(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, map[string]string{"status": "blue"}, false)

	if got := p.Colorize("Fetching", "status", false); got != "Fetching" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestShowCurrentBranch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.DefaultOptions().Colors, false)

	p.ShowCurrentBranch("pull-request-42")

	if buf.String() != "Current branch: pull-request-42\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
