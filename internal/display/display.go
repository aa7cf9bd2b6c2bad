// Package display renders gitpr output with the user's configured
// color scheme.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/connormckay/gitpr/internal/github"
)

// bodyWrapWidth is the column pull request bodies are wrapped at.
const bodyWrapWidth = 80

var colorsByName = map[string]text.Color{
	"black":   text.FgBlack,
	"red":     text.FgRed,
	"green":   text.FgGreen,
	"yellow":  text.FgYellow,
	"blue":    text.FgBlue,
	"magenta": text.FgMagenta,
	"cyan":    text.FgCyan,
	"white":   text.FgWhite,
}

// Printer writes colored output according to a token -> color-name
// scheme.
type Printer struct {
	out     io.Writer
	scheme  map[string]string
	colored bool
}

// NewPrinter creates a printer writing to out. When colored is false
// (output is not a terminal) all text passes through unstyled.
func NewPrinter(out io.Writer, scheme map[string]string, colored bool) *Printer {
	return &Printer{out: out, scheme: scheme, colored: colored}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Colorize styles s with the color configured for token. "default" or
// an unknown color name leaves the text unstyled.
func (p *Printer) Colorize(s, token string, bold bool) string {
	if !p.colored {
		return s
	}

	colorName := p.scheme[token]
	color, ok := colorsByName[colorName]
	if !ok {
		return s
	}

	colors := text.Colors{color}
	if bold {
		colors = append(colors, text.Bold)
	}
	return colors.Sprint(s)
}

// Status prints a progress line in the status color.
func (p *Printer) Status(format string, args ...any) {
	fmt.Fprintln(p.out, p.Colorize(fmt.Sprintf(format, args...), "status", false))
}

// Success prints a completion line in the success color.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.Colorize(fmt.Sprintf(format, args...), "success", false))
}

// Warning prints a warning line in the warning color.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.out, p.Colorize(fmt.Sprintf(format, args...), "warning", false))
}

// Error prints an error line in the error color.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out, p.Colorize(fmt.Sprintf(format, args...), "error", false))
}

// Println prints an uncolored line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// ShowPullRequestMinimal prints the one-line summary of a pull request.
func (p *Printer) ShowPullRequestMinimal(pull *github.PullRequest) {
	user := pull.User.Name
	if user == "" {
		user = pull.User.Login
	}

	fmt.Fprintf(p.out, "%s - %s by %s (%s)\n",
		p.Colorize(fmt.Sprintf("REQUEST %d", pull.Number), "display-title-number", true),
		p.Colorize(pull.Title, "display-title-text", true),
		p.Colorize(user, "display-title-user", false),
		pull.User.Login)
}

// ShowPullRequest prints the summary, URL and wrapped body of a pull
// request.
func (p *Printer) ShowPullRequest(pull *github.PullRequest) {
	p.ShowPullRequestMinimal(pull)
	fmt.Fprintf(p.out, "    %s\n", p.Colorize(pull.HTMLURL, "display-title-url", false))

	if body := strings.TrimSpace(pull.Body); body != "" {
		fmt.Fprintln(p.out, indent(text.WrapSoft(body, bodyWrapWidth-4), "    "))
	}

	fmt.Fprintln(p.out)
}

// ShowCurrentBranch prints the closing status line.
func (p *Printer) ShowCurrentBranch(branch string) {
	fmt.Fprintf(p.out, "Current branch: %s\n", branch)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
