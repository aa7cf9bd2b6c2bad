package config

// UpdateMethod values accepted by the update commands.
const (
	UpdateMethodMerge  = "merge"
	UpdateMethodRebase = "rebase"
)

// Options represents the gitpr configuration.
// Runtime storage: git-config (git-pull-request.* keys)
// Export/import format: TOML (for 'gitpr config export/import')
type Options struct {
	// Colors maps output tokens (success, status, error, warning,
	// display-title-url, ...) to color names. "default" disables
	// coloring for that token.
	Colors map[string]string `toml:"colors"`

	// CloseDefaultComment is posted when closing a pull request
	// without an explicit comment.
	CloseDefaultComment string `toml:"close_default_comment"`

	// FetchAutoCheckout checks out the new branch after a fetch.
	FetchAutoCheckout bool `toml:"fetch_auto_checkout"`

	// FetchAutoUpdate updates a fetched pull request branch from the
	// default branch. Implies a checkout.
	FetchAutoUpdate bool `toml:"fetch_auto_update"`

	// MergeAutoClose closes pull requests on github after merging.
	MergeAutoClose bool `toml:"merge_auto_close"`

	// UpdateMethod is "merge" or "rebase".
	UpdateMethod string `toml:"update_method"`

	// SubmitOpenGithub opens newly submitted pull requests in the
	// browser.
	SubmitOpenGithub bool `toml:"submit_open_github"`

	// WorkDir is a separate checkout used for performing updates so
	// IDEs watching the main tree do not rebuild constantly. It is
	// hard-reset before every update.
	WorkDir string `toml:"work_dir"`
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() *Options {
	return &Options{
		Colors: map[string]string{
			"success":                  "green",
			"status":                   "blue",
			"error":                    "red",
			"warning":                  "red",
			"display-title-url":        "cyan",
			"display-title-number":     "magenta",
			"display-title-text":       "red",
			"display-title-user":       "blue",
			"display-info-repo-title":  "default",
			"display-info-repo-count":  "magenta",
			"display-info-total-title": "green",
			"display-info-total-count": "magenta",
		},
		MergeAutoClose:   true,
		UpdateMethod:     UpdateMethodMerge,
		SubmitOpenGithub: true,
	}
}
