package config

import (
	"regexp"
	"strings"
)

// GitConfigSection is the git-config section holding gitpr options.
const GitConfigSection = "git-pull-request"

// optionLineRegex matches git-pull-request.* lines of 'git config -l'
// output.
var optionLineRegex = regexp.MustCompile(`(?m)^git-pull-request\.([^=]+)=(.*)$`)

// ConfigLister provides raw 'git config -l' output. *git.Executor
// satisfies it.
type ConfigLister interface {
	ConfigList() (string, error)
}

// Load returns the defaults overlaid with git-pull-request.* values
// from git config. A config read failure (for example, outside a git
// repository) returns plain defaults.
func Load(lister ConfigLister) *Options {
	opts := DefaultOptions()

	output, err := lister.ConfigList()
	if err != nil {
		return opts
	}

	ApplyGitConfig(opts, output)
	return opts
}

// ApplyGitConfig applies git-pull-request.* entries found in 'git
// config -l' output to opts. Unknown keys are ignored so old or
// misspelled settings never break the tool.
func ApplyGitConfig(opts *Options, configList string) {
	for _, match := range optionLineRegex.FindAllStringSubmatch(configList, -1) {
		key, value := match[1], match[2]

		if colorToken, ok := strings.CutPrefix(key, "color-"); ok {
			opts.Colors[colorToken] = value
			continue
		}

		switch key {
		case "close-default-comment":
			opts.CloseDefaultComment = stringValue(value)
		case "fetch-auto-checkout":
			opts.FetchAutoCheckout = boolValue(value, opts.FetchAutoCheckout)
		case "fetch-auto-update":
			opts.FetchAutoUpdate = boolValue(value, opts.FetchAutoUpdate)
		case "merge-auto-close":
			opts.MergeAutoClose = boolValue(value, opts.MergeAutoClose)
		case "update-method":
			if v := stringValue(value); v != "" {
				opts.UpdateMethod = v
			}
		case "submit-open-github":
			opts.SubmitOpenGithub = boolValue(value, opts.SubmitOpenGithub)
		case "work-dir":
			opts.WorkDir = stringValue(value)
		}
	}
}

// boolValue coerces the loose truthy/falsy spellings accepted in git
// config. Anything unrecognized keeps the current value.
func boolValue(value string, current bool) bool {
	switch strings.ToLower(value) {
	case "t", "true", "yes":
		return true
	case "f", "false", "no":
		return false
	default:
		return current
	}
}

// stringValue maps the accepted "unset" spellings to an empty string.
func stringValue(value string) string {
	switch strings.ToLower(value) {
	case "", "none", "null", "nil":
		return ""
	default:
		return value
	}
}
