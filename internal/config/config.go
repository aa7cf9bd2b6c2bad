package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is used only for 'gitpr config export/import'
// operations. Runtime configuration is stored in git-config, not in
// this file.
const ConfigFileName = "gitpr.toml"

// ExportToTOML exports the configuration to TOML format
func ExportToTOML(opts *Options) (string, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(opts); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}

// ImportFromTOML imports configuration from TOML format
func ImportFromTOML(data string) (*Options, error) {
	opts := DefaultOptions()
	if err := toml.Unmarshal([]byte(data), opts); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if opts.UpdateMethod == "" {
		opts.UpdateMethod = UpdateMethodMerge
	}
	if opts.Colors == nil {
		opts.Colors = DefaultOptions().Colors
	}

	return opts, nil
}

// LoadFromTOMLFile loads configuration from a TOML file (for import)
func LoadFromTOMLFile(filePath string) (*Options, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ImportFromTOML(string(data))
}

// Entry is one git-config key/value pair.
type Entry struct {
	Key   string
	Value string
}

// GitConfigEntries returns the git-config entries needed to persist
// opts, skipping values that match the defaults. Used by 'gitpr config
// import'.
func GitConfigEntries(opts *Options) []Entry {
	defaults := DefaultOptions()
	var entries []Entry

	set := func(key, value string) {
		entries = append(entries, Entry{Key: GitConfigSection + "." + key, Value: value})
	}

	if opts.CloseDefaultComment != defaults.CloseDefaultComment {
		set("close-default-comment", opts.CloseDefaultComment)
	}
	if opts.FetchAutoCheckout != defaults.FetchAutoCheckout {
		set("fetch-auto-checkout", fmt.Sprintf("%t", opts.FetchAutoCheckout))
	}
	if opts.FetchAutoUpdate != defaults.FetchAutoUpdate {
		set("fetch-auto-update", fmt.Sprintf("%t", opts.FetchAutoUpdate))
	}
	if opts.MergeAutoClose != defaults.MergeAutoClose {
		set("merge-auto-close", fmt.Sprintf("%t", opts.MergeAutoClose))
	}
	if opts.UpdateMethod != defaults.UpdateMethod {
		set("update-method", opts.UpdateMethod)
	}
	if opts.SubmitOpenGithub != defaults.SubmitOpenGithub {
		set("submit-open-github", fmt.Sprintf("%t", opts.SubmitOpenGithub))
	}
	if opts.WorkDir != defaults.WorkDir {
		set("work-dir", opts.WorkDir)
	}
	for token, color := range opts.Colors {
		if defaults.Colors[token] != color {
			set("color-"+token, color)
		}
	}

	return entries
}
