// Package config loads catalog settings the way the rest of the tool
// expects them: embedded TOML defaults first, then an optional
// vitrine.toml or vitrine.yaml in the catalog root, then VITRINE_*
// environment variables, then explicit overrides.
package config

import (
	"github.com/atelier-tools/vitrine/pkg/status"
)

// Error modes accepted by render.error_mode.
const (
	// ErrorModeFail propagates render failures to the caller
	ErrorModeFail = "fail"

	// ErrorModeIgnore logs render failures and yields empty markup
	ErrorModeIgnore = "ignore"
)

// Config holds every recognized catalog setting.
type Config struct {
	Source SourceConfig `koanf:"source" toml:"source"`
	Render RenderConfig `koanf:"render" toml:"render"`
	Status StatusConfig `koanf:"status" toml:"status"`
}

// SourceConfig describes where and how component sources are found.
type SourceConfig struct {
	// Path is the component source root
	Path string `koanf:"path" toml:"path"`

	// Ext is the view file extension, leading dot included
	Ext string `koanf:"ext" toml:"ext"`

	// Splitter separates component from variant in view filenames
	Splitter string `koanf:"splitter" toml:"splitter"`

	// PathPrefix is prepended to public asset paths
	PathPrefix string `koanf:"path_prefix" toml:"path_prefix"`
}

// RenderConfig describes render pipeline behavior.
type RenderConfig struct {
	// Preview is the default layout handle, empty for none
	Preview string `koanf:"preview" toml:"preview"`

	// Yield is the context key layouts read the wrapped body from
	Yield string `koanf:"yield" toml:"yield"`

	// Collated makes components render all variants joined by default
	Collated bool `koanf:"collated" toml:"collated"`

	// ErrorMode selects how the pipeline surfaces failures, "fail" or
	// "ignore"
	ErrorMode string `koanf:"error_mode" toml:"error_mode"`
}

// StatusConfig describes the status taxonomy.
type StatusConfig struct {
	// Default is the handle unknown statuses fall back to
	Default string `koanf:"default" toml:"default"`

	// Mixed names the option used for mixed-status aggregates
	Mixed string `koanf:"mixed" toml:"mixed"`

	// Options maps status handles to their records
	Options map[string]StatusOption `koanf:"options" toml:"options"`
}

// StatusOption is one configured status record.
type StatusOption struct {
	Label       string `koanf:"label" toml:"label"`
	Color       string `koanf:"color" toml:"color"`
	Description string `koanf:"description" toml:"description"`
}

// Taxonomy converts the status section into the registry's form.
func (c *Config) Taxonomy() status.Taxonomy {
	options := make(map[string]*status.Option, len(c.Status.Options))
	for handle, opt := range c.Status.Options {
		options[handle] = &status.Option{
			Handle:      handle,
			Label:       opt.Label,
			Color:       opt.Color,
			Description: opt.Description,
		}
	}

	mixed, ok := options[c.Status.Mixed]
	if !ok {
		mixed = &status.Option{Handle: c.Status.Mixed, Label: c.Status.Mixed}
	}

	return status.Taxonomy{
		Default: c.Status.Default,
		Mixed:   mixed,
		Options: options,
	}
}
