package classify

import (
	"path/filepath"
	"strings"
)

// configFormats is the expansion of the *.config.{js,json,yaml,yml}
// pattern configuration files are recognized by.
var configFormats = []string{"js", "json", "yaml", "yml"}

// Classifier categorizes source files by path. All predicates are pure,
// operate on the basename and compare case-insensitively.
type Classifier struct {
	ext      string
	splitter string

	configSuffixes []string
}

// New creates a classifier for the given view extension (leading dot
// included, e.g. ".tpl") and variant splitter token (e.g. "--").
func New(ext, splitter string) *Classifier {
	suffixes := make([]string, len(configFormats))
	for i, format := range configFormats {
		suffixes[i] = ".config." + format
	}

	return &Classifier{
		ext:            strings.ToLower(ext),
		splitter:       strings.ToLower(splitter),
		configSuffixes: suffixes,
	}
}

// Ext returns the view extension the classifier was built with.
func (c *Classifier) Ext() string {
	return c.ext
}

// Splitter returns the variant splitter token.
func (c *Classifier) Splitter() string {
	return c.splitter
}

// IsView reports whether path is a component's primary view: it carries
// the view extension and no splitter token in its stem.
func (c *Classifier) IsView(path string) bool {
	stem, ok := c.stem(path)
	if !ok {
		return false
	}
	return !strings.Contains(stem, c.splitter)
}

// IsVarView reports whether path is a named variant's view: it carries
// the view extension and a splitter token in its stem.
func (c *Classifier) IsVarView(path string) bool {
	stem, ok := c.stem(path)
	if !ok {
		return false
	}
	return strings.Contains(stem, c.splitter)
}

// IsConfig reports whether path is a configuration file, matching
// *.config.{js,json,yaml,yml} at any depth.
func (c *Classifier) IsConfig(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range c.configSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// IsReadme reports whether path's basename is exactly readme.md.
func (c *Classifier) IsReadme(path string) bool {
	return strings.EqualFold(filepath.Base(path), "readme.md")
}

// IsAsset reports whether path is a generic asset: it carries a
// dot-extension and is none of the other categories. The exclusions
// must be checked before the fallback fires.
func (c *Classifier) IsAsset(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if !strings.Contains(strings.TrimPrefix(base, "."), ".") {
		return false
	}
	if strings.HasSuffix(base, c.ext) {
		return false
	}
	return !c.IsConfig(path) && !c.IsReadme(path)
}

// VariantHandle returns the variant handle encoded in a variant view
// filename, the portion of the stem after the first splitter:
// "button--large.tpl" yields "large". Returns "" when path is not a
// variant view.
func (c *Classifier) VariantHandle(path string) string {
	if !c.IsVarView(path) {
		return ""
	}
	base := filepath.Base(path)
	stem := base[:len(base)-len(c.ext)]
	idx := strings.Index(strings.ToLower(stem), c.splitter)
	return stem[idx+len(c.splitter):]
}

// ViewName returns the component name encoded in a view filename, the
// stem before any splitter: "button--large.tpl" and "button.tpl" both
// yield "button". Returns "" when path carries no view extension.
func (c *Classifier) ViewName(path string) string {
	base := filepath.Base(path)
	if !strings.HasSuffix(strings.ToLower(base), c.ext) {
		return ""
	}
	stem := base[:len(base)-len(c.ext)]
	if idx := strings.Index(strings.ToLower(stem), c.splitter); idx >= 0 {
		return stem[:idx]
	}
	return stem
}

// stem returns the lowercased basename with the view extension
// stripped, and whether path carried the extension at all.
func (c *Classifier) stem(path string) (string, bool) {
	base := strings.ToLower(filepath.Base(path))
	if !strings.HasSuffix(base, c.ext) {
		return "", false
	}
	return strings.TrimSuffix(base, c.ext), true
}
