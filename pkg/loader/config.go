package loader

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atelier-tools/vitrine/pkg/errors"
)

// componentConfig mirrors the recognized keys of a component's
// <name>.config.{json,yaml,yml} file.
type componentConfig struct {
	Label    string          `yaml:"label"`
	Context  map[string]any  `yaml:"context"`
	Status   string          `yaml:"status"`
	Preview  string          `yaml:"preview"`
	Collated *bool           `yaml:"collated"`
	Default  string          `yaml:"default"`
	Hidden   bool            `yaml:"hidden"`
	Variants []variantConfig `yaml:"variants"`
}

// variantConfig is one declared variant inside a component config.
type variantConfig struct {
	Handle  string         `yaml:"handle"`
	Label   string         `yaml:"label"`
	Context map[string]any `yaml:"context"`
	Status  string         `yaml:"status"`
	Preview string         `yaml:"preview"`
	Hidden  bool           `yaml:"hidden"`
}

// readConfig loads and decodes a component config file. JSON parses
// through the YAML decoder, JSON being a YAML subset. A .js config is
// recognized by classification but cannot be decoded here; it is
// skipped with a warning.
func (l *Loader) readConfig(path string) (*componentConfig, error) {
	if path == "" {
		return nil, nil
	}

	if strings.HasSuffix(strings.ToLower(path), ".js") {
		l.logger.Warn().Str("path", path).Msg("JavaScript config files are not decodable, skipping")
		return nil, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeLoad, "reading config %s", path)
	}

	var conf componentConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "decoding config %s", path)
	}
	return &conf, nil
}
