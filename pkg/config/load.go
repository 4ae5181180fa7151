package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/atelier-tools/vitrine/pkg/errors"
)

// envPrefix marks environment variables that override settings. A double
// underscore separates sections: VITRINE_RENDER__ERROR_MODE sets
// render.error_mode.
const envPrefix = "VITRINE_"

// Option adjusts how Load assembles the configuration.
type Option func(*loadOptions)

type loadOptions struct {
	overrides map[string]interface{}
}

// WithOverride forces a single setting to value after all file and
// environment layers, using dotted key form such as "source.path".
func WithOverride(key string, value interface{}) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]interface{})
		}
		o.overrides[key] = value
	}
}

// Load assembles the configuration for a catalog rooted at dir:
// embedded defaults, then the first of .vitrine.toml, vitrine.toml,
// .vitrine.yaml or vitrine.yaml found in dir, then VITRINE_*
// environment variables, then overrides.
func Load(dir string, opts ...Option) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading embedded defaults")
	}

	for _, filename := range []string{".vitrine.toml", "vitrine.toml", ".vitrine.yaml", "vitrine.yaml"} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "loading config from %s", path)
		}
		break
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "applying overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "decoding configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded default configuration, ignoring files,
// the environment and overrides.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults failed to parse: " + err.Error())
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic("embedded defaults failed to decode: " + err.Error())
	}
	return &cfg
}

// Validate checks cross-field constraints the decoder cannot.
func (c *Config) Validate() error {
	switch c.Render.ErrorMode {
	case ErrorModeFail, ErrorModeIgnore:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"render.error_mode must be %q or %q, got %q",
			ErrorModeFail, ErrorModeIgnore, c.Render.ErrorMode)
	}

	if c.Source.Ext == "" || !strings.HasPrefix(c.Source.Ext, ".") {
		return errors.Newf(errors.ErrConfigParse,
			"source.ext must start with a dot, got %q", c.Source.Ext)
	}

	if c.Source.Splitter == "" {
		return errors.New(errors.ErrConfigParse, "source.splitter must not be empty")
	}

	return nil
}

// parserFor picks the koanf parser matching the config file extension.
func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}

// envToKey maps VITRINE_RENDER__ERROR_MODE to render.error_mode
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
