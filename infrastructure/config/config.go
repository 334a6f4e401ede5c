// Package config loads the application configuration from YAML.
package config

import (
	"io/fs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by LoadFromFS.
const FileName = "config.yaml"

// Appearance names a colour variant of the UI.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// Config is the application configuration.
type Config struct {
	Model      ModelConfig   `yaml:"model"`
	Window     WindowConfig  `yaml:"window"`
	Preview    PreviewConfig `yaml:"preview"`
	Verdict    VerdictConfig `yaml:"verdict"`
	Appearance Appearance    `yaml:"appearance"`
}

// ModelConfig describes the classifier artifact.
type ModelConfig struct {
	// Path is the ONNX model file, relative to the working directory.
	Path string `yaml:"path"`
	// RuntimeLibrary is the onnxruntime shared library. Empty uses the
	// platform default search path.
	RuntimeLibrary string `yaml:"runtime_library"`
	// InputSize is the square input resolution of the network.
	InputSize int `yaml:"input_size"`
	// InputName and OutputName are discovered from the model when empty.
	InputName  string `yaml:"input_name"`
	OutputName string `yaml:"output_name"`
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// PreviewConfig bounds the images shown in the preview panel.
type PreviewConfig struct {
	MaxWidth   int `yaml:"max_width"`
	MaxHeight  int `yaml:"max_height"`
	BannerSize int `yaml:"banner_size"`
}

// VerdictConfig bounds the illustration next to the verdict text.
type VerdictConfig struct {
	IconSize int `yaml:"icon_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Path:      "models/cats_dogs_cnn.onnx",
			InputSize: 160,
		},
		Window: WindowConfig{
			Title:  "Cats vs Dogs CNN",
			Width:  1000,
			Height: 700,
		},
		Preview: PreviewConfig{
			MaxWidth:   640,
			MaxHeight:  800,
			BannerSize: 640,
		},
		Verdict: VerdictConfig{
			IconSize: 240,
		},
		Appearance: AppearanceDark,
	}
}

// Parse overlays the YAML document on the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFS reads FileName from fsys. A missing file yields the defaults.
func LoadFromFS(fsys fs.FS) (*Config, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "read config file %s", FileName)
	}
	return Parse(data)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Model.Path == "":
		return errors.New("model.path must be set")
	case c.Model.InputSize <= 0:
		return errors.Errorf("model.input_size must be positive, got %d", c.Model.InputSize)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Preview.MaxWidth <= 0 || c.Preview.MaxHeight <= 0:
		return errors.Errorf("preview bounds must be positive, got %dx%d", c.Preview.MaxWidth, c.Preview.MaxHeight)
	case c.Preview.BannerSize <= 0:
		return errors.Errorf("preview.banner_size must be positive, got %d", c.Preview.BannerSize)
	case c.Verdict.IconSize <= 0:
		return errors.Errorf("verdict.icon_size must be positive, got %d", c.Verdict.IconSize)
	}

	switch c.Appearance {
	case AppearanceLight, AppearanceDark:
	default:
		return errors.Errorf("unknown appearance %q", c.Appearance)
	}
	return nil
}
