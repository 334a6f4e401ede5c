package config

import (
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 160, cfg.Model.InputSize)
	assert.Equal(t, 640, cfg.Preview.MaxWidth)
	assert.Equal(t, 800, cfg.Preview.MaxHeight)
	assert.Equal(t, 240, cfg.Verdict.IconSize)
	assert.Equal(t, AppearanceDark, cfg.Appearance)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
model:
  path: /opt/models/pets.onnx
  runtime_library: /usr/lib/libonnxruntime.so
appearance: light
`))
	require.NoError(t, err)

	assert.Equal(t, "/opt/models/pets.onnx", cfg.Model.Path)
	assert.Equal(t, "/usr/lib/libonnxruntime.so", cfg.Model.RuntimeLibrary)
	assert.Equal(t, AppearanceLight, cfg.Appearance)
	// untouched keys keep their defaults
	assert.Equal(t, 160, cfg.Model.InputSize)
	assert.Equal(t, "Cats vs Dogs CNN", cfg.Window.Title)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "model: [unclosed"},
		{"empty model path", "model:\n  path: \"\""},
		{"zero input size", "model:\n  input_size: 0"},
		{"negative window", "window:\n  width: -1"},
		{"zero preview", "preview:\n  max_height: 0"},
		{"zero banner", "preview:\n  banner_size: 0"},
		{"zero icon", "verdict:\n  icon_size: 0"},
		{"unknown appearance", "appearance: sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFS(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadFromFS(fstest.MapFS{})
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file is parsed", func(t *testing.T) {
		fsys := fstest.MapFS{
			FileName: &fstest.MapFile{Data: []byte("window:\n  title: Pets\n")},
		}
		cfg, err := LoadFromFS(fsys)
		require.NoError(t, err)
		assert.Equal(t, "Pets", cfg.Window.Title)
	})
}

func TestParse_WrapsDecodeError(t *testing.T) {
	_, err := Parse([]byte("window: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.NotEqual(t, err, errors.Cause(err), "decode error should be wrapped")
}
