package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pet.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestDecodeFile(t *testing.T) {
	path := writePNG(t, solidImage(30, 20, color.RGBA{200, 100, 50, 255}))

	img, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())
}

func TestDecodeFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a jpeg"), 0o644))

	_, err := DecodeFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedImage))
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedImage))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecode_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(4, 4, color.White)))

	_, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestHasImageExtension(t *testing.T) {
	assert.True(t, HasImageExtension("/tmp/Rex.JPG"))
	assert.True(t, HasImageExtension("tom.webp"))
	assert.False(t, HasImageExtension("model.onnx"))
	assert.False(t, HasImageExtension("README"))
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"landscape shrinks to width", 1280, 720, 640, 360},
		{"portrait shrinks to height", 800, 1600, 400, 800},
		{"small image untouched", 300, 200, 300, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumb := Thumbnail(solidImage(tt.w, tt.h, color.Black), 640, 800)
			b := thumb.Bounds()
			assert.LessOrEqual(t, b.Dx(), 640)
			assert.LessOrEqual(t, b.Dy(), 800)
			assert.InDelta(t, tt.wantW, b.Dx(), 1)
			assert.InDelta(t, tt.wantH, b.Dy(), 1)
		})
	}
}

func TestPreprocess_ShapeAndRange(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 321, 123))
	for y := 0; y < 123; y++ {
		for x := 0; x < 321; x++ {
			src.Set(x, y, color.RGBA{uint8(x), uint8(y * 2), uint8(x + y), 255})
		}
	}

	tensor, err := Preprocess(src, 160)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 160, 160, 3}, tensor.Shape)
	require.Len(t, tensor.Data, 160*160*3)
	for i, v := range tensor.Data {
		if v < 0 || v > 1 {
			t.Fatalf("Data[%d] = %v out of [0,1]", i, v)
		}
	}
}

func TestPreprocess_ScalesChannels(t *testing.T) {
	tensor, err := Preprocess(solidImage(50, 50, color.RGBA{255, 0, 51, 255}), 160)
	require.NoError(t, err)

	// NHWC: every pixel is R, G, B in order
	assert.InDelta(t, 1.0, tensor.Data[0], 1e-6)
	assert.InDelta(t, 0.0, tensor.Data[1], 1e-6)
	assert.InDelta(t, 0.2, tensor.Data[2], 1e-6)
	last := len(tensor.Data) - 3
	assert.InDelta(t, 1.0, tensor.Data[last], 1e-6)
	assert.InDelta(t, 0.2, tensor.Data[last+2], 1e-6)
}

func TestPreprocessInto_Errors(t *testing.T) {
	img := solidImage(10, 10, color.White)

	assert.Error(t, PreprocessInto(nil, 160, make([]float32, 160*160*3)))
	assert.Error(t, PreprocessInto(img, 0, nil))
	assert.Error(t, PreprocessInto(img, 160, make([]float32, 10)))
}
