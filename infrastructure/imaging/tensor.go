package imaging

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Channels is the number of colour channels fed to the classifier (RGB).
const Channels = 3

// Tensor is a dense float32 tensor in NHWC order.
type Tensor struct {
	Shape []int64
	Data  []float32
}

// TensorShape returns the NHWC shape of a single square RGB image.
func TensorShape(size int) []int64 {
	return []int64{1, int64(size), int64(size), Channels}
}

// Preprocess resizes img to size x size and converts it to a (1, size, size, 3)
// tensor with channel values scaled from [0, 255] to [0, 1].
func Preprocess(img image.Image, size int) (*Tensor, error) {
	t := &Tensor{
		Shape: TensorShape(size),
		Data:  make([]float32, size*size*Channels),
	}
	if err := PreprocessInto(img, size, t.Data); err != nil {
		return nil, err
	}
	return t, nil
}

// PreprocessInto writes the preprocessed pixels of img into dst, which must
// hold at least size*size*3 values.
func PreprocessInto(img image.Image, size int, dst []float32) error {
	if img == nil {
		return errors.New("nil image")
	}
	if size <= 0 {
		return errors.Errorf("invalid input size %d", size)
	}
	if need := size * size * Channels; len(dst) < need {
		return errors.Errorf("destination holds %d floats, needs %d", len(dst), need)
	}

	// Nearest neighbour matches the sampling the network was trained with.
	resized := resize.Resize(uint(size), uint(size), img, resize.NearestNeighbor)
	b := resized.Bounds()

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(resized.At(x, y)).(color.NRGBA)
			dst[i] = float32(c.R) / 255.0
			dst[i+1] = float32(c.G) / 255.0
			dst[i+2] = float32(c.B) / 255.0
			i += Channels
		}
	}
	return nil
}
