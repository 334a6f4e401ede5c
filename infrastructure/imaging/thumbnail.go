package imaging

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to fit inside maxWidth x maxHeight, keeping its
// aspect ratio. Images that already fit are returned unchanged.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	if img == nil || maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)
}
