package presentation

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// PreviewPanel shows the selected image at its own size. It never decodes
// or scales anything itself; callers hand it an already bounded thumbnail.
type PreviewPanel struct {
	image     *canvas.Image
	container *fyne.Container
}

// NewPreviewPanel creates the panel showing placeholder.
func NewPreviewPanel(placeholder image.Image) *PreviewPanel {
	p := &PreviewPanel{}

	p.image = canvas.NewImageFromImage(nil)
	p.image.FillMode = canvas.ImageFillOriginal

	p.container = container.NewCenter(p.image)
	p.SetImage(placeholder)
	return p
}

// Container returns the panel's root object.
func (p *PreviewPanel) Container() fyne.CanvasObject {
	return p.container
}

// SetImage replaces the displayed image. A nil image is ignored.
func (p *PreviewPanel) SetImage(img image.Image) {
	if img == nil {
		return
	}
	p.image.Image = img
	bounds := img.Bounds()
	p.image.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	p.image.Refresh()
}

// Image returns the image currently displayed.
func (p *PreviewPanel) Image() image.Image {
	return p.image.Image
}

// MinSize returns the size the displayed image is drawn at.
func (p *PreviewPanel) MinSize() fyne.Size {
	return p.image.MinSize()
}
