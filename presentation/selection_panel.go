package presentation

import (
	"image"
	"log/slog"

	"catdog-go/domain/verdict"
	"catdog-go/infrastructure/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// PromptText is shown before the first verdict.
const PromptText = "Is it a cat or a dog?"

// SelectionPanel holds the select button and the verdict display.
type SelectionPanel struct {
	selectBtn *widget.Button
	heading   *widget.Label
	icon      *canvas.Image
	container *fyne.Container

	catIcon image.Image
	dogIcon image.Image
	logger  *slog.Logger
}

// SelectionPanelConfig holds configuration for SelectionPanel.
type SelectionPanelConfig struct {
	OnSelect      func()
	Illustrations *Illustrations
	IconSize      float32
	Logger        *slog.Logger
}

// NewSelectionPanel creates the panel showing the placeholder illustration.
func NewSelectionPanel(cfg *SelectionPanelConfig) *SelectionPanel {
	if cfg.Logger == nil {
		cfg.Logger = logging.L()
	}

	p := &SelectionPanel{
		catIcon: cfg.Illustrations.Cat,
		dogIcon: cfg.Illustrations.Dog,
		logger:  cfg.Logger,
	}

	p.selectBtn = widget.NewButtonWithIcon("Select an image", theme.FolderOpenIcon(), cfg.OnSelect)
	p.selectBtn.Importance = widget.HighImportance

	p.heading = widget.NewLabel(PromptText)
	p.heading.Alignment = fyne.TextAlignCenter
	p.heading.TextStyle = fyne.TextStyle{Bold: true}
	p.heading.SizeName = theme.SizeNameSubHeadingText
	p.heading.Wrapping = fyne.TextWrapWord

	p.icon = canvas.NewImageFromImage(cfg.Illustrations.CatOrDog)
	p.icon.FillMode = canvas.ImageFillContain
	p.icon.SetMinSize(fyne.NewSize(cfg.IconSize, cfg.IconSize))

	p.container = container.NewVBox(
		layout.NewSpacer(),
		container.NewPadded(p.selectBtn),
		layout.NewSpacer(),
		p.heading,
		layout.NewSpacer(),
		container.NewCenter(p.icon),
		layout.NewSpacer(),
	)

	return p
}

// Container returns the panel's root object.
func (p *SelectionPanel) Container() fyne.CanvasObject {
	return p.container
}

// ShowPrediction displays the verdict for score. Scores outside [0, 1],
// including verdict.NoSelection, leave the panel untouched and return false.
func (p *SelectionPanel) ShowPrediction(score float32) bool {
	v, ok := verdict.Interpret(score)
	if !ok {
		p.logger.Debug("Ignoring score outside [0, 1]", "score", score)
		return false
	}

	if v.Label == verdict.Dog {
		p.icon.Image = p.dogIcon
	} else {
		p.icon.Image = p.catIcon
	}
	p.icon.Refresh()
	p.heading.SetText(v.Text())

	p.logger.Info("Verdict shown", "label", v.Label, "confidence", v.Confidence)
	return true
}

// Text returns the verdict text currently displayed.
func (p *SelectionPanel) Text() string {
	return p.heading.Text
}

// Icon returns the illustration currently displayed.
func (p *SelectionPanel) Icon() image.Image {
	return p.icon.Image
}

// SetEnabled toggles the select button.
func (p *SelectionPanel) SetEnabled(enabled bool) {
	if enabled {
		p.selectBtn.Enable()
	} else {
		p.selectBtn.Disable()
	}
}
