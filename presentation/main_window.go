package presentation

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"catdog-go/application"
	"catdog-go/infrastructure/config"
	"catdog-go/infrastructure/imaging"
	"catdog-go/infrastructure/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// MainWindow is the application shell: it owns the window, the menu and the
// two panels, and runs the selection flow through the Selector.
type MainWindow struct {
	app    fyne.App
	window fyne.Window
	logger *slog.Logger

	selector  *application.Selector
	selection *SelectionPanel
	preview   *PreviewPanel
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App           fyne.App
	Config        *config.Config
	Selector      *application.Selector
	Illustrations *Illustrations
	Logger        *slog.Logger
}

// NewMainWindow creates the main window.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = logging.L()
	}
	if cfg.Config == nil {
		cfg.Config = config.Default()
	}

	w := &MainWindow{
		app:      cfg.App,
		window:   cfg.App.NewWindow(cfg.Config.Window.Title),
		logger:   cfg.Logger,
		selector: cfg.Selector,
	}

	w.selection = NewSelectionPanel(&SelectionPanelConfig{
		OnSelect:      w.showFileDialog,
		Illustrations: cfg.Illustrations,
		IconSize:      float32(cfg.Config.Verdict.IconSize),
		Logger:        cfg.Logger,
	})
	w.preview = NewPreviewPanel(cfg.Illustrations.CatsAndDogs)

	w.init(cfg.Config)

	w.window.SetOnClosed(func() {
		w.logger.Info("Main window closed")
		cfg.App.Quit()
	})

	return w
}

func (w *MainWindow) init(cfg *config.Config) {
	SetAppearance(w.app, cfg.Appearance)
	w.window.SetMainMenu(w.createMenu())

	split := container.NewHSplit(w.selection.Container(), w.preview.Container())
	split.SetOffset(0.33)

	w.window.SetContent(split)
	w.window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.window.SetFixedSize(true)
	w.window.SetMaster()

	w.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		w.HandleDrop(uris)
	})
}

// HandleDrop runs the selection flow for the first dropped file. Files
// without an image extension are rejected before anything is decoded.
func (w *MainWindow) HandleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	path := uris[0].Path()
	if !imaging.HasImageExtension(path) {
		w.logger.Warn("Ignoring dropped file", "path", path)
		dialog.ShowError(fmt.Errorf("%s is not a supported image (%s)",
			filepath.Base(path), strings.Join(imaging.Extensions, " ")), w.window)
		return
	}
	w.HandlePath(path)
}

func (w *MainWindow) createMenu() *fyne.MainMenu {
	exit := fyne.NewMenuItem("Exit", w.Exit)
	exit.IsQuit = true

	light := fyne.NewMenuItem("Light", func() {
		SetAppearance(w.app, config.AppearanceLight)
	})
	dark := fyne.NewMenuItem("Dark", func() {
		SetAppearance(w.app, config.AppearanceDark)
	})

	return fyne.NewMainMenu(
		fyne.NewMenu("File", exit),
		fyne.NewMenu("Appearance", light, dark),
	)
}

func (w *MainWindow) showFileDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			w.logger.Error("File dialog failed", "error", err)
			dialog.ShowError(err, w.window)
			return
		}
		if reader == nil {
			w.HandleCancel()
			return
		}
		path := reader.URI().Path()
		reader.Close()
		w.HandlePath(path)
	}, w.window)

	fd.SetFilter(storage.NewExtensionFileFilter(imaging.Extensions))
	fd.Resize(fyne.NewSize(800, 560))
	fd.Show()
}

// HandleCancel applies a dismissed file dialog: nothing on screen changes.
func (w *MainWindow) HandleCancel() {
	w.apply(w.selector.Cancel())
}

// HandlePath runs the selection flow for a chosen file. Decode and inference
// errors are reported in a dialog and leave the window as it was.
func (w *MainWindow) HandlePath(path string) {
	w.selection.SetEnabled(false)
	defer w.selection.SetEnabled(true)

	res, err := w.selector.Select(path)
	if err != nil {
		dialog.ShowError(err, w.window)
		return
	}
	w.apply(res)
}

func (w *MainWindow) apply(res *application.Result) {
	if res.Cancelled() {
		w.selection.ShowPrediction(res.Score)
		return
	}

	w.preview.SetImage(res.Preview)
	if w.selection.ShowPrediction(res.Score) {
		if err := w.selector.MarkShown(); err != nil {
			w.logger.Warn("Unexpected view state", "error", err)
		}
	}
}

// PreviewImage returns the image shown in the preview panel.
func (w *MainWindow) PreviewImage() image.Image {
	return w.preview.Image()
}

// VerdictText returns the text shown in the selection panel.
func (w *MainWindow) VerdictText() string {
	return w.selection.Text()
}

// VerdictIcon returns the illustration shown in the selection panel.
func (w *MainWindow) VerdictIcon() image.Image {
	return w.selection.Icon()
}

// Show displays the window.
func (w *MainWindow) Show() {
	w.window.Show()
}

// Exit closes the window and stops the event loop.
func (w *MainWindow) Exit() {
	w.logger.Info("Exit requested")
	w.window.Close()
	w.app.Quit()
}
