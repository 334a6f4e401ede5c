// Package application runs the image selection flow independently of the UI toolkit.
package application

import (
	"image"
	"log/slog"
	"time"

	"catdog-go/core/state"
	"catdog-go/domain/verdict"
	"catdog-go/infrastructure/imaging"
	"catdog-go/infrastructure/logging"

	"github.com/pkg/errors"
)

// ErrInvalidScore is returned when the model produces something other than a
// probability in [0, 1].
var ErrInvalidScore = errors.New("model returned an invalid score")

// Predictor runs the classifier on a preprocessed image.
type Predictor interface {
	// InputSize is the square resolution the model expects.
	InputSize() int
	// Predict returns the probability that the image shows a dog.
	Predict(t *imaging.Tensor) (float32, error)
}

// Result is the outcome of one selection.
type Result struct {
	// Path is the chosen file; empty when the dialog was cancelled.
	Path string
	// Preview is the display-sized image, nil when cancelled.
	Preview image.Image
	// Score is the classifier output or verdict.NoSelection.
	Score float32
}

// Cancelled reports whether the user dismissed the dialog without a choice.
func (r *Result) Cancelled() bool {
	return r.Score == verdict.NoSelection
}

// SelectorConfig holds configuration for the Selector.
type SelectorConfig struct {
	Predictor        Predictor
	PreviewMaxWidth  int
	PreviewMaxHeight int
	Logger           *slog.Logger
}

// Selector decodes a chosen image twice, once for display and once for the
// model, and runs a single forward pass. It also tracks the view state.
type Selector struct {
	predictor Predictor
	maxWidth  int
	maxHeight int
	logger    *slog.Logger
	machine   state.Machine
}

// NewSelector creates a new selector.
func NewSelector(cfg *SelectorConfig) *Selector {
	if cfg.Logger == nil {
		cfg.Logger = logging.L()
	}
	return &Selector{
		predictor: cfg.Predictor,
		maxWidth:  cfg.PreviewMaxWidth,
		maxHeight: cfg.PreviewMaxHeight,
		logger:    cfg.Logger,
	}
}

// State returns the current view state.
func (s *Selector) State() state.ViewState {
	return s.machine.Current()
}

// Cancel records a dismissed file dialog. The state is left unchanged.
func (s *Selector) Cancel() *Result {
	s.logger.Debug("Selection cancelled", "state", s.machine.Current())
	return &Result{Score: verdict.NoSelection}
}

// Select runs the display and inference pipelines for path. On error nothing
// changes and the caller must keep showing what it showed before.
func (s *Selector) Select(path string) (*Result, error) {
	logger := s.logger.With("path", path)

	display, err := imaging.DecodeFile(path)
	if err != nil {
		logger.Error("Failed to decode image for display", "error", err)
		return nil, err
	}
	preview := imaging.Thumbnail(display, s.maxWidth, s.maxHeight)

	score, err := s.classify(path)
	if err != nil {
		logger.Error("Failed to classify image", "error", err)
		return nil, err
	}

	if _, ok := verdict.Interpret(score); !ok {
		logger.Error("Classifier returned a score outside [0, 1]", "score", score)
		return nil, errors.Wrapf(ErrInvalidScore, "%v", score)
	}

	if s.machine.Current() != state.StateImageSelected {
		if err := s.machine.Transition(state.StateImageSelected); err != nil {
			return nil, err
		}
	}

	logger.Info("Image classified", "score", score, "preview", preview.Bounds().Size())
	return &Result{Path: path, Preview: preview, Score: score}, nil
}

// MarkShown records that the verdict for the last selection is on screen.
func (s *Selector) MarkShown() error {
	return s.machine.Transition(state.StateShowingResult)
}

func (s *Selector) classify(path string) (float32, error) {
	if s.predictor == nil {
		return 0, errors.New("no model loaded")
	}

	img, err := imaging.DecodeFile(path)
	if err != nil {
		return 0, err
	}

	tensor, err := imaging.Preprocess(img, s.predictor.InputSize())
	if err != nil {
		return 0, errors.Wrap(err, "preprocess")
	}

	start := time.Now()
	score, err := s.predictor.Predict(tensor)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("Forward pass", "elapsed", time.Since(start))
	return score, nil
}
