// Package inference runs the pre-trained cat/dog network through ONNX Runtime.
package inference

import (
	"log/slog"
	"os"
	"sync"

	"catdog-go/infrastructure/imaging"
	"catdog-go/infrastructure/logging"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// ErrIncompatibleModel is returned when the model's inputs or outputs do not
// match a single-logit binary classifier over (1, size, size, 3) images.
var ErrIncompatibleModel = errors.New("incompatible model")

// Config describes the model to load.
type Config struct {
	ModelPath string
	// LibraryPath points at the onnxruntime shared library. Empty keeps the
	// onnxruntime_go default.
	LibraryPath string
	InputSize   int
	// InputName and OutputName are taken from the model when empty.
	InputName  string
	OutputName string
	Logger     *slog.Logger
}

// Classifier owns an ONNX Runtime session for a binary image classifier.
// It is created once at startup and never reloaded.
type Classifier struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	size    int
	logger  *slog.Logger
}

// Open loads the model at cfg.ModelPath and checks that it accepts
// (1, InputSize, InputSize, 3) float32 input and produces one scalar.
func Open(cfg Config) (*Classifier, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.L()
	}
	if cfg.InputSize <= 0 {
		return nil, errors.Errorf("invalid input size %d", cfg.InputSize)
	}

	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, errors.Wrap(err, "model file")
	}

	if err := initEnvironment(cfg.LibraryPath); err != nil {
		return nil, err
	}

	inputs, outputs, err := ort.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read model info from %s", cfg.ModelPath)
	}

	inName, err := pickInput(inputs, cfg.InputName, cfg.InputSize)
	if err != nil {
		return nil, err
	}
	outName, err := pickOutput(outputs, cfg.OutputName)
	if err != nil {
		return nil, err
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(imaging.TensorShape(cfg.InputSize)...))
	if err != nil {
		return nil, errors.Wrap(err, "create input tensor")
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		input.Destroy()
		return nil, errors.Wrap(err, "create output tensor")
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{inName}, []string{outName},
		[]ort.Value{input}, []ort.Value{output},
		nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, errors.Wrap(err, "create ONNX session")
	}

	cfg.Logger.Info("Model loaded",
		"path", cfg.ModelPath,
		"input", inName,
		"output", outName,
		"input_size", cfg.InputSize)

	return &Classifier{
		session: session,
		input:   input,
		output:  output,
		size:    cfg.InputSize,
		logger:  cfg.Logger,
	}, nil
}

func initEnvironment(libraryPath string) error {
	if ort.IsInitialized() {
		return nil
	}
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return errors.Wrap(err, "initialize ONNX Runtime")
	}
	return nil
}

// InputSize returns the square resolution the model expects.
func (c *Classifier) InputSize() int {
	return c.size
}

// Predict runs one forward pass and returns the sigmoid output, the
// probability that the image shows a dog.
func (c *Classifier) Predict(t *imaging.Tensor) (float32, error) {
	if t == nil {
		return 0, errors.New("nil tensor")
	}
	if !shapeEqual(t.Shape, imaging.TensorShape(c.size)) {
		return 0, errors.Errorf("tensor shape %v, model expects %v", t.Shape, imaging.TensorShape(c.size))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return 0, errors.New("classifier is closed")
	}

	copy(c.input.GetData(), t.Data)
	if err := c.session.Run(); err != nil {
		return 0, errors.Wrap(err, "inference failed")
	}

	score := c.output.GetData()[0]
	c.logger.Debug("Inference complete", "score", score)
	return score, nil
}

// Close releases the session, its tensors and the ONNX Runtime environment.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.input != nil {
		c.input.Destroy()
		c.input = nil
	}
	if c.output != nil {
		c.output.Destroy()
		c.output = nil
	}
	if c.session != nil {
		c.session.Destroy()
		c.session = nil
	}
	return ort.DestroyEnvironment()
}

func shapeEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
