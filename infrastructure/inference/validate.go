package inference

import (
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// pickInput returns the name of the image input. With an empty name the model
// must have exactly one input.
func pickInput(infos []ort.InputOutputInfo, name string, size int) (string, error) {
	info, err := pick(infos, name, "input")
	if err != nil {
		return "", err
	}
	if err := checkInput(info, size); err != nil {
		return "", err
	}
	return info.Name, nil
}

func pickOutput(infos []ort.InputOutputInfo, name string) (string, error) {
	info, err := pick(infos, name, "output")
	if err != nil {
		return "", err
	}
	if err := checkOutput(info); err != nil {
		return "", err
	}
	return info.Name, nil
}

func pick(infos []ort.InputOutputInfo, name, kind string) (ort.InputOutputInfo, error) {
	if name == "" {
		if len(infos) != 1 {
			return ort.InputOutputInfo{}, errors.Wrapf(ErrIncompatibleModel,
				"expected exactly one %s, model has %d", kind, len(infos))
		}
		return infos[0], nil
	}
	for _, info := range infos {
		if info.Name == name {
			return info, nil
		}
	}
	return ort.InputOutputInfo{}, errors.Wrapf(ErrIncompatibleModel, "model has no %s named %q", kind, name)
}

// checkInput accepts float32 tensors shaped (N, size, size, 3) where N is 1 or
// a dynamic batch dimension.
func checkInput(info ort.InputOutputInfo, size int) error {
	if err := checkFloatTensor(info); err != nil {
		return err
	}

	dims := info.Dimensions
	s := int64(size)
	if len(dims) != 4 || !batchDim(dims[0]) || dims[1] != s || dims[2] != s || dims[3] != 3 {
		return errors.Wrapf(ErrIncompatibleModel,
			"input %q has shape %v, want (1, %d, %d, 3)", info.Name, dims, size, size)
	}
	return nil
}

// checkOutput accepts a float32 tensor shaped (N, 1) where N is 1 or a
// dynamic batch dimension. It must match the (1, 1) tensor bound in Open.
func checkOutput(info ort.InputOutputInfo) error {
	if err := checkFloatTensor(info); err != nil {
		return err
	}

	dims := info.Dimensions
	if len(dims) != 2 || !batchDim(dims[0]) || dims[1] != 1 {
		return errors.Wrapf(ErrIncompatibleModel, "output %q has shape %v, want (1, 1)", info.Name, dims)
	}
	return nil
}

func checkFloatTensor(info ort.InputOutputInfo) error {
	if info.OrtValueType != ort.ONNXTypeTensor {
		return errors.Wrapf(ErrIncompatibleModel, "%q is a %v, not a tensor", info.Name, info.OrtValueType)
	}
	if info.DataType != ort.TensorElementDataTypeFloat {
		return errors.Wrapf(ErrIncompatibleModel, "%q holds %v, not float32", info.Name, info.DataType)
	}
	return nil
}

// batchDim reports whether d can hold a batch of one. Symbolic dimensions are
// reported as -1 (or 0 by some exporters).
func batchDim(d int64) bool {
	return d == 1 || d <= 0
}
