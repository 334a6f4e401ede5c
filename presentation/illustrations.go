package presentation

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"catdog-go/infrastructure/imaging"
	"catdog-go/resources"
)

// Illustrations are the bundled images, already scaled for display.
type Illustrations struct {
	Cat         image.Image
	Dog         image.Image
	CatOrDog    image.Image
	CatsAndDogs image.Image
}

// LoadIllustrations decodes the bundled images from fsys. Verdict icons are
// bounded to iconSize, the banner to bannerSize.
func LoadIllustrations(fsys fs.FS, iconSize, bannerSize int) (*Illustrations, error) {
	load := func(name string, bound int) (image.Image, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		img, _, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		return imaging.Thumbnail(img, bound, bound), nil
	}

	var ill Illustrations
	var err error
	if ill.Cat, err = load(resources.CatImage, iconSize); err != nil {
		return nil, err
	}
	if ill.Dog, err = load(resources.DogImage, iconSize); err != nil {
		return nil, err
	}
	if ill.CatOrDog, err = load(resources.CatOrDogImage, iconSize); err != nil {
		return nil, err
	}
	if ill.CatsAndDogs, err = load(resources.CatsAndDogsImage, bannerSize); err != nil {
		return nil, err
	}
	return &ill, nil
}
