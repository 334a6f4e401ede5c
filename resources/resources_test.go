package resources

import (
	"bytes"
	"image"
	_ "image/png"
	"io/fs"
	"testing"
)

func TestBundledImagesDecode(t *testing.T) {
	for _, name := range []string{CatImage, DogImage, CatOrDogImage, CatsAndDogsImage} {
		data, err := fs.ReadFile(ImageFiles, name)
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", name, err)
		}
		if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
			t.Errorf("Decode(%s) error = %v", name, err)
		}
	}
}

func TestAppIcon(t *testing.T) {
	icon := GetAppIcon()
	if icon.Name() != "app_256.png" {
		t.Errorf("Name() = %v, want app_256.png", icon.Name())
	}
	if len(icon.Content()) == 0 {
		t.Error("icon content is empty")
	}
}

func TestConfigEmbedded(t *testing.T) {
	if _, err := fs.Stat(ConfigFiles, "config.yaml"); err != nil {
		t.Errorf("config.yaml not embedded: %v", err)
	}
}
