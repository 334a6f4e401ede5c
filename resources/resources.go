package resources

import (
	"embed"

	"fyne.io/fyne/v2"
)

//go:embed icons/app_256.png
var iconData []byte

func GetAppIcon() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "app_256.png",
		StaticContent: iconData,
	}
}

// Bundled illustrations.
const (
	CatImage         = "images/cat.png"
	DogImage         = "images/dog.png"
	CatOrDogImage    = "images/cat_or_dog.png"
	CatsAndDogsImage = "images/cats_and_dogs.png"
)

//go:embed images/*.png
var ImageFiles embed.FS

//go:embed config.yaml
var ConfigFiles embed.FS
