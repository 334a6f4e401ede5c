// Package main is the entry point for the cats vs dogs classifier.
package main

import (
	"os"

	"catdog-go/application"
	"catdog-go/infrastructure/config"
	"catdog-go/infrastructure/inference"
	"catdog-go/infrastructure/logging"
	"catdog-go/presentation"
	"catdog-go/resources"

	"fyne.io/fyne/v2/app"
)

func main() {
	// Initialize logging (dev: console only, prod: rotating file)
	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting classifier")

	cfg, err := config.LoadFromFS(resources.ConfigFiles)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// The window is never shown without a working model.
	classifier, err := inference.Open(inference.Config{
		ModelPath:   cfg.Model.Path,
		LibraryPath: cfg.Model.RuntimeLibrary,
		InputSize:   cfg.Model.InputSize,
		InputName:   cfg.Model.InputName,
		OutputName:  cfg.Model.OutputName,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to load model", "path", cfg.Model.Path, "error", err)
		os.Exit(1)
	}
	defer classifier.Close()

	illustrations, err := presentation.LoadIllustrations(resources.ImageFiles,
		cfg.Verdict.IconSize, cfg.Preview.BannerSize)
	if err != nil {
		logger.Error("Failed to load bundled images", "error", err)
		os.Exit(1)
	}

	selector := application.NewSelector(&application.SelectorConfig{
		Predictor:        classifier,
		PreviewMaxWidth:  cfg.Preview.MaxWidth,
		PreviewMaxHeight: cfg.Preview.MaxHeight,
		Logger:           logger,
	})

	fyneApp := app.New()
	fyneApp.SetIcon(resources.GetAppIcon())

	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:           fyneApp,
		Config:        cfg,
		Selector:      selector,
		Illustrations: illustrations,
		Logger:        logger,
	})

	mainWindow.Show()
	fyneApp.Run()

	logger.Info("Application shutdown complete")
}
