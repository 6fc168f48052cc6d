package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tubeview/tubeview/internal/comments"
	"github.com/tubeview/tubeview/internal/config"
	"github.com/tubeview/tubeview/internal/feed"
	"github.com/tubeview/tubeview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tubeview.tubeview"
	AppName = "TubeView"
)

func main() {
	// Log version information
	fmt.Printf("TubeView v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	settings := config.NewSettings(myApp)
	myWindow.Resize(fyne.NewSize(
		float32(settings.GetWindowWidth()),
		float32(settings.GetWindowHeight()),
	))

	// Initialize services
	feedSvc := feed.NewService(feed.NewRandSource())
	store := comments.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, feedSvc, store)

	// Show and run
	myWindow.ShowAndRun()
}
