package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tubeview/tubeview/internal/comments"
	"github.com/tubeview/tubeview/internal/feed"
	"github.com/tubeview/tubeview/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.tubeview.tubeview")
	myWindow := myApp.NewWindow("TubeView")
	myWindow.Resize(fyne.NewSize(800, 600))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, feed.NewService(nil), comments.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
