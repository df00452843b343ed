// Package gui is the fyne desktop surface of the roster.
package gui

import (
	"context"

	"fyne.io/fyne/v2"

	"github.com/mmynk/roster/internal/controller"
	"github.com/mmynk/roster/internal/metrics"
	"github.com/mmynk/roster/internal/storage"
)

const (
	AppID   = "io.github.mmynk.roster"
	AppName = "People"
)

// Application wires the main window to the list controller.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	list    *controller.ListController
}

// NewApplication creates the main window of fyneApp. rec may be nil.
func NewApplication(fyneApp fyne.App, store storage.PersonStore, rec *metrics.Recorder, width, height int) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(width), float32(height)))
	window.CenterOnScreen()
	window.SetMaster()

	return &Application{
		fyneApp: fyneApp,
		window:  window,
		list:    controller.NewListController(store, NewDialogNotifier(window, window), rec),
	}
}

// Run loads the roster and blocks until the main window is closed.
// A failed initial load is returned before any window is shown.
func (a *Application) Run(ctx context.Context) error {
	if err := a.list.Initialize(ctx); err != nil {
		return err
	}

	view := NewListView(ctx, a.fyneApp, a.window, a.list)
	a.window.SetContent(view.Content())
	a.window.ShowAndRun()

	return nil
}
