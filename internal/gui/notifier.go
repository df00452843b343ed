package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/mmynk/roster/internal/controller"
)

// dialogNotifier shows controller notifications as modal dialogs.
// Confirmations and errors can target different windows, so a form can report
// its mistakes on itself while a successful save is confirmed on the main
// window the form is about to return to.
type dialogNotifier struct {
	info fyne.Window
	err  fyne.Window
}

// NewDialogNotifier returns a notifier showing information dialogs on info and
// error dialogs on errWin.
func NewDialogNotifier(info, errWin fyne.Window) controller.Notifier {
	return &dialogNotifier{info: info, err: errWin}
}

func (n *dialogNotifier) Notify(severity controller.Severity, message string) {
	switch severity {
	case controller.SeverityInfo:
		dialog.ShowInformation("Information", message, n.info)
	default:
		dialog.ShowError(errors.New(message), n.err)
	}
}
