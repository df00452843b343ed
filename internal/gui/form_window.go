package gui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mmynk/roster/internal/controller"
)

const (
	formWidth  = 600
	formHeight = 300
)

// formWindow is the auxiliary window used to add or edit one person.
// It closes on a committed save or on cancel and stays open with the user's
// input after a rejected save.
type formWindow struct {
	ctx    context.Context
	window fyne.Window
	form   *controller.FormController
	onDone func(controller.Result)
	result controller.Result

	firstName *widget.Entry
	lastName  *widget.Entry
	age       *widget.Entry
	save      *widget.Button
	cancel    *widget.Button
}

func newFormWindow(ctx context.Context, a fyne.App, parent fyne.Window, form *controller.FormController, onDone func(controller.Result)) *formWindow {
	title := "New Person"
	if form.Mode() == controller.ModeEdit {
		title = "Edit Person"
	}

	fw := &formWindow{
		ctx:    ctx,
		window: a.NewWindow(title),
		form:   form,
		onDone: onDone,
		result: controller.Result{Status: controller.StatusOpen, Mode: form.Mode()},
	}

	// Confirmations go to the list window, mistakes stay on the form.
	form.SetNotifier(NewDialogNotifier(parent, fw.window))

	fw.firstName = widget.NewEntry()
	fw.lastName = widget.NewEntry()
	fw.age = widget.NewEntry()
	fw.fill(form.Input())

	fw.save = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), fw.onSave)
	fw.save.Importance = widget.HighImportance
	fw.cancel = widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), fw.onCancel)

	fields := widget.NewForm(
		widget.NewFormItem("First name", fw.firstName),
		widget.NewFormItem("Last name", fw.lastName),
		widget.NewFormItem("Age", fw.age),
	)
	buttons := container.NewHBox(layout.NewSpacer(), fw.cancel, fw.save)

	fw.window.SetContent(container.NewBorder(nil, buttons, nil, nil, fields))
	fw.window.Resize(fyne.NewSize(formWidth, formHeight))
	fw.window.SetOnClosed(fw.onClosed)

	return fw
}

// Show displays the window.
func (fw *formWindow) Show() {
	fw.window.Show()
	fw.window.Canvas().Focus(fw.firstName)
}

func (fw *formWindow) input() controller.Input {
	return controller.Input{
		FirstName: fw.firstName.Text,
		LastName:  fw.lastName.Text,
		Age:       fw.age.Text,
	}
}

func (fw *formWindow) fill(in controller.Input) {
	fw.firstName.SetText(in.FirstName)
	fw.lastName.SetText(in.LastName)
	fw.age.SetText(in.Age)
}

func (fw *formWindow) onSave() {
	res, err := fw.form.Save(fw.ctx, fw.input())
	if err != nil {
		if !controller.Recoverable(err) {
			slog.Error("Failed to save person", "mode", fw.form.Mode().String(), "error", err)
			dialog.ShowError(err, fw.window)
		}
		return
	}

	fw.result = res
	fw.fill(fw.form.Input())
	fw.window.Close()
}

func (fw *formWindow) onCancel() {
	fw.result = fw.form.Cancel()
	fw.window.Close()
}

// onClosed also runs when the window manager closes the window, which counts
// as a cancel.
func (fw *formWindow) onClosed() {
	if fw.result.Status == controller.StatusOpen {
		fw.result = fw.form.Cancel()
	}
	if fw.onDone != nil {
		fw.onDone(fw.result)
	}
}
