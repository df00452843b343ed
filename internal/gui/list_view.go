package gui

import (
	"context"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mmynk/roster/internal/controller"
	"github.com/mmynk/roster/internal/models"
)

var columnTitles = [...]string{"First name", "Last name", "Age"}

// ListView is the main window content: filter entry, people table and the
// Add/Edit/Delete buttons.
type ListView struct {
	ctx    context.Context
	app    fyne.App
	window fyne.Window
	list   *controller.ListController

	// rows is the snapshot of the visible roster the table is drawing.
	rows     []models.Person
	selected int

	filter       *widget.Entry
	table        *widget.Table
	addButton    *widget.Button
	editButton   *widget.Button
	deleteButton *widget.Button
	content      fyne.CanvasObject
}

// NewListView builds the main window content over list.
func NewListView(ctx context.Context, a fyne.App, w fyne.Window, list *controller.ListController) *ListView {
	v := &ListView{
		ctx:      ctx,
		app:      a,
		window:   w,
		list:     list,
		selected: -1,
	}

	v.setupComponents()
	v.setupLayout()
	v.Refresh()

	return v
}

func (v *ListView) setupComponents() {
	v.filter = widget.NewEntry()
	v.filter.SetPlaceHolder("Filter by first name")
	v.filter.OnChanged = v.onFilter

	v.table = widget.NewTable(
		func() (int, int) { return len(v.rows), len(columnTitles) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(v.cellText(id))
		},
	)
	v.table.ShowHeaderRow = true
	v.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	v.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(columnTitles) {
			cell.(*widget.Label).SetText(columnTitles[id.Col])
		}
	}
	v.table.SetColumnWidth(0, 200)
	v.table.SetColumnWidth(1, 240)
	v.table.SetColumnWidth(2, 80)
	v.table.OnSelected = func(id widget.TableCellID) { v.selected = id.Row }
	v.table.OnUnselected = func(widget.TableCellID) { v.selected = -1 }

	v.addButton = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), v.onAdd)
	v.editButton = widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), v.onEdit)
	v.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), v.onDelete)
}

func (v *ListView) setupLayout() {
	buttons := container.NewHBox(
		layout.NewSpacer(),
		v.addButton,
		v.editButton,
		v.deleteButton,
	)

	v.content = container.NewBorder(v.filter, buttons, nil, nil, v.table)
}

// Content returns the root object to place in the window.
func (v *ListView) Content() fyne.CanvasObject {
	return v.content
}

// Refresh reloads the rows from the controller and clears the selection.
func (v *ListView) Refresh() {
	v.rows = v.list.Visible()
	v.table.UnselectAll()
	v.selected = -1
	v.table.Refresh()
}

func (v *ListView) cellText(id widget.TableCellID) string {
	if id.Row < 0 || id.Row >= len(v.rows) {
		return ""
	}
	p := v.rows[id.Row]
	switch id.Col {
	case 0:
		return p.FirstName
	case 1:
		return p.LastName
	case 2:
		return strconv.Itoa(p.Age)
	default:
		return ""
	}
}

// selectedPerson returns a copy of the selected row, or nil.
func (v *ListView) selectedPerson() *models.Person {
	if v.selected < 0 || v.selected >= len(v.rows) {
		return nil
	}
	p := v.rows[v.selected]
	return &p
}

func (v *ListView) onFilter(text string) {
	v.list.Filter(text)
	v.Refresh()
}

func (v *ListView) onAdd() {
	v.openForm(v.list.Add())
}

func (v *ListView) onEdit() {
	form, err := v.list.Edit(v.selectedPerson())
	if err != nil {
		// Already shown to the user by the controller.
		return
	}
	v.openForm(form)
}

func (v *ListView) onDelete() {
	err := v.list.Delete(v.ctx, v.selectedPerson())
	if err != nil && !controller.Recoverable(err) {
		v.showFailure(err)
	}
	v.Refresh()
}

func (v *ListView) openForm(form *controller.FormController) {
	fw := newFormWindow(v.ctx, v.app, v.window, form, func(res controller.Result) {
		slog.Debug("Form closed", "mode", res.Mode.String(), "status", res.Status.String())
		v.Refresh()
	})
	fw.Show()
}

func (v *ListView) showFailure(err error) {
	slog.Error("Action failed", "error", err)
	dialog.ShowError(err, v.window)
}
