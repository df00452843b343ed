package controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/roster/internal/metrics"
	"github.com/mmynk/roster/internal/middleware"
	"github.com/mmynk/roster/internal/models"
	"github.com/mmynk/roster/internal/roster"
	"github.com/mmynk/roster/internal/storage"
)

// Mode tells whether a form creates a new person or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Status is the state a form is left in after an action.
type Status int

const (
	// StatusOpen means the save was rejected and the form keeps its input.
	StatusOpen Status = iota
	// StatusCommitted means the person was stored and the roster updated.
	StatusCommitted
	// StatusCancelled means the user dismissed the form without saving.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusCommitted:
		return "committed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is what a form hands back to the list.
type Result struct {
	Status Status
	Mode   Mode
	// Person is the stored record when Status is StatusCommitted.
	Person models.Person
}

// FormController validates and commits one create or update.
// It is created by ListController.Add or ListController.Edit.
type FormController struct {
	store    storage.PersonStore
	roster   *roster.Roster
	notifier Notifier
	metrics  *metrics.Recorder

	// original is the person being edited; nil in create mode.
	original *models.Person
	input    Input
}

func newFormController(store storage.PersonStore, r *roster.Roster, notifier Notifier, rec *metrics.Recorder, draft *models.Person) *FormController {
	f := &FormController{
		store:    store,
		roster:   r,
		notifier: notifier,
		metrics:  rec,
	}
	if draft != nil {
		original := *draft
		f.original = &original
		f.input = inputOf(original)
	}
	return f
}

// Mode reports whether the form creates or edits.
func (f *FormController) Mode() Mode {
	if f.original != nil {
		return ModeEdit
	}
	return ModeCreate
}

// Original returns the person being edited. ok is false in create mode.
func (f *FormController) Original() (p models.Person, ok bool) {
	if f.original == nil {
		return models.Person{}, false
	}
	return *f.original, true
}

// Input returns the text the form fields should show: the draft when editing,
// empty after a commit or in create mode, or the last rejected input.
func (f *FormController) Input() Input {
	return f.input
}

// SetNotifier redirects the form's notifications, e.g. to its own window.
func (f *FormController) SetNotifier(n Notifier) {
	f.notifier = n
}

// Save validates in and creates or updates the person.
//
// Validation, duplicate and store errors leave the roster untouched and the
// result StatusOpen. Validation and duplicate errors are also notified; store
// errors are only returned.
func (f *FormController) Save(ctx context.Context, in Input) (Result, error) {
	f.input = in
	mode := f.Mode()

	var res Result
	err := middleware.Action(ctx, mode.actionName(), f.metrics, func(ctx context.Context) error {
		var err error
		if mode == ModeCreate {
			res, err = f.create(ctx, in)
		} else {
			res, err = f.update(ctx, in)
		}
		return err
	})
	if err != nil {
		return Result{Status: StatusOpen, Mode: mode}, err
	}

	return res, nil
}

// Cancel discards the form without touching the store or the roster.
func (f *FormController) Cancel() Result {
	slog.Debug("Form cancelled", "mode", f.Mode().String())
	return Result{Status: StatusCancelled, Mode: f.Mode()}
}

func (f *FormController) create(ctx context.Context, in Input) (Result, error) {
	candidate, err := parseInput(in)
	if err != nil {
		return Result{}, f.reject(err)
	}
	if f.roster.Contains(candidate) {
		return Result{}, f.reject(ErrDuplicate)
	}

	id, err := f.store.InsertPerson(ctx, candidate)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create person: %w", err)
	}
	candidate.ID = id

	f.roster.Add(candidate)
	f.metrics.SetPeople(f.roster.Len())
	slog.Info("Person created", "person_id", candidate.ID)

	f.commit(msgPersonAdded)
	return Result{Status: StatusCommitted, Mode: ModeCreate, Person: candidate}, nil
}

func (f *FormController) update(ctx context.Context, in Input) (Result, error) {
	candidate, err := parseInput(in)
	if err != nil {
		return Result{}, f.reject(err)
	}
	candidate.ID = f.original.ID
	if f.roster.Contains(candidate) {
		return Result{}, f.reject(ErrDuplicate)
	}

	if err := f.store.UpdatePerson(ctx, *f.original, candidate); err != nil {
		return Result{}, fmt.Errorf("failed to update person: %w", err)
	}

	f.roster.Remove(f.original.ID)
	f.roster.Add(candidate)
	f.original = &candidate
	slog.Info("Person updated", "person_id", candidate.ID)

	f.commit(msgPersonUpdated)
	return Result{Status: StatusCommitted, Mode: ModeEdit, Person: candidate}, nil
}

func (f *FormController) reject(err error) error {
	f.notify(SeverityError, err.Error())
	return err
}

func (f *FormController) commit(message string) {
	f.notify(SeverityInfo, message)
	f.input = Input{}
}

func (f *FormController) notify(severity Severity, message string) {
	if f.notifier != nil {
		f.notifier.Notify(severity, message)
	}
}

func (m Mode) actionName() string {
	if m == ModeEdit {
		return "update"
	}
	return "create"
}
