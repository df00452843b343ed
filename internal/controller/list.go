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

// ListController drives the people table: it loads the roster, filters it
// and dispatches add, edit and delete.
type ListController struct {
	store    storage.PersonStore
	roster   *roster.Roster
	notifier Notifier
	metrics  *metrics.Recorder
}

// NewListController creates a ListController with an empty roster.
// Call Initialize before use. rec may be nil.
func NewListController(store storage.PersonStore, notifier Notifier, rec *metrics.Recorder) *ListController {
	return &ListController{
		store:    store,
		roster:   roster.New(nil),
		notifier: notifier,
		metrics:  rec,
	}
}

// Initialize loads the roster from the store. The filtered view is derived
// from this single load.
func (l *ListController) Initialize(ctx context.Context) error {
	people, err := l.store.ListPeople(ctx)
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	l.roster.Reset(people)
	l.metrics.SetPeople(l.roster.Len())
	slog.Info("Roster loaded", "count", l.roster.Len())

	return nil
}

// People returns the full roster.
func (l *ListController) People() []models.Person {
	return l.roster.All()
}

// Visible returns the rows to display under the current filter.
func (l *ListController) Visible() []models.Person {
	return l.roster.Visible()
}

// Find returns the roster entry with the given ID.
func (l *ListController) Find(id int64) (models.Person, bool) {
	return l.roster.Find(id)
}

// Add returns a form in create mode.
func (l *ListController) Add() *FormController {
	slog.Debug("Opening form", "mode", ModeCreate.String())
	return newFormController(l.store, l.roster, l.notifier, l.metrics, nil)
}

// Edit returns a form in edit mode pre-filled with selected.
// A nil selection is notified and returned as ErrNoSelection.
func (l *ListController) Edit(selected *models.Person) (*FormController, error) {
	if selected == nil {
		l.notify(SeverityError, ErrNoSelection.Error())
		return nil, ErrNoSelection
	}

	slog.Debug("Opening form", "mode", ModeEdit.String(), "person_id", selected.ID)
	return newFormController(l.store, l.roster, l.notifier, l.metrics, selected), nil
}

// Delete removes selected from the store and then from the roster.
// A nil selection is notified and returned as ErrNoSelection. A store error is
// returned wrapped and leaves the roster untouched.
func (l *ListController) Delete(ctx context.Context, selected *models.Person) error {
	return middleware.Action(ctx, "delete", l.metrics, func(ctx context.Context) error {
		if selected == nil {
			l.notify(SeverityError, ErrNoSelection.Error())
			return ErrNoSelection
		}

		if err := l.store.DeletePerson(ctx, *selected); err != nil {
			return fmt.Errorf("failed to delete person: %w", err)
		}

		l.roster.Remove(selected.ID)
		l.metrics.SetPeople(l.roster.Len())
		slog.Info("Person deleted", "person_id", selected.ID)

		l.notify(SeverityInfo, msgPersonDeleted)
		return nil
	})
}

// Filter sets the first-name filter and returns the matching rows.
func (l *ListController) Filter(text string) []models.Person {
	l.roster.SetFilter(text)
	visible := l.roster.Visible()
	slog.Debug("Roster filtered", "filter", text, "visible", len(visible))
	return visible
}

func (l *ListController) notify(severity Severity, message string) {
	if l.notifier != nil {
		l.notifier.Notify(severity, message)
	}
}
