// Package roster holds the in-memory list of people shown by the application.
//
// A Roster keeps one authoritative ordered collection. The filtered view is
// computed from it on demand, so the two can never drift apart.
package roster

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mmynk/roster/internal/models"
)

// Roster is the in-memory mirror of the person store.
// It is not safe for concurrent use.
type Roster struct {
	people []models.Person
	filter string
	folded string
}

// New creates a roster holding a copy of people.
func New(people []models.Person) *Roster {
	r := &Roster{}
	r.Reset(people)
	return r
}

// Reset replaces the full collection with a copy of people.
// The current filter is kept.
func (r *Roster) Reset(people []models.Person) {
	r.people = append([]models.Person(nil), people...)
}

// Len returns the size of the full roster.
func (r *Roster) Len() int {
	return len(r.people)
}

// All returns a copy of the full roster in display order.
func (r *Roster) All() []models.Person {
	return append([]models.Person(nil), r.people...)
}

// Filter returns the current filter text.
func (r *Roster) Filter() string {
	return r.filter
}

// SetFilter changes the filter text. An empty text shows everyone.
func (r *Roster) SetFilter(text string) {
	r.filter = text
	r.folded = fold(text)
}

// Visible returns the filtered view: every person whose first name contains
// the filter text, compared case-insensitively.
func (r *Roster) Visible() []models.Person {
	if r.filter == "" {
		return r.All()
	}

	visible := make([]models.Person, 0, len(r.people))
	for _, p := range r.people {
		if strings.Contains(fold(p.FirstName), r.folded) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Contains reports whether a person equal to p (see models.Person.SameAs) is
// already in the roster.
func (r *Roster) Contains(p models.Person) bool {
	for _, existing := range r.people {
		if existing.SameAs(p) {
			return true
		}
	}
	return false
}

// Find returns the person with the given ID.
func (r *Roster) Find(id int64) (models.Person, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.people[i], true
	}
	return models.Person{}, false
}

// Add appends p to the end of the roster.
func (r *Roster) Add(p models.Person) {
	r.people = append(r.people, p)
}

// Remove drops the person with the given ID. It reports whether anyone was removed.
func (r *Roster) Remove(id int64) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.people = append(r.people[:i], r.people[i+1:]...)
	return true
}

func (r *Roster) indexOf(id int64) int {
	for i, p := range r.people {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// fold maps s to its case-folded form for caseless matching.
// A Caser keeps state between calls, so a fresh one is used each time.
func fold(s string) string {
	return cases.Fold().String(s)
}
