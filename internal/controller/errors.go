// Package controller implements the record-management workflow: the list
// controller behind the people table and the form controller behind the
// add/edit window.
package controller

import (
	"strings"

	"github.com/mmynk/roster/internal/middleware"
)

// userError is a mistake the user can fix. It is reported through the
// Notifier and never aborts the application.
type userError struct {
	msg string
}

func (e *userError) Error() string     { return e.msg }
func (e *userError) Recoverable() bool { return true }

var (
	// ErrNoSelection is returned by Edit and Delete when no row is selected.
	ErrNoSelection error = &userError{"select a record from the table; if there is none, add one"}

	// ErrDuplicate is returned when the candidate equals an existing person
	// by first name, last name and age.
	ErrDuplicate error = &userError{"person already exists"}
)

// Field names a form input.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldAge
)

func (f Field) String() string {
	switch f {
	case FieldFirstName:
		return "first name"
	case FieldLastName:
		return "last name"
	case FieldAge:
		return "age"
	default:
		return "unknown"
	}
}

// ValidationError reports rejected form input.
// Either Missing lists empty required fields, or InvalidAge is set.
type ValidationError struct {
	Missing    []Field
	InvalidAge bool
}

// invalidAgeMessage is shown for a non-numeric, zero or negative age.
const invalidAgeMessage = "age must be a number greater than zero"

// Error returns the user-facing message. Missing fields are listed one per
// line in form order; only the age line has no trailing newline.
func (e *ValidationError) Error() string {
	if e.InvalidAge {
		return invalidAgeMessage
	}

	var b strings.Builder
	for _, f := range e.Missing {
		b.WriteString(f.String())
		b.WriteString(" is required")
		if f != FieldAge {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Recoverable marks validation failures as user mistakes.
func (e *ValidationError) Recoverable() bool { return true }

// Recoverable reports whether err is a user mistake (validation, duplicate or
// missing selection) that has already been shown to the user, as opposed to
// a store failure the caller must handle.
func Recoverable(err error) bool {
	return middleware.IsRecoverable(err)
}
