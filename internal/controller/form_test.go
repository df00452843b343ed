package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/roster/internal/models"
)

func TestCreateValid(t *testing.T) {
	list, store, notifier := setupList(t, ana)
	form := list.Add()

	if form.Mode() != ModeCreate {
		t.Fatalf("Mode() = %v, want create", form.Mode())
	}
	if form.Input() != (Input{}) {
		t.Fatalf("create form should start empty, got %+v", form.Input())
	}

	res, err := form.Save(context.Background(), Input{FirstName: "Luis", LastName: "Diaz", Age: "41"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if res.Status != StatusCommitted || res.Mode != ModeCreate {
		t.Errorf("result = %+v, want committed create", res)
	}
	if res.Person.ID != 101 {
		t.Errorf("expected store-issued ID 101, got %d", res.Person.ID)
	}
	if got := len(list.People()); got != 2 {
		t.Errorf("roster size = %d, want 2", got)
	}
	if got := list.People()[1]; got != res.Person {
		t.Errorf("appended person = %+v, want %+v", got, res.Person)
	}
	if len(store.inserts) != 1 || store.inserts[0].ID != 0 {
		t.Errorf("expected one insert without ID, got %+v", store.inserts)
	}
	if n := notifier.last(t); n.severity != SeverityInfo || n.message != "person added successfully" {
		t.Errorf("notification = %+v", n)
	}
	if form.Input() != (Input{}) {
		t.Errorf("fields should be cleared after commit, got %+v", form.Input())
	}
}

func TestCreateMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantMsg string
	}{
		{
			name:    "all missing",
			input:   Input{},
			wantMsg: "first name is required\nlast name is required\nage is required",
		},
		{
			name:    "first name only",
			input:   Input{LastName: "Diaz", Age: "41"},
			wantMsg: "first name is required\n",
		},
		{
			name:    "last name only",
			input:   Input{FirstName: "Luis", Age: "41"},
			wantMsg: "last name is required\n",
		},
		{
			name:    "age only",
			input:   Input{FirstName: "Luis", LastName: "Diaz"},
			wantMsg: "age is required",
		},
		{
			name:    "first name and age",
			input:   Input{LastName: "Diaz"},
			wantMsg: "first name is required\nage is required",
		},
		{
			name:    "empty check wins over invalid age",
			input:   Input{FirstName: "Luis", Age: "abc"},
			wantMsg: "last name is required\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, store, notifier := setupList(t, ana)
			form := list.Add()

			res, err := form.Save(context.Background(), tt.input)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.InvalidAge {
				t.Error("missing fields must not evaluate the age")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if res.Status != StatusOpen {
				t.Errorf("status = %v, want open", res.Status)
			}
			if store.mutations() != 0 || len(list.People()) != 1 {
				t.Errorf("rejected save mutated state: store=%d roster=%d", store.mutations(), len(list.People()))
			}
			if n := notifier.last(t); n.severity != SeverityError || n.message != tt.wantMsg {
				t.Errorf("notification = %+v", n)
			}
			if form.Input() != tt.input {
				t.Errorf("input should be kept after rejection, got %+v", form.Input())
			}
		})
	}
}

func TestInvalidAge(t *testing.T) {
	for _, age := range []string{"0", "-3", "abc", "4.5", " 30", "99999999999999999999"} {
		t.Run(age, func(t *testing.T) {
			list, store, notifier := setupList(t, ana)

			_, err := list.Add().Save(context.Background(), Input{FirstName: "Luis", LastName: "Diaz", Age: age})

			if err == nil || err.Error() != "age must be a number greater than zero" {
				t.Fatalf("err = %v, want invalid age", err)
			}
			if !Recoverable(err) {
				t.Error("invalid age should be recoverable")
			}
			if store.mutations() != 0 || len(list.People()) != 1 {
				t.Error("invalid age mutated state")
			}
			if n := notifier.last(t); n.severity != SeverityError {
				t.Errorf("notification = %+v", n)
			}
		})
	}
}

func TestCreateDuplicate(t *testing.T) {
	list, store, notifier := setupList(t, ana)

	res, err := list.Add().Save(context.Background(), Input{FirstName: "Ana", LastName: "Ruiz", Age: "30"})

	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
	if res.Status != StatusOpen {
		t.Errorf("status = %v, want open", res.Status)
	}
	if store.mutations() != 0 || len(list.People()) != 1 {
		t.Error("duplicate mutated state")
	}
	if n := notifier.last(t); n.message != "person already exists" {
		t.Errorf("notification = %+v", n)
	}
}

func TestCreateStoreFailure(t *testing.T) {
	list, store, notifier := setupList(t, ana)
	store.fail = errStoreDown

	res, err := list.Add().Save(context.Background(), Input{FirstName: "Luis", LastName: "Diaz", Age: "41"})

	if !errors.Is(err, errStoreDown) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
	if Recoverable(err) {
		t.Error("store failure must not be recoverable")
	}
	if res.Status != StatusOpen {
		t.Errorf("status = %v, want open", res.Status)
	}
	if len(list.People()) != 1 {
		t.Error("roster changed although the store failed")
	}
	if len(notifier.got) != 0 {
		t.Errorf("store failures are left to the caller, got %+v", notifier.got)
	}
}

func TestUpdate(t *testing.T) {
	list, store, notifier := setupList(t, ana, luis)

	selected := list.People()[0]
	form, err := list.Edit(&selected)
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if form.Mode() != ModeEdit {
		t.Fatalf("Mode() = %v, want edit", form.Mode())
	}
	if want := (Input{FirstName: "Ana", LastName: "Ruiz", Age: "30"}); form.Input() != want {
		t.Fatalf("edit form input = %+v, want %+v", form.Input(), want)
	}

	res, err := form.Save(context.Background(), Input{FirstName: "Ana", LastName: "Ruiz", Age: "31"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	want := models.Person{ID: 1, FirstName: "Ana", LastName: "Ruiz", Age: 31}
	if res.Status != StatusCommitted || res.Mode != ModeEdit || res.Person != want {
		t.Errorf("result = %+v", res)
	}
	if len(store.updates) != 1 || store.updates[0] != [2]models.Person{ana, want} {
		t.Errorf("store updates = %+v", store.updates)
	}

	people := list.People()
	if len(people) != 2 {
		t.Fatalf("roster size = %d, want 2", len(people))
	}
	if people[0] != luis || people[1] != want {
		t.Errorf("roster = %+v, want original removed and candidate appended", people)
	}
	if n := notifier.last(t); n.severity != SeverityInfo || n.message != "person updated successfully" {
		t.Errorf("notification = %+v", n)
	}
	if form.Input() != (Input{}) {
		t.Errorf("fields should be cleared after commit, got %+v", form.Input())
	}
}

func TestUpdateDuplicate(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"same as another person", Input{FirstName: "Luis", LastName: "Diaz", Age: "41"}},
		{"unchanged record", Input{FirstName: "Ana", LastName: "Ruiz", Age: "30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, store, _ := setupList(t, ana, luis)
			selected := ana

			form, err := list.Edit(&selected)
			if err != nil {
				t.Fatalf("Edit failed: %v", err)
			}

			_, err = form.Save(context.Background(), tt.input)
			if !errors.Is(err, ErrDuplicate) {
				t.Fatalf("err = %v, want ErrDuplicate", err)
			}
			if store.mutations() != 0 {
				t.Error("duplicate update reached the store")
			}
			if got := list.People(); got[0] != ana || got[1] != luis {
				t.Errorf("roster changed: %+v", got)
			}
		})
	}
}

func TestUpdateValidation(t *testing.T) {
	list, store, _ := setupList(t, ana)
	selected := ana
	form, _ := list.Edit(&selected)

	_, err := form.Save(context.Background(), Input{FirstName: "Ana", LastName: "", Age: "x"})
	if err == nil || err.Error() != "last name is required\n" {
		t.Errorf("err = %v, want missing last name", err)
	}

	_, err = form.Save(context.Background(), Input{FirstName: "Ana", LastName: "Ruiz", Age: "0"})
	if err == nil || err.Error() != "age must be a number greater than zero" {
		t.Errorf("err = %v, want invalid age", err)
	}

	if store.mutations() != 0 {
		t.Error("invalid update reached the store")
	}
}

func TestUpdateStoreFailure(t *testing.T) {
	list, store, _ := setupList(t, ana)
	store.fail = errStoreDown
	selected := ana
	form, _ := list.Edit(&selected)

	_, err := form.Save(context.Background(), Input{FirstName: "Ana", LastName: "Ruiz", Age: "31"})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
	if got := list.People(); len(got) != 1 || got[0] != ana {
		t.Errorf("roster changed although the store failed: %+v", got)
	}
	if orig, _ := form.Original(); orig != ana {
		t.Errorf("form original changed: %+v", orig)
	}
}

func TestEditCopiesDraft(t *testing.T) {
	list, _, _ := setupList(t, ana)
	selected := ana

	form, _ := list.Edit(&selected)
	selected.FirstName = "Changed"

	if orig, ok := form.Original(); !ok || orig != ana {
		t.Errorf("Original() = %+v, %v; want a copy of the selection", orig, ok)
	}
}

func TestCancel(t *testing.T) {
	list, store, notifier := setupList(t, ana)

	res := list.Add().Cancel()
	if res.Status != StatusCancelled || res.Mode != ModeCreate {
		t.Errorf("result = %+v", res)
	}

	selected := ana
	form, _ := list.Edit(&selected)
	if res := form.Cancel(); res.Status != StatusCancelled || res.Mode != ModeEdit {
		t.Errorf("result = %+v", res)
	}

	if store.mutations() != 0 || len(notifier.got) != 0 {
		t.Error("cancel must not touch the store or notify")
	}
}

func TestRejectedSavesLeaveRosterUnchanged(t *testing.T) {
	list, _, _ := setupList(t, models.Person{ID: 1, FirstName: "Ana", LastName: "Ruiz", Age: 30})

	_, err := list.Add().Save(context.Background(), Input{FirstName: "Ana", LastName: "Ruiz", Age: "30"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
	if len(list.People()) != 1 {
		t.Errorf("roster size = %d, want 1", len(list.People()))
	}

	_, err = list.Add().Save(context.Background(), Input{FirstName: "Luis", LastName: "Diaz", Age: "0"})
	if err == nil || err.Error() != "age must be a number greater than zero" {
		t.Errorf("err = %v, want invalid age", err)
	}
	if len(list.People()) != 1 {
		t.Errorf("roster size = %d, want 1", len(list.People()))
	}
}
