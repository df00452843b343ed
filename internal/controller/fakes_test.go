package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/roster/internal/models"
)

var errStoreDown = errors.New("database is locked")

// fakeStore records every call and can be told to fail.
type fakeStore struct {
	people  []models.Person
	nextID  int64
	fail    error
	inserts []models.Person
	updates [][2]models.Person
	deletes []int64
}

func newFakeStore(people ...models.Person) *fakeStore {
	s := &fakeStore{people: people, nextID: 100}
	return s
}

func (s *fakeStore) ListPeople(ctx context.Context) ([]models.Person, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return append([]models.Person(nil), s.people...), nil
}

func (s *fakeStore) InsertPerson(ctx context.Context, p models.Person) (int64, error) {
	s.inserts = append(s.inserts, p)
	if s.fail != nil {
		return 0, s.fail
	}
	s.nextID++
	p.ID = s.nextID
	s.people = append(s.people, p)
	return p.ID, nil
}

func (s *fakeStore) UpdatePerson(ctx context.Context, old, updated models.Person) error {
	s.updates = append(s.updates, [2]models.Person{old, updated})
	if s.fail != nil {
		return s.fail
	}
	for i := range s.people {
		if s.people[i].ID == old.ID {
			s.people[i] = updated
			return nil
		}
	}
	return errors.New("person not found")
}

func (s *fakeStore) DeletePerson(ctx context.Context, p models.Person) error {
	s.deletes = append(s.deletes, p.ID)
	if s.fail != nil {
		return s.fail
	}
	for i := range s.people {
		if s.people[i].ID == p.ID {
			s.people = append(s.people[:i], s.people[i+1:]...)
			return nil
		}
	}
	return errors.New("person not found")
}

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) mutations() int {
	return len(s.inserts) + len(s.updates) + len(s.deletes)
}

type notification struct {
	severity Severity
	message  string
}

// recordingNotifier keeps every notification in order.
type recordingNotifier struct {
	got []notification
}

func (n *recordingNotifier) Notify(severity Severity, message string) {
	n.got = append(n.got, notification{severity, message})
}

func (n *recordingNotifier) last(t *testing.T) notification {
	t.Helper()
	if len(n.got) == 0 {
		t.Fatal("expected a notification, got none")
	}
	return n.got[len(n.got)-1]
}

var (
	ana  = models.Person{ID: 1, FirstName: "Ana", LastName: "Ruiz", Age: 30}
	luis = models.Person{ID: 2, FirstName: "Luis", LastName: "Diaz", Age: 41}
)

// setupList returns an initialized list over a fake store holding people.
func setupList(t *testing.T, people ...models.Person) (*ListController, *fakeStore, *recordingNotifier) {
	t.Helper()

	store := newFakeStore(people...)
	notifier := &recordingNotifier{}
	list := NewListController(store, notifier, nil)
	if err := list.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	return list, store, notifier
}
