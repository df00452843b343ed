package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/roster/internal/middleware"
	"github.com/mmynk/roster/internal/models"
	"github.com/mmynk/roster/internal/storage"
)

// Ensure instrumentedStore implements storage.PersonStore
var _ storage.PersonStore = (*instrumentedStore)(nil)

type instrumentedStore struct {
	next storage.PersonStore
	rec  *Recorder
}

// InstrumentStore wraps store so that every call's latency is recorded.
// A nil recorder returns store unchanged.
func InstrumentStore(store storage.PersonStore, rec *Recorder) storage.PersonStore {
	if rec == nil {
		return store
	}
	return &instrumentedStore{next: store, rec: rec}
}

func (s *instrumentedStore) ListPeople(ctx context.Context) ([]models.Person, error) {
	defer s.observe(ctx, "list", time.Now())
	return s.next.ListPeople(ctx)
}

func (s *instrumentedStore) InsertPerson(ctx context.Context, person models.Person) (int64, error) {
	defer s.observe(ctx, "insert", time.Now())
	return s.next.InsertPerson(ctx, person)
}

func (s *instrumentedStore) UpdatePerson(ctx context.Context, old, updated models.Person) error {
	defer s.observe(ctx, "update", time.Now())
	return s.next.UpdatePerson(ctx, old, updated)
}

func (s *instrumentedStore) DeletePerson(ctx context.Context, person models.Person) error {
	defer s.observe(ctx, "delete", time.Now())
	return s.next.DeletePerson(ctx, person)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}

func (s *instrumentedStore) observe(ctx context.Context, op string, start time.Time) {
	d := time.Since(start)
	s.rec.ObserveStoreCall(op, d)
	slog.DebugContext(ctx, "Store call", "op", op, "op_id", middleware.OpID(ctx), "duration_ms", d.Milliseconds())
}
