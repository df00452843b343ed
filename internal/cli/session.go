package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmynk/roster/internal/config"
	"github.com/mmynk/roster/internal/controller"
	"github.com/mmynk/roster/internal/metrics"
	"github.com/mmynk/roster/internal/storage"
	"github.com/mmynk/roster/internal/storage/sqlite"
)

// session is the store and metrics shared by one command invocation.
type session struct {
	cfg     *config.Config
	store   storage.PersonStore
	metrics *metrics.Recorder
}

// openSession opens the SQLite store. Metrics are only collected when a
// metrics file is configured.
func openSession(cfg *config.Config) (*session, error) {
	sqlStore, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	version, err := sqlStore.SchemaVersion()
	if err != nil {
		sqlStore.Close()
		return nil, err
	}
	slog.Debug("Storage initialized", "database", cfg.DatabasePath, "schema_version", version)

	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		rec = metrics.New()
	}

	return &session{
		cfg:     cfg,
		store:   metrics.InstrumentStore(sqlStore, rec),
		metrics: rec,
	}, nil
}

// listController returns a list controller printing notifications to w.
func (s *session) listController(w io.Writer) *controller.ListController {
	return controller.NewListController(s.store, writerNotifier(w), s.metrics)
}

// Close flushes metrics and closes the store.
func (s *session) Close() error {
	var errs []error
	if err := s.metrics.WriteTextfile(s.cfg.MetricsFile); err != nil {
		errs = append(errs, err)
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
	}
	return errors.Join(errs...)
}

// writerNotifier prints notifications as "<severity>: <message>" lines.
func writerNotifier(w io.Writer) controller.Notifier {
	return controller.NotifierFunc(func(severity controller.Severity, message string) {
		fmt.Fprintf(w, "%s: %s\n", severity, message)
	})
}
