package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/export"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

const SnapshotFile = "vista-completa.csv"

// SnapshotWorker keeps a CSV export of the complete hierarchy on disk,
// rewriting it whenever a change event arrives.
type SnapshotWorker struct {
	HierarchyRepo repository.HierarchyRepositoryInterface
	Dir           string
	Log           *zap.Logger

	mu sync.Mutex
}

func NewSnapshotWorker(repo repository.HierarchyRepositoryInterface, dir string, log *zap.Logger) *SnapshotWorker {
	return &SnapshotWorker{HierarchyRepo: repo, Dir: dir, Log: log}
}

// Path is where the snapshot is written.
func (w *SnapshotWorker) Path() string {
	return filepath.Join(w.Dir, SnapshotFile)
}

// Handle regenerates the snapshot. Program events do not touch the
// hierarchy and are ignored.
func (w *SnapshotWorker) Handle(ctx context.Context, ev model.ChangeEvent) error {
	if ev.Entity == model.EntityProgram {
		return nil
	}
	if err := w.Write(ctx); err != nil {
		return err
	}
	if w.Log != nil {
		w.Log.Debug("snapshot refreshed",
			zap.String("event_id", ev.ID),
			zap.String("entity", ev.Entity),
			zap.String("action", ev.Action),
			zap.Int64("entity_id", ev.EntityID),
		)
	}
	return nil
}

// Write renders the hierarchy and atomically replaces the snapshot file.
func (w *SnapshotWorker) Write(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	tree, err := w.HierarchyRepo.CompleteHierarchy(ctx)
	if err != nil {
		return fmt.Errorf("load hierarchy: %w", err)
	}
	data := export.FormatCSV(export.FlattenHierarchy(tree))

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	tmp, err := os.CreateTemp(w.Dir, SnapshotFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.Path()); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
