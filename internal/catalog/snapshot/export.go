package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/kamusis/skillswap/internal/catalog"
)

// ExportOptions controls Export.
type ExportOptions struct {
	OutDir      string
	Source      string
	LockTimeout time.Duration
	Logger      *zap.Logger
}

// Export writes c to opts.OutDir. The snapshot is built in a sibling temp dir
// and swapped into place while holding OutDir + ".lock", so readers never see
// a half-written snapshot and concurrent exports do not interleave.
func Export(ctx context.Context, c *catalog.Catalog, opts ExportOptions) (*Snapshot, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("out dir is required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	parent := filepath.Dir(opts.OutDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", parent, err)
	}

	unlock, err := acquireLock(ctx, opts.OutDir+".lock", timeout)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rows := make([]Row, 0, len(c.Listings))
	for _, l := range c.Listings {
		rows = append(rows, ListingToRow(l))
	}
	manifest := Manifest{
		SnapshotVersion: 1,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		Source:          opts.Source,
		SkillsFile:      defaultSkillsFile,
	}

	tmpDir, err := os.MkdirTemp(parent, ".snapshot-*")
	if err != nil {
		return nil, fmt.Errorf("cannot create temp snapshot dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := Write(tmpDir, manifest, rows); err != nil {
		return nil, err
	}
	if err := AtomicSwap(tmpDir, opts.OutDir); err != nil {
		return nil, fmt.Errorf("cannot install snapshot: %w", err)
	}
	log.Debug("snapshot exported", zap.String("dir", opts.OutDir), zap.Int("rows", len(rows)))

	manifest.Count = len(rows)
	return &Snapshot{Manifest: manifest, Rows: rows}, nil
}

// acquireLock takes the exclusive export lock, polling until timeout.
func acquireLock(ctx context.Context, lockPath string, timeout time.Duration) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	l := flock.New(lockPath)
	locked, err := l.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w (lock: %s)", ErrLocked, lockPath)
		}
		return nil, fmt.Errorf("cannot acquire snapshot lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock: %s)", ErrLocked, lockPath)
	}
	return func() { _ = l.Unlock() }, nil
}

// AtomicSwap replaces destDir with srcDir by renaming.
func AtomicSwap(srcDir, destDir string) error {
	parent := filepath.Dir(destDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	backup := destDir + ".bak"
	_ = os.RemoveAll(backup)
	if _, err := os.Stat(destDir); err == nil {
		if err := os.Rename(destDir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		// rollback best-effort
		if _, stErr := os.Stat(backup); stErr == nil {
			_ = os.Rename(backup, destDir)
		}
		return err
	}
	_ = os.RemoveAll(backup)
	return nil
}
