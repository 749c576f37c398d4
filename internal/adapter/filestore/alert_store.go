// Package filestore implements port.AlertStore on a single JSON file that
// every dashboard process on the host can share.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"campaign-pacing/internal/core/domain"
)

// DefaultPath is the well-known location of the alert list.
const DefaultPath = "global_alerts.json"

// AlertStore keeps the broadcast list as a JSON array of strings at path.
// Writers serialise on an advisory lock file next to it and replace the
// list with an atomic rename, so readers never take the lock and never see
// a partially written file. A missing file is an empty list.
type AlertStore struct {
	path       string
	lockPath   string
	retryDelay time.Duration
}

// NewAlertStore returns a store backed by the file at path, or at
// DefaultPath when path is empty. The file and its ".lock" companion are
// created on the first Append; the directory must already exist. Every
// process pointing at the same path shares one alert list.
func NewAlertStore(path string) *AlertStore {
	if path == "" {
		path = DefaultPath
	}
	return &AlertStore{
		path:       path,
		lockPath:   path + ".lock",
		retryDelay: 20 * time.Millisecond,
	}
}

// List returns the stored alerts in append order.
func (s *AlertStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return s.read()
}

// Append adds message to the end of the list while holding the write lock.
func (s *AlertStore) Append(ctx context.Context, message string) error {
	return s.withLock(ctx, func() error {
		alerts, err := s.read()
		if err != nil {
			return err
		}
		return s.write(append(alerts, message))
	})
}

// Clear deletes the list file.
func (s *AlertStore) Clear(ctx context.Context) error {
	return s.withLock(ctx, func() error {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: remove %s: %w", domain.ErrStorage, s.path, err)
		}
		return nil
	})
}

func (s *AlertStore) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrStorage, s.path, err)
	}
	var alerts []string
	if err = json.Unmarshal(data, &alerts); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrStorage, s.path, err)
	}
	if alerts == nil {
		alerts = []string{}
	}
	return alerts, nil
}

func (s *AlertStore) write(alerts []string) (err error) {
	data, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrStorage, err)
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", domain.ErrStorage, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrStorage, tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: sync %s: %w", domain.ErrStorage, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrStorage, tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", domain.ErrStorage, tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", domain.ErrStorage, s.path, err)
	}
	return nil
}

// withLock runs fn while holding the exclusive lock. A fresh flock.Flock
// is opened per call: locks belong to the open file, so two calls in the
// same process exclude each other just like two processes do.
func (s *AlertStore) withLock(ctx context.Context, fn func() error) error {
	lock := flock.New(s.lockPath)
	locked, err := lock.TryLockContext(ctx, s.retryDelay)
	if err != nil {
		return fmt.Errorf("%w: lock %s: %w", domain.ErrStorage, s.lockPath, err)
	}
	if !locked {
		return fmt.Errorf("%w: lock %s not acquired", domain.ErrStorage, s.lockPath)
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}
