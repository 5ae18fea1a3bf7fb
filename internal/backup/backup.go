// SPDX-License-Identifier: MPL-2.0

// Package backup writes and restores timestamped snapshots of the variable store.
package backup

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/zxygithub/evm/internal/codec"
	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/internal/loader"
	"github.com/zxygithub/evm/internal/store"
)

const (
	// TimestampLayout is the envelope timestamp: local time, microsecond precision, no offset.
	TimestampLayout = "2006-01-02T15:04:05.000000"

	fileNameLayout = "20060102_150405"
)

type (
	// Clock supplies the backup time.
	Clock interface {
		Now() time.Time
	}

	// Result summarizes a restore.
	Result struct {
		Restored int
		Merged   bool
		// Timestamp is the envelope timestamp. Empty when HasTimestamp is false.
		Timestamp    string
		HasTimestamp bool
	}

	systemClock struct{}
)

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

func (systemClock) Now() time.Time { return time.Now() }

// DefaultPath returns dataDir/backup_YYYYMMDD_HHMMSS.json for now.
func DefaultPath(dataDir string, now time.Time) string {
	return filepath.Join(dataDir, "backup_"+now.Format(fileNameLayout)+".json")
}

// Backup writes an envelope of the full mapping to path, or to DefaultPath under
// dataDir when path is empty, and returns the written path.
func Backup(s *store.Store, path, dataDir string, clock Clock) (string, error) {
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	if path == "" {
		path = DefaultPath(dataDir, now)
	}

	var buf bytes.Buffer
	if err := codec.EncodeEnvelope(&buf, now.Format(TimestampLayout), s.Snapshot()); err != nil {
		return "", fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, path, err)
	}
	if err := store.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// Restore reads a backup envelope from path and installs its variables, replacing
// the mapping unless merge is set. The store is persisted even for empty backups.
func Restore(s *store.Store, path string, merge bool) (Result, error) {
	data, err := loader.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	decoded, err := codec.DecodeJSON(data, codec.JSONOptions{})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if !decoded.IsBackup {
		return Result{}, fmt.Errorf("%w: %s: not a backup file, missing \"variables\"", issue.ErrInvalidFormat, path)
	}

	if merge {
		err = s.Merge(decoded.Vars)
	} else {
		err = s.Replace(decoded.Vars)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Restored: len(decoded.Vars), Merged: merge}
	if decoded.BackupTimestamp != codec.UnknownTimestamp {
		res.Timestamp = decoded.BackupTimestamp
		res.HasTimestamp = true
	}
	return res, nil
}
