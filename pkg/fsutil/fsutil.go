// Package fsutil provides the file system safety primitives gomathdoc uses
// when rewriting documents in place: snapshot reads, external-modification
// detection, atomic writes, and backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrNilSnapshot is returned when a nil Snapshot is passed.
	ErrNilSnapshot = errors.New("nil Snapshot")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Snapshot captures the state of a file at the moment it was read. The
// write side of the pipeline compares against it to detect concurrent
// external modification before replacing the file.
type Snapshot struct {
	// Path is the absolute or relative path to the file.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// ReadFile reads a file and returns its content along with a Snapshot for
// later modification detection.
func ReadFile(ctx context.Context, path string) ([]byte, *Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	snap := &Snapshot{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return content, snap, nil
}

// CheckModified returns true if the file has changed since the snapshot was
// taken. A deleted file counts as modified.
//
// Two tiers: a cheap mod-time and size comparison first, then a full
// content re-hash to catch same-size in-place edits.
func CheckModified(ctx context.Context, snap *Snapshot) (bool, error) {
	if snap == nil {
		return false, ErrNilSnapshot
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("check modified: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(snap.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", snap.Path, err)
	}

	if !stat.ModTime().Equal(snap.ModTime) || stat.Size() != snap.Size {
		return true, nil
	}

	content, err := os.ReadFile(snap.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", snap.Path, err)
	}

	currentHash := sha256.Sum256(content)
	return currentHash != snap.Hash, nil
}

// CheckModifiedQuick performs only the mod-time and size comparison. Use it
// when hashing is too expensive and a false negative is acceptable.
func CheckModifiedQuick(ctx context.Context, snap *Snapshot) (bool, error) {
	if snap == nil {
		return false, ErrNilSnapshot
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("check modified: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(snap.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", snap.Path, err)
	}

	return !stat.ModTime().Equal(snap.ModTime) || stat.Size() != snap.Size, nil
}
