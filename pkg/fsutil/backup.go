package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupMode specifies how backups are stored.
type BackupMode string

const (
	// BackupModeSidecar stores backups next to the original file with a
	// .gomathdoc.bak suffix.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is the suffix used for sidecar backup files.
const BackupSuffix = ".gomathdoc.bak"

// BackupConfig controls backup behavior.
type BackupConfig struct {
	// Enabled indicates whether backups should be created.
	Enabled bool

	// Mode specifies how backups are stored.
	Mode BackupMode
}

// DefaultBackupConfig returns the defaults: backups off, sidecar mode when
// they are turned on.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		Enabled: false,
		Mode:    BackupModeSidecar,
	}
}

// BackupPath returns the backup path for the given file based on the mode.
func BackupPath(path string, mode BackupMode) string {
	switch mode {
	case BackupModeSidecar:
		return path + BackupSuffix
	case BackupModeNone:
		return ""
	default:
		return path + BackupSuffix
	}
}

// CreateBackup copies the file at path to its backup location before the
// first rewrite. Returns true if a backup was created.
//
// Idempotent: an existing backup is never overwritten, so repeated renders
// keep the pre-render original.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled || cfg.Mode == BackupModeNone {
		return false, nil
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path, cfg.Mode)
	if backupPath == "" {
		return false, nil
	}

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}

// RestoreBackup puts a file back to its pre-render content from the backup.
// Returns true if the file was restored, false if no backup exists.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read backup: %w", err)
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}

	return true, nil
}

// RemoveBackup removes the backup file for the given path if it exists.
// Returns true if a backup was removed.
func RemoveBackup(path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	err := os.Remove(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}

	return true, nil
}

// BackupExists reports whether a backup file exists for the given path.
func BackupExists(path string, mode BackupMode) bool {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false
	}
	_, err := os.Stat(backupPath)
	return err == nil
}
