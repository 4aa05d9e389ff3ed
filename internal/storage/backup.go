package storage

import (
	"errors"
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// ErrNoBackup is returned when restoring a backup that does not exist
var ErrNoBackup = errors.New("backup does not exist")

// BackupPath returns the path of backup n for the workbook at path.
// Lower numbers are more recent: .bak.1 is the latest backup.
func BackupPath(path string, n int) string {
	return fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
}

// rotateBackups drops the oldest backup and shifts the others up by one
func rotateBackups(path string) error {
	if err := os.Remove(BackupPath(path, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}
	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(path, i), BackupPath(path, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// CreateBackup copies the workbook file to .bak.1 after rotating older
// backups. Nothing happens when the file does not exist yet.
func CreateBackup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(path); err != nil {
		return fmt.Errorf("failed to rotate backups: %w", err)
	}
	if err := copyFile(path, BackupPath(path, 1)); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	return nil
}

// BackupInfo describes one backup file
type BackupInfo struct {
	Number int
	Path   string
	Sheets int
}

// ListBackups returns the existing backups of the workbook at path, most
// recent first. Sheets is -1 for a backup that cannot be parsed.
func ListBackups(path string) ([]BackupInfo, error) {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		p := BackupPath(path, i)
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		info := BackupInfo{Number: i, Path: p, Sheets: -1}
		if pages, err := Load(p); err == nil {
			info.Sheets = len(pages)
		}
		backups = append(backups, info)
	}
	return backups, nil
}

// RestoreBackup replaces the workbook at path with backup n. The current
// file is backed up first, so a restore can itself be undone with backup 1.
func RestoreBackup(path string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	src := BackupPath(path, n)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %d", ErrNoBackup, n)
		}
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if _, err := decode(data); err != nil {
		return fmt.Errorf("backup %d is not a valid workbook: %w", n, err)
	}

	if err := CreateBackup(path); err != nil {
		return err
	}
	// The rotation shifted the requested backup one slot up.
	return writeFileAtomic(path, data)
}
