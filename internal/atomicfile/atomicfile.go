// Package atomicfile provides the file primitives the document stores rely
// on: reads with an absent sentinel, atomic writes via a temp sibling and
// rename, and sibling backup/restore around destructive overwrites.
package atomicfile

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a file's path to form its backup sibling.
const BackupSuffix = ".backup"

// Read returns the file's contents. ok is false when path does not exist;
// any other failure is returned as an error.
func Read(path string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, true, nil
}

// Write writes data to path atomically: the parent directory is created if
// missing, data goes to a uniquely named temp sibling which is synced and
// then renamed over the target. The target is never left partially written.
func Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// BackupPath returns the backup sibling location for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Backup copies path to its backup sibling. A no-op when path does not
// exist. Returns the backup path written, or empty for the no-op.
func Backup(path string) (string, error) {
	data, ok, err := Read(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	backup := BackupPath(path)
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backup, err)
	}
	return backup, nil
}

// Restore copies the backup sibling back over path and removes the backup
// marker. Fails when no backup exists.
func Restore(path string) error {
	backup := BackupPath(path)
	data, err := os.ReadFile(backup)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no backup exists for %s", path)
		}
		return fmt.Errorf("reading backup %s: %w", backup, err)
	}

	if err := Write(path, data); err != nil {
		return err
	}
	if err := os.Remove(backup); err != nil {
		return fmt.Errorf("removing backup %s: %w", backup, err)
	}
	return nil
}
