package imaging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755. An existing directory is
// not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists, it is
// truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// StampTimes sets both the access and modification time of the file at
// path. Used after a download to carry the photo's upload date onto the
// saved file.
func StampTimes(path string, t time.Time) error {
	return os.Chtimes(path, t, t)
}

// ClearDir removes every regular file directly inside dir. The directory
// itself is kept.
//
// A subdirectory aborts the operation before anything is deleted: staging
// directories hold only downloaded photos, so a subdirectory means the
// path is not the directory we think it is.
func ClearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			return fmt.Errorf("refusing to clear %s: contains subdirectory %s", dir, entry.Name())
		}
	}

	for _, entry := range entries {
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
