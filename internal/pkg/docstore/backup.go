package docstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ravikt/tuitiondesk/internal/pkg/helpers"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// Snapshot copies each existing file into the backup directory with a
// timestamp-suffixed name (students_data.json -> students_data_20250830_141500.json).
// Files that do not exist are skipped.
func (s *Store) Snapshot(paths ...string) error {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory %s: %w", s.backupDir, err)
	}

	timestamp := time.Now().Format(helpers.BackupTimestampLayout)

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		backupPath := filepath.Join(s.backupDir, fmt.Sprintf("%s_%s.json", name, timestamp))

		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
		logger.Info().Str("path", path).Str("backup", backupPath).Msg("Backup created")
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
