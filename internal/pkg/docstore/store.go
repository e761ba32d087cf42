package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ravikt/tuitiondesk/internal/pkg/helpers"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// Store reads and writes JSON documents on the local filesystem. Writes to
// the same path are serialized; writes to different paths do not block each
// other. Corrupt files found during Load are moved into the backup
// directory instead of being overwritten.
type Store struct {
	backupDir string
	locks     sync.Map // path -> *sync.Mutex
}

// NewStore creates a new Store. backupDir receives quarantined corrupt
// files and manual snapshots.
func NewStore(backupDir string) *Store {
	return &Store{backupDir: backupDir}
}

// pathLock returns the mutex guarding writes to path.
func (s *Store) pathLock(path string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(path, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Load reads the document at path into doc. doc must arrive prefilled with
// the default document: if the file does not exist the defaults are kept,
// and if the file exists but cannot be read or does not parse it is
// quarantined into the backup directory and the defaults are kept. Read
// and parse failures are never returned to the caller.
func (s *Store) Load(path string, doc interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("path", path).Msg("Document file not found, starting with empty document")
			return nil
		}
		logger.Error().Err(err).Str("path", path).Msg("Document file is unreadable, quarantining and starting with empty document")
		s.quarantine(path)
		return nil
	}

	if err := json.Unmarshal(data, doc); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Document file is corrupt, quarantining and starting with empty document")
		s.quarantine(path)
		return nil
	}

	return nil
}

// Save serializes doc to a temporary sibling file and atomically renames it
// over path, so path always holds either the previous or the new complete
// document. On failure the temporary file is removed and the previous
// contents of path are left intact.
func (s *Store) Save(path string, doc interface{}) error {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document for %s: %w", path, err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write temporary file for %s: %w", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace document %s: %w", path, err)
	}

	return nil
}

// quarantine moves a corrupt file aside into the backup directory,
// preserving it for inspection. Failures are logged only: a file that
// cannot be moved must not prevent startup.
func (s *Store) quarantine(path string) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		logger.Error().Err(err).Str("dir", s.backupDir).Msg("Failed to create backup directory for quarantine")
		return
	}

	timestamp := time.Now().Format(helpers.BackupTimestampLayout)
	quarantinePath := filepath.Join(s.backupDir, fmt.Sprintf("%s.%s.bak", filepath.Base(path), timestamp))

	if err := os.Rename(path, quarantinePath); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Could not quarantine corrupt file")
		return
	}
	logger.Warn().Str("path", path).Str("quarantined", quarantinePath).Msg("Corrupt document quarantined")
}
