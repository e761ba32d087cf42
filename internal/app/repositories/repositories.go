package repositories

import (
	"fmt"
	"sync"

	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// base carries what every document-backed repository shares: the document
// store, the file path and the mutex serializing read-modify-persist
// sequences for that document. Locks on different documents are
// independent of each other.
type base struct {
	mu    sync.Mutex
	store *docstore.Store
	path  string
}

// persist writes the document through the store. On failure the in-memory
// mutation is NOT rolled back; the error is logged and surfaced so the
// caller knows durability was not achieved.
func (b *base) persist(doc interface{}) error {
	if err := b.store.Save(b.path, doc); err != nil {
		logger.Error().Err(err).Str("path", b.path).Msg("Failed to persist document")
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// Repositories bundles all document repositories for dependency injection.
type Repositories struct {
	Students   *StudentRepository
	Admissions *AdmissionRepository
}

// NewRepositories loads both documents and returns the repository container.
func NewRepositories(store *docstore.Store, studentsPath, admissionsPath string) (*Repositories, error) {
	students, err := NewStudentRepository(store, studentsPath)
	if err != nil {
		return nil, err
	}

	admissions, err := NewAdmissionRepository(store, admissionsPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Students:   students,
		Admissions: admissions,
	}, nil
}
