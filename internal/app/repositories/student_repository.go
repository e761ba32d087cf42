package repositories

import (
	"context"
	"fmt"

	"github.com/ravikt/tuitiondesk/internal/app/models"
	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// StudentRepository owns the in-memory student document and its on-disk
// file. Every read-modify-persist sequence runs under a single mutex, so
// concurrent handlers never interleave on the collection or its temp file.
type StudentRepository struct {
	base
	doc *models.StudentDocument
}

// NewStudentRepository loads the student document from path (falling back
// to an empty document when the file is missing or quarantined as corrupt).
func NewStudentRepository(store *docstore.Store, path string) (*StudentRepository, error) {
	doc := models.NewStudentDocument()
	if err := store.Load(path, doc); err != nil {
		return nil, fmt.Errorf("failed to load student document: %w", err)
	}
	if doc.Students == nil {
		doc.Students = []*models.Student{}
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}

	repo := &StudentRepository{
		base: base{store: store, path: path},
		doc:  doc,
	}
	logger.Info().Str("path", path).Int("students", len(doc.Students)).Msg("Student document loaded")
	return repo, nil
}

// List returns a snapshot of all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) []*models.Student {
	r.mu.Lock()
	defer r.mu.Unlock()

	students := make([]*models.Student, 0, len(r.doc.Students))
	for _, s := range r.doc.Students {
		students = append(students, s.Clone())
	}
	return students
}

// Count returns the number of student records.
func (r *StudentRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.doc.Students)
}

// GetByID returns the student with the given id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.find(id)
	if s == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.Clone(), nil
}

// Create allocates the next id, persists the counter, then appends the
// student produced by build and persists again. The counter persist is
// deliberate: an id handed out survives a crash even if the record itself
// was never saved, trading a possible gap for collision safety.
func (r *StudentRepository) Create(ctx context.Context, build func(id int64) *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.doc.NextID
	r.doc.NextID++
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}

	student := build(id)
	r.doc.Students = append(r.doc.Students, student)
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}

	return student.Clone(), nil
}

// Update applies apply to the stored record and persists the document.
func (r *StudentRepository) Update(ctx context.Context, id int64, apply func(s *models.Student)) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.find(id)
	if s == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	apply(s)
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Delete removes the student with the given id and persists the document.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.doc.Students {
		if s.ID == id {
			r.doc.Students = append(r.doc.Students[:i], r.doc.Students[i+1:]...)
			return r.persist(r.doc)
		}
	}
	return apperrors.ErrStudentNotFound
}

// find returns the stored record for id. Caller must hold the mutex.
func (r *StudentRepository) find(id int64) *models.Student {
	for _, s := range r.doc.Students {
		if s.ID == id {
			return s
		}
	}
	return nil
}
