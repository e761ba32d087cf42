package repositories

import (
	"context"
	"fmt"

	"github.com/ravikt/tuitiondesk/internal/app/models"
	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// AdmissionRepository owns the in-memory admission document and its
// on-disk file. Requests are append-only: they are never deleted, and once
// approved or rejected they never change again.
type AdmissionRepository struct {
	base
	doc *models.AdmissionDocument
}

// NewAdmissionRepository loads the admission document from path.
func NewAdmissionRepository(store *docstore.Store, path string) (*AdmissionRepository, error) {
	doc := models.NewAdmissionDocument()
	if err := store.Load(path, doc); err != nil {
		return nil, fmt.Errorf("failed to load admission document: %w", err)
	}
	if doc.Requests == nil {
		doc.Requests = []*models.AdmissionRequest{}
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}

	repo := &AdmissionRepository{
		base: base{store: store, path: path},
		doc:  doc,
	}
	logger.Info().Str("path", path).Int("requests", len(doc.Requests)).Msg("Admission document loaded")
	return repo, nil
}

// List returns a snapshot of requests in insertion order, optionally
// filtered by exact status match. An empty status returns everything.
func (r *AdmissionRepository) List(ctx context.Context, status models.AdmissionStatus) []*models.AdmissionRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]*models.AdmissionRequest, 0, len(r.doc.Requests))
	for _, req := range r.doc.Requests {
		if status != "" && req.Status != status {
			continue
		}
		requests = append(requests, req.Clone())
	}
	return requests
}

// GetByID returns the request with the given id.
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.AdmissionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := r.find(id)
	if req == nil {
		return nil, apperrors.ErrAdmissionNotFound
	}
	return req.Clone(), nil
}

// Create allocates the next id, persists the counter, then appends the
// request produced by build and persists again.
func (r *AdmissionRepository) Create(ctx context.Context, build func(id int64) *models.AdmissionRequest) (*models.AdmissionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.doc.NextID
	r.doc.NextID++
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}

	request := build(id)
	r.doc.Requests = append(r.doc.Requests, request)
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}

	return request.Clone(), nil
}

// MarkApproved transitions a pending request to approved, attaching the
// created student's id and the processing timestamp. The pending check is
// repeated under the lock: a request that lost the race to another
// processor fails with ErrAlreadyProcessed and is left untouched.
func (r *AdmissionRepository) MarkApproved(ctx context.Context, id, studentID, processedAt int64) (*models.AdmissionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := r.find(id)
	if req == nil {
		return nil, apperrors.ErrAdmissionNotFound
	}
	if req.Status != models.AdmissionStatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	req.Status = models.AdmissionStatusApproved
	req.ProcessedAt = &processedAt
	req.StudentID = &studentID
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}

	logger.Info().Int64("requestId", id).Int64("studentId", studentID).Msg("Admission request approved")
	return req.Clone(), nil
}

// MarkRejected transitions a pending request to rejected with an optional
// reason (stored as "" when absent).
func (r *AdmissionRepository) MarkRejected(ctx context.Context, id int64, reason string, processedAt int64) (*models.AdmissionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := r.find(id)
	if req == nil {
		return nil, apperrors.ErrAdmissionNotFound
	}
	if req.Status != models.AdmissionStatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	req.Status = models.AdmissionStatusRejected
	req.ProcessedAt = &processedAt
	req.RejectionReason = &reason
	if err := r.persist(r.doc); err != nil {
		return nil, err
	}

	logger.Info().Int64("requestId", id).Msg("Admission request rejected")
	return req.Clone(), nil
}

// StatusCounts returns how many requests sit in each lifecycle state.
func (r *AdmissionRepository) StatusCounts(ctx context.Context) (pending, approved, rejected int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.doc.Requests {
		switch req.Status {
		case models.AdmissionStatusPending:
			pending++
		case models.AdmissionStatusApproved:
			approved++
		case models.AdmissionStatusRejected:
			rejected++
		}
	}
	return pending, approved, rejected
}

// find returns the stored record for id. Caller must hold the mutex.
func (r *AdmissionRepository) find(id int64) *models.AdmissionRequest {
	for _, req := range r.doc.Requests {
		if req.ID == id {
			return req
		}
	}
	return nil
}
