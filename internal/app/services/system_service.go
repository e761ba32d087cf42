package services

import (
	"context"
	"time"

	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/app/repositories"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
	"github.com/ravikt/tuitiondesk/internal/pkg/helpers"
)

// SystemService defines the interface for health, statistics and backups
type SystemService interface {
	Health(ctx context.Context) *dto.HealthResponse
	Stats(ctx context.Context) *dto.StatsResponse
	Backup(ctx context.Context) error
}

// systemServiceImpl implements the SystemService interface
type systemServiceImpl struct {
	studentRepo   *repositories.StudentRepository
	admissionRepo *repositories.AdmissionRepository
	store         *docstore.Store
	dataFiles     []string
	startedAt     time.Time
}

// NewSystemService creates a new system service instance. dataFiles are the
// document paths included in manual backups.
func NewSystemService(studentRepo *repositories.StudentRepository, admissionRepo *repositories.AdmissionRepository, store *docstore.Store, dataFiles []string) SystemService {
	return &systemServiceImpl{
		studentRepo:   studentRepo,
		admissionRepo: admissionRepo,
		store:         store,
		dataFiles:     dataFiles,
		startedAt:     time.Now(),
	}
}

// Health reports liveness plus collection sizes.
func (s *systemServiceImpl) Health(ctx context.Context) *dto.HealthResponse {
	pending, _, _ := s.admissionRepo.StatusCounts(ctx)
	return &dto.HealthResponse{
		Status:            "healthy",
		Timestamp:         helpers.NowMillis(),
		StudentsCount:     s.studentRepo.Count(ctx),
		PendingAdmissions: pending,
	}
}

// Stats reports totals per admission status and process uptime.
func (s *systemServiceImpl) Stats(ctx context.Context) *dto.StatsResponse {
	pending, approved, rejected := s.admissionRepo.StatusCounts(ctx)
	return &dto.StatsResponse{
		TotalStudents:      s.studentRepo.Count(ctx),
		PendingAdmissions:  pending,
		ApprovedAdmissions: approved,
		RejectedAdmissions: rejected,
		ServerUptimeMillis: time.Since(s.startedAt).Milliseconds(),
	}
}

// Backup snapshots both data files into the backup directory.
func (s *systemServiceImpl) Backup(ctx context.Context) error {
	return s.store.Snapshot(s.dataFiles...)
}
