package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ravikt/tuitiondesk/internal/app/models"
	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/app/repositories"
	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/helpers"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// AdmissionService defines the interface for admission request operations
type AdmissionService interface {
	SubmitRequest(ctx context.Context, req *dto.SubmitAdmissionRequest) (*models.AdmissionRequest, error)
	ListRequests(ctx context.Context, status string) ([]*models.AdmissionRequest, error)
	GetRequestByID(ctx context.Context, id int64) (*models.AdmissionRequest, error)
	Approve(ctx context.Context, id int64) (*models.Student, error)
	Reject(ctx context.Context, id int64, reason string) error
	PendingRequests(ctx context.Context) ([]*models.AdmissionRequest, error)
}

// admissionServiceImpl implements the AdmissionService interface
type admissionServiceImpl struct {
	admissionRepo *repositories.AdmissionRepository
	studentRepo   *repositories.StudentRepository
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(admissionRepo *repositories.AdmissionRepository, studentRepo *repositories.StudentRepository) AdmissionService {
	return &admissionServiceImpl{
		admissionRepo: admissionRepo,
		studentRepo:   studentRepo,
	}
}

// SubmitRequest validates and stores a new pending admission request.
func (s *admissionServiceImpl) SubmitRequest(ctx context.Context, req *dto.SubmitAdmissionRequest) (*models.AdmissionRequest, error) {
	if err := validateSubmitRequest(req); err != nil {
		return nil, err
	}

	fees := 0.0
	if req.Fees != nil {
		fees = req.Fees.Float64()
	}
	if fees < 0 {
		return nil, fmt.Errorf("%w: fees must not be negative", apperrors.ErrValidationFailed)
	}

	admissionDate := helpers.NowMillis()
	if req.AdmissionDate != nil {
		admissionDate = *req.AdmissionDate
	}

	return s.admissionRepo.Create(ctx, func(id int64) *models.AdmissionRequest {
		return &models.AdmissionRequest{
			ID:            id,
			Name:          *req.Name,
			ClassName:     *req.ClassName,
			School:        stringOrEmpty(req.School),
			GuardianPhone: *req.GuardianPhone,
			GuardianName:  stringOrEmpty(req.GuardianName),
			StudentPhone:  stringOrEmpty(req.StudentPhone),
			Address:       stringOrEmpty(req.Address),
			DOB:           flexStringOrEmpty(req.DOB),
			AdmissionDate: admissionDate,
			Subjects:      []string(*req.Subjects),
			Fees:          fees,
			SubmittedAt:   helpers.NowMillis(),
			Status:        models.AdmissionStatusPending,
		}
	})
}

func validateSubmitRequest(req *dto.SubmitAdmissionRequest) error {
	checks := []struct {
		name    string
		present bool
	}{
		{"name", req.Name != nil},
		{"className", req.ClassName != nil},
		{"guardianPhone", req.GuardianPhone != nil},
		{"subjects", req.Subjects != nil},
	}
	for _, check := range checks {
		if !check.present {
			return fmt.Errorf("%w: missing required field: %s", apperrors.ErrValidationFailed, check.name)
		}
	}
	return nil
}

// ListRequests returns admission requests, optionally filtered by exact
// status match.
func (s *admissionServiceImpl) ListRequests(ctx context.Context, status string) ([]*models.AdmissionRequest, error) {
	return s.admissionRepo.List(ctx, models.AdmissionStatus(status)), nil
}

// GetRequestByID retrieves a single admission request.
func (s *admissionServiceImpl) GetRequestByID(ctx context.Context, id int64) (*models.AdmissionRequest, error) {
	return s.admissionRepo.GetByID(ctx, id)
}

// PendingRequests returns all requests still awaiting a decision.
func (s *admissionServiceImpl) PendingRequests(ctx context.Context) ([]*models.AdmissionRequest, error) {
	return s.admissionRepo.List(ctx, models.AdmissionStatusPending), nil
}

// Approve turns a pending admission request into a student record. The
// student document is persisted first, then the admission document as a
// separate write: if the process dies between the two, the student exists
// while the admission still reads as pending. That window is accepted by
// design of the storage layout; there is no cross-document transaction.
func (s *admissionServiceImpl) Approve(ctx context.Context, id int64) (*models.Student, error) {
	admission, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.Status != models.AdmissionStatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	now := time.Now()
	monthStatuses := monthStatusesForYear(admission.AdmissionDate, now)

	dob := helpers.NowMillis()
	if admission.DOB != "" {
		if parsed, perr := strconv.ParseInt(admission.DOB, 10, 64); perr == nil {
			dob = parsed
		}
	}

	student, err := s.studentRepo.Create(ctx, func(studentID int64) *models.Student {
		return &models.Student{
			ID:            studentID,
			Name:          admission.Name,
			ClassName:     admission.ClassName,
			School:        &admission.School,
			GuardianPhone: admission.GuardianPhone,
			GuardianName:  &admission.GuardianName,
			StudentPhone:  &admission.StudentPhone,
			Address:       &admission.Address,
			DOB:           dob,
			AdmissionDate: admission.AdmissionDate,
			Subjects:      append([]string(nil), admission.Subjects...),
			Fees:          admission.Fees,
			CreatedAt:     helpers.NowMillis(),
			YearlyMonthStatus: map[string]map[string]int{
				strconv.Itoa(now.Year()): monthStatuses,
			},
			YearlyPaymentRecords: map[string]map[string]models.PaymentRecord{},
			PendingFeesReminders: map[string][]int{},
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create student from admission %d: %w", id, err)
	}

	if _, err := s.admissionRepo.MarkApproved(ctx, id, student.ID, helpers.NowMillis()); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyProcessed) {
			// Lost the race after the student document was already
			// written; the orphan student stays, matching the
			// two-document consistency window.
			logger.Warn().Int64("requestId", id).Int64("studentId", student.ID).Msg("Admission processed concurrently, created student is orphaned")
		}
		return nil, err
	}

	return student, nil
}

// Reject marks a pending admission request as rejected.
func (s *admissionServiceImpl) Reject(ctx context.Context, id int64, reason string) error {
	_, err := s.admissionRepo.MarkRejected(ctx, id, reason, helpers.NowMillis())
	return err
}

// monthStatusesForYear derives the per-month payment statuses installed on
// approval. Months before the admission month are ignored, months from the
// admission month through the current month are pending, later months are
// upcoming. Only the current calendar year is populated, even when the
// admission date falls in a different year.
func monthStatusesForYear(admissionDate int64, now time.Time) map[string]int {
	admissionMonth := int(helpers.MillisToTime(admissionDate).Month())
	currentMonth := int(now.Month())

	statuses := make(map[string]int, 12)
	for m := 1; m <= 12; m++ {
		switch {
		case m < admissionMonth:
			statuses[strconv.Itoa(m)] = models.MonthStatusIgnored
		case m <= currentMonth:
			statuses[strconv.Itoa(m)] = models.MonthStatusPending
		default:
			statuses[strconv.Itoa(m)] = models.MonthStatusUpcoming
		}
	}
	return statuses
}

func stringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func flexStringOrEmpty(p *dto.FlexString) string {
	if p == nil {
		return ""
	}
	return p.String()
}
