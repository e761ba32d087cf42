package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ravikt/tuitiondesk/internal/app/models"
	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/app/repositories"
	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/helpers"
)

// StudentService defines the interface for student record operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	RecordPayment(ctx context.Context, id int64, req *dto.RecordPaymentRequest) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// ListStudents returns all student records in insertion order.
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx), nil
}

// GetStudentByID retrieves a single student record.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent validates the payload and appends a new student record.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validateCreateStudent(req); err != nil {
		return nil, err
	}

	fees := req.Fees.Float64()
	if fees < 0 {
		return nil, fmt.Errorf("%w: fees must not be negative", apperrors.ErrValidationFailed)
	}

	monthStatus := req.YearlyMonthStatus
	if monthStatus == nil {
		monthStatus = map[string]map[string]int{}
	}
	paymentRecords := req.YearlyPaymentRecords
	if paymentRecords == nil {
		paymentRecords = map[string]map[string]models.PaymentRecord{}
	}
	reminders := req.PendingFeesReminders
	if reminders == nil {
		reminders = map[string][]int{}
	}

	return s.studentRepo.Create(ctx, func(id int64) *models.Student {
		return &models.Student{
			ID:                   id,
			Name:                 *req.Name,
			ClassName:            *req.ClassName,
			School:               req.School,
			GuardianPhone:        *req.GuardianPhone,
			GuardianName:         req.GuardianName,
			StudentPhone:         req.StudentPhone,
			Address:              req.Address,
			DOB:                  *req.DOB,
			AdmissionDate:        *req.AdmissionDate,
			Subjects:             []string(*req.Subjects),
			Fees:                 fees,
			ProfileImagePath:     req.ProfileImagePath,
			CreatedAt:            helpers.NowMillis(),
			YearlyMonthStatus:    monthStatus,
			YearlyPaymentRecords: paymentRecords,
			PendingFeesReminders: reminders,
		}
	})
}

// validateCreateStudent checks required fields in a fixed order so the
// first missing one is named in the error.
func validateCreateStudent(req *dto.CreateStudentRequest) error {
	checks := []struct {
		name    string
		present bool
	}{
		{"name", req.Name != nil},
		{"className", req.ClassName != nil},
		{"guardianPhone", req.GuardianPhone != nil},
		{"dob", req.DOB != nil},
		{"admissionDate", req.AdmissionDate != nil},
		{"subjects", req.Subjects != nil},
		{"fees", req.Fees != nil},
	}
	for _, check := range checks {
		if !check.present {
			return fmt.Errorf("%w: missing required field: %s", apperrors.ErrValidationFailed, check.name)
		}
	}
	return nil
}

// UpdateStudent overwrites the allow-listed fields present in the payload.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req.Fees != nil && req.Fees.Float64() < 0 {
		return nil, fmt.Errorf("%w: fees must not be negative", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.Update(ctx, id, func(student *models.Student) {
		if req.Name != nil {
			student.Name = *req.Name
		}
		if req.ClassName != nil {
			student.ClassName = *req.ClassName
		}
		if req.School != nil {
			student.School = req.School
		}
		if req.GuardianPhone != nil {
			student.GuardianPhone = *req.GuardianPhone
		}
		if req.GuardianName != nil {
			student.GuardianName = req.GuardianName
		}
		if req.StudentPhone != nil {
			student.StudentPhone = req.StudentPhone
		}
		if req.Address != nil {
			student.Address = req.Address
		}
		if req.DOB != nil {
			student.DOB = *req.DOB
		}
		if req.AdmissionDate != nil {
			student.AdmissionDate = *req.AdmissionDate
		}
		if req.Subjects != nil {
			student.Subjects = []string(*req.Subjects)
		}
		if req.Fees != nil {
			student.Fees = req.Fees.Float64()
		}
		if req.ProfileImagePath != nil {
			student.ProfileImagePath = req.ProfileImagePath
		}
		if req.YearlyMonthStatus != nil {
			student.YearlyMonthStatus = req.YearlyMonthStatus
		}
		if req.YearlyPaymentRecords != nil {
			student.YearlyPaymentRecords = req.YearlyPaymentRecords
		}
		if req.PendingFeesReminders != nil {
			student.PendingFeesReminders = req.PendingFeesReminders
		}
	})
}

// DeleteStudent removes a student record permanently.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// RecordPayment marks a month as paid and stores its payment record,
// overwriting any previous record for that month (at most one per student
// per calendar month).
func (s *studentServiceImpl) RecordPayment(ctx context.Context, id int64, req *dto.RecordPaymentRequest) (*models.Student, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: missing required field: amount", apperrors.ErrValidationFailed)
	}

	now := time.Now()

	year := strconv.Itoa(now.Year())
	if req.Year != nil {
		year = req.Year.String()
	}

	month := int(now.Month())
	if req.Month != nil {
		month = req.Month.Int()
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidationFailed)
	}

	paidDate := helpers.NowMillis()
	if req.PaidDate != nil {
		paidDate = *req.PaidDate
	}

	method := models.PaymentMethodCash
	if req.PaymentMethod != nil && *req.PaymentMethod != "" {
		method = *req.PaymentMethod
	}
	if !models.IsValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method: %s", apperrors.ErrValidationFailed, method)
	}

	record := models.PaymentRecord{
		PaidDate:      paidDate,
		Amount:        req.Amount.Float64(),
		Notes:         req.Notes,
		PaymentMethod: method,
	}
	monthKey := strconv.Itoa(month)

	return s.studentRepo.Update(ctx, id, func(student *models.Student) {
		if student.YearlyMonthStatus == nil {
			student.YearlyMonthStatus = map[string]map[string]int{}
		}
		if student.YearlyPaymentRecords == nil {
			student.YearlyPaymentRecords = map[string]map[string]models.PaymentRecord{}
		}
		if student.YearlyMonthStatus[year] == nil {
			student.YearlyMonthStatus[year] = map[string]int{}
		}
		if student.YearlyPaymentRecords[year] == nil {
			student.YearlyPaymentRecords[year] = map[string]models.PaymentRecord{}
		}

		student.YearlyMonthStatus[year][monthKey] = models.MonthStatusPaid
		student.YearlyPaymentRecords[year][monthKey] = record
	})
}
