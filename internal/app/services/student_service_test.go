package services_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravikt/tuitiondesk/internal/app/models"
	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/app/repositories"
	"github.com/ravikt/tuitiondesk/internal/app/services"
	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
)

func newRepositories(t *testing.T) *repositories.Repositories {
	t.Helper()
	dir := t.TempDir()
	store := docstore.NewStore(filepath.Join(dir, "backups"))
	repos, err := repositories.NewRepositories(store,
		filepath.Join(dir, "students_data.json"),
		filepath.Join(dir, "admission_requests.json"))
	require.NoError(t, err)
	return repos
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func flexFloatPtr(v float64) *dto.FlexFloat {
	f := dto.FlexFloat(v)
	return &f
}

func subjectsPtr(subjects ...string) *dto.StringList {
	l := dto.StringList(subjects)
	return &l
}

func validCreateRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Name:          strPtr("Asha Verma"),
		ClassName:     strPtr("10"),
		GuardianPhone: strPtr("9876543210"),
		DOB:           int64Ptr(1136073600000),
		AdmissionDate: int64Ptr(1735689600000),
		Subjects:      subjectsPtr("Math", "Science"),
		Fees:          flexFloatPtr(1500),
	}
}

func TestCreateStudentThenGetReturnsEqualRecord(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Asha Verma", created.Name)
	assert.Equal(t, 1500.0, created.Fees)
	assert.Nil(t, created.School)
	assert.NotNil(t, created.YearlyMonthStatus)
	assert.NotZero(t, created.CreatedAt)

	fetched, err := svc.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateStudentReportsFirstMissingField(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	req := validCreateRequest()
	req.GuardianPhone = nil
	req.Fees = nil

	_, err := svc.CreateStudent(ctx, req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "guardianPhone")
}

func TestCreateStudentRejectsNegativeFees(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)

	req := validCreateRequest()
	req.Fees = flexFloatPtr(-100)

	_, err := svc.CreateStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentAcceptsQuotedNumbers(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)

	var req dto.CreateStudentRequest
	payload := `{
		"name": "Ravi Kumar",
		"className": "8",
		"guardianPhone": "9000000000",
		"dob": 1136073600000,
		"admissionDate": 1735689600000,
		"subjects": "Math",
		"fees": "1500.50"
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	created, err := svc.CreateStudent(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, 1500.50, created.Fees)
	assert.Equal(t, []string{"Math"}, created.Subjects)
}

func TestUpdateStudentAppliesOnlyPresentFields(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{
		Name:   strPtr("Asha V"),
		School: strPtr("City School"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha V", updated.Name)
	require.NotNil(t, updated.School)
	assert.Equal(t, "City School", *updated.School)
	// Untouched fields keep their values
	assert.Equal(t, created.ClassName, updated.ClassName)
	assert.Equal(t, created.GuardianPhone, updated.GuardianPhone)
	assert.Equal(t, created.Fees, updated.Fees)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateUnknownStudentReturnsNotFound(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)

	_, err := svc.UpdateStudent(context.Background(), 99, &dto.UpdateStudentRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentThenGetReturnsNotFound(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, created.ID))

	_, err = svc.GetStudentByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, svc.DeleteStudent(ctx, created.ID), apperrors.ErrStudentNotFound)
}

func TestRecordPaymentDefaultsToCurrentMonthAndCash(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.RecordPayment(ctx, created.ID, &dto.RecordPaymentRequest{
		Amount: flexFloatPtr(1500),
	})
	require.NoError(t, err)

	now := time.Now()
	year := strconv.Itoa(now.Year())
	month := strconv.Itoa(int(now.Month()))

	assert.Equal(t, models.MonthStatusPaid, updated.YearlyMonthStatus[year][month])
	record := updated.YearlyPaymentRecords[year][month]
	assert.Equal(t, 1500.0, record.Amount)
	assert.Equal(t, models.PaymentMethodCash, record.PaymentMethod)
	assert.NotZero(t, record.PaidDate)
}

func TestRecordPaymentOverwritesSameMonth(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	var req dto.RecordPaymentRequest
	payload := `{"year": 2025, "month": "3", "amount": "1500", "notes": "first"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	_, err = svc.RecordPayment(ctx, created.ID, &req)
	require.NoError(t, err)

	method := models.PaymentMethodUPI
	second := &dto.RecordPaymentRequest{
		Year:          req.Year,
		Month:         req.Month,
		Amount:        flexFloatPtr(1750),
		Notes:         strPtr("corrected"),
		PaymentMethod: &method,
	}
	updated, err := svc.RecordPayment(ctx, created.ID, second)
	require.NoError(t, err)

	require.Len(t, updated.YearlyPaymentRecords["2025"], 1)
	record := updated.YearlyPaymentRecords["2025"]["3"]
	assert.Equal(t, 1750.0, record.Amount)
	require.NotNil(t, record.Notes)
	assert.Equal(t, "corrected", *record.Notes)
	assert.Equal(t, models.PaymentMethodUPI, record.PaymentMethod)
	assert.Equal(t, models.MonthStatusPaid, updated.YearlyMonthStatus["2025"]["3"])
}

func TestRecordPaymentValidation(t *testing.T) {
	repos := newRepositories(t)
	svc := services.NewStudentService(repos.Students)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, created.ID, &dto.RecordPaymentRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "amount")

	badMonth := dto.FlexInt(13)
	_, err = svc.RecordPayment(ctx, created.ID, &dto.RecordPaymentRequest{
		Amount: flexFloatPtr(100),
		Month:  &badMonth,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	method := "cheque"
	_, err = svc.RecordPayment(ctx, created.ID, &dto.RecordPaymentRequest{
		Amount:        flexFloatPtr(100),
		PaymentMethod: &method,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.RecordPayment(ctx, 99, &dto.RecordPaymentRequest{Amount: flexFloatPtr(100)})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
