package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravikt/tuitiondesk/internal/app/repositories"
	"github.com/ravikt/tuitiondesk/internal/app/services"
	"github.com/ravikt/tuitiondesk/internal/pkg/docstore"
)

func TestHealthAndStatsReflectDocuments(t *testing.T) {
	dir := t.TempDir()
	store := docstore.NewStore(filepath.Join(dir, "backups"))
	studentsPath := filepath.Join(dir, "students_data.json")
	admissionsPath := filepath.Join(dir, "admission_requests.json")

	repos, err := repositories.NewRepositories(store, studentsPath, admissionsPath)
	require.NoError(t, err)

	studentSvc := services.NewStudentService(repos.Students)
	admissionSvc := services.NewAdmissionService(repos.Admissions, repos.Students)
	systemSvc := services.NewSystemService(repos.Students, repos.Admissions, store, []string{studentsPath, admissionsPath})
	ctx := context.Background()

	_, err = studentSvc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	first, err := admissionSvc.SubmitRequest(ctx, validSubmitRequest())
	require.NoError(t, err)
	_, err = admissionSvc.SubmitRequest(ctx, validSubmitRequest())
	require.NoError(t, err)
	require.NoError(t, admissionSvc.Reject(ctx, first.ID, ""))

	health := systemSvc.Health(ctx)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 1, health.StudentsCount)
	assert.Equal(t, 1, health.PendingAdmissions)
	assert.NotZero(t, health.Timestamp)

	stats := systemSvc.Stats(ctx)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 1, stats.PendingAdmissions)
	assert.Equal(t, 0, stats.ApprovedAdmissions)
	assert.Equal(t, 1, stats.RejectedAdmissions)
	assert.GreaterOrEqual(t, stats.ServerUptimeMillis, int64(0))
}

func TestBackupSnapshotsDataFiles(t *testing.T) {
	dir := t.TempDir()
	backupDir := filepath.Join(dir, "backups")
	store := docstore.NewStore(backupDir)
	studentsPath := filepath.Join(dir, "students_data.json")
	admissionsPath := filepath.Join(dir, "admission_requests.json")

	repos, err := repositories.NewRepositories(store, studentsPath, admissionsPath)
	require.NoError(t, err)

	studentSvc := services.NewStudentService(repos.Students)
	systemSvc := services.NewSystemService(repos.Students, repos.Admissions, store, []string{studentsPath, admissionsPath})
	ctx := context.Background()

	// Only the student document exists on disk yet
	_, err = studentSvc.CreateStudent(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, systemSvc.Backup(ctx))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
