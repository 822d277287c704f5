package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secinstall/internal/models"
	"secinstall/internal/repositories"
)

func newProjectMock(t *testing.T) (*ProjectService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewProjectService(repositories.NewProjectRepository(db)), mock
}

func TestProjectCreate(t *testing.T) {
	svc, mock := newProjectMock(t)

	mock.ExpectQuery(`INSERT INTO projects`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	clientID := 11
	p := &models.Project{
		ClientID:    &clientID,
		ProjectName: "Warehouse CCTV rollout",
		ServiceType: "cctv",
	}
	err := svc.Create(p)
	require.NoError(t, err)
	assert.Equal(t, 9, p.ID)
	assert.Equal(t, models.ProjectStatusScheduled, p.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A project with neither a client nor a lead reference is rejected before
// any write.
func TestProjectCreateRequiresLink(t *testing.T) {
	svc, mock := newProjectMock(t)

	err := svc.Create(&models.Project{
		ProjectName: "Orphan job",
		ServiceType: "alarm",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectCreateValidation(t *testing.T) {
	svc, _ := newProjectMock(t)
	leadID := 7

	err := svc.Create(&models.Project{LeadID: &leadID, ServiceType: "alarm"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Project{LeadID: &leadID, ProjectName: "Alarm install"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(&models.Project{LeadID: &leadID, ProjectName: "Alarm install", ServiceType: "alarm", Status: "started"})
	assert.ErrorIs(t, err, ErrValidation)
}

// Clearing both references on an edit reintroduces the orphan and is
// rejected the same way.
func TestProjectUpdateRequiresLink(t *testing.T) {
	svc, mock := newProjectMock(t)

	err := svc.Update(&models.Project{
		ID:          9,
		ProjectName: "Warehouse CCTV rollout",
		ServiceType: "cctv",
		Status:      models.ProjectStatusInProgress,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectUpdateStatusUnknown(t *testing.T) {
	svc, _ := newProjectMock(t)

	p, err := svc.UpdateStatus(9, "paused")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrValidation)
}
