package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func resourceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "subject_code", "header", "university", "scheme", "college", "branch", "semester", "type", "file_url", "uploaded_at"})
}

func TestResourceRepositoryListAppliesFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResourceRepository(db, clock.NewStub(fixedNow))

	rows := resourceRows().
		AddRow("r1", "OS Notes", "21CS44", "", "vtu", "2021", "", "cse", "4th", "notes", "/uploads/1-os.pdf", fixedNow)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+resourceColumns+" FROM resources WHERE 1=1 AND university = $1 AND type = $2 ORDER BY uploaded_at DESC")).
		WithArgs("vtu", "notes").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), models.ResourceFilter{University: "vtu", Branch: "all", Type: "notes"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.UniversityVTU, list[0].University)
	assert.Equal(t, models.Scheme2021, list[0].Scheme)
	assert.Equal(t, "21CS44", list[0].SubjectCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepositoryListEmptyIsNotNil(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResourceRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resources WHERE 1=1 ORDER BY uploaded_at DESC")).
		WillReturnRows(resourceRows())

	list, err := repo.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestResourceRepositoryCreateAssignsIdentity(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResourceRepository(db, clock.NewStub(fixedNow))

	mock.ExpectExec("INSERT INTO resources").
		WithArgs(sqlmock.AnyArg(), "OS Notes", "", "", "vtu", "2022", "", "", "", "notes", "https://cdn.example.com/os.pdf", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	resource := &models.Resource{
		Name:       "OS Notes",
		University: models.UniversityVTU,
		Scheme:     models.Scheme2022,
		College:    "ignored",
		Type:       models.TypeNotes,
		FileURL:    "https://cdn.example.com/os.pdf",
	}
	require.NoError(t, repo.Create(context.Background(), resource))
	assert.NotEmpty(t, resource.ID)
	assert.Equal(t, fixedNow, resource.UploadedAt)
	assert.Empty(t, resource.College)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepositoryCreateRejectsInvalidDocument(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResourceRepository(db, nil)

	err := repo.Create(context.Background(), &models.Resource{Name: "x", University: "vtu", Scheme: "2022", Type: "video", FileURL: "/uploads/a.pdf"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, appErrors.FromError(err).Details, "type")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResourceRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resources WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(resourceRows())

	_, err := repo.FindByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestResourceRepositoryUpdateAndDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewResourceRepository(db, nil)

	mock.ExpectExec("UPDATE resources SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), &models.Resource{
		ID: "gone", Name: "x", University: "autonomous", College: "rv", Type: "pyq", FileURL: "/uploads/x.pdf",
	})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resources WHERE id = $1")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "r1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resources WHERE id = $1")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, errors.Is(repo.Delete(context.Background(), "r1"), appErrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
