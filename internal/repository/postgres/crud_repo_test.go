package postgres

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var languageColumns = []string{"id", "language", "level"}

func newLanguageRepo(t *testing.T) (pgxmock.PgxPoolIface, *crudRepo[domain.Language]) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo, ok := NewLanguageRepository(mock).(*crudRepo[domain.Language])
	require.True(t, ok)
	return mock, repo
}

func TestCrudRepo_SQL(t *testing.T) {
	_, repo := newLanguageRepo(t)

	assert.Equal(t, "SELECT id, language, level FROM languages", repo.selectSQL)
	assert.Equal(t, "INSERT INTO languages (id, language, level) VALUES ($1, $2, $3)", repo.insertSQL)
	assert.Equal(t, "UPDATE languages SET language = $2, level = $3 WHERE id = $1 RETURNING id, language, level", repo.updateSQL)
}

func TestCrudRepo_Create(t *testing.T) {
	mock, repo := newLanguageRepo(t)
	lang := domain.Language{ID: uuid.New(), Language: "German", Level: "C2"}

	mock.ExpectExec(regexp.QuoteMeta(repo.insertSQL)).
		WithArgs(&lang.ID, &lang.Language, &lang.Level).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), &lang))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudRepo_CreateConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		status  int
		message string
	}{
		{"unique", pgUniqueViolation, http.StatusConflict, "Language already exists"},
		{"missing parent", pgForeignKeyViolation, http.StatusNotFound, "Parent not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newLanguageRepo(t)
			lang := domain.Language{ID: uuid.New(), Language: "German", Level: "C2"}

			mock.ExpectExec(regexp.QuoteMeta(repo.insertSQL)).
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: tt.code})

			err := repo.Create(context.Background(), &lang)
			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.status, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestCrudRepo_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(languageColumns).AddRow(id, "English", "B2"))

		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.Language{ID: id, Language: "English", Level: "B2"}, *got)
	})

	t.Run("not found", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(languageColumns))

		_, err := repo.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Equal(t, "Language not found", err.Error())
	})
}

func TestCrudRepo_FetchAndCount(t *testing.T) {
	mock, repo := newLanguageRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(2, 100).
		WillReturnRows(pgxmock.NewRows(languageColumns).
			AddRow(uuid.New(), "English", "C1").
			AddRow(uuid.New(), "French", "A2"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM languages")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(102)))

	list, err := repo.Fetch(context.Background(), 100, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "French", list[1].Language)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(102), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrudRepo_FetchEmpty(t *testing.T) {
	mock, repo := newLanguageRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL)).
		WithArgs(100, 0).
		WillReturnRows(pgxmock.NewRows(languageColumns))

	list, err := repo.Fetch(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCrudRepo_Update(t *testing.T) {
	t.Run("commits the mutated row", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(languageColumns).AddRow(id, "English", "B2"))
		mock.ExpectQuery(regexp.QuoteMeta(repo.updateSQL)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(languageColumns).AddRow(id, "English", "C1"))
		mock.ExpectCommit()

		got, err := repo.Update(context.Background(), id, func(l *domain.Language) error {
			l.Level = "C1"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "C1", got.Level)
		assert.Equal(t, "English", got.Language)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the row is missing", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(languageColumns))
		mock.ExpectRollback()

		called := false
		_, err := repo.Update(context.Background(), id, func(l *domain.Language) error {
			called = true
			return nil
		})
		assert.True(t, apperror.IsNotFound(err))
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when mutate fails", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(languageColumns).AddRow(id, "English", "B2"))
		mock.ExpectRollback()

		_, err := repo.Update(context.Background(), id, func(l *domain.Language) error {
			return apperror.BadRequest("nope")
		})
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(repo.selectSQL + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(languageColumns).AddRow(id, "English", "B2"))
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_, _ = repo.Update(context.Background(), id, func(l *domain.Language) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCrudRepo_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM languages WHERE id = $1")

	t.Run("deleted", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()
		mock.ExpectExec(deleteSQL).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("missing", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()
		mock.ExpectExec(deleteSQL).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), id)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("dependent records", func(t *testing.T) {
		mock, repo := newLanguageRepo(t)
		id := uuid.New()
		mock.ExpectExec(deleteSQL).WithArgs(id).WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := repo.Delete(context.Background(), id)
		assert.True(t, apperror.HasCode(err, http.StatusConflict))
		assert.Equal(t, "Language still has dependent records", err.Error())
	})
}

func TestJobRepository_DeleteRestrictedByTasks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJobRepository(mock)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM jobs WHERE id = $1")).
		WithArgs(id).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "tasks_job_id_fkey"})

	err = repo.Delete(context.Background(), id)
	assert.True(t, apperror.HasCode(err, http.StatusConflict))
	assert.Equal(t, "Job still has dependent records", err.Error())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("admin@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "is_active", "is_superuser", "full_name", "hashed_password"}).
			AddRow(id, "admin@example.com", true, true, (*string)(nil), "hash"))

	u, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.True(t, u.IsSuperuser)
	assert.Nil(t, u.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
