package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cv-manager-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// table describes how one entity maps onto its table. columns[0] is the
// primary key; fields returns pointers to the entity fields in column order.
type table[E any] struct {
	name     string
	label    string
	parent   string
	conflict string
	columns  []string
	orderBy  string
	fields   func(e *E) []any
}

type crudRepo[E any] struct {
	db DB
	t  table[E]

	selectSQL string
	insertSQL string
	updateSQL string
}

func newCrudRepo[E any](db DB, t table[E]) *crudRepo[E] {
	cols := strings.Join(t.columns, ", ")

	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sets := make([]string, 0, len(t.columns)-1)
	for i, col := range t.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}

	return &crudRepo[E]{
		db:        db,
		t:         t,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", cols, t.name),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, cols, strings.Join(placeholders, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1 RETURNING %s",
			t.name, strings.Join(sets, ", "), t.columns[0], cols),
	}
}

func (r *crudRepo[E]) notFound() error {
	return apperror.NotFound(r.t.label + " not found")
}

func (r *crudRepo[E]) Create(ctx context.Context, e *E) error {
	if _, err := r.db.Exec(ctx, r.insertSQL, r.t.fields(e)...); err != nil {
		return r.writeError(err)
	}
	return nil
}

func (r *crudRepo[E]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	return r.getOne(ctx, r.db, r.selectSQL+" WHERE "+r.t.columns[0]+" = $1", id)
}

func (r *crudRepo[E]) getOne(ctx context.Context, q rowQuerier, query string, args ...any) (*E, error) {
	var e E
	if err := q.QueryRow(ctx, query, args...).Scan(r.t.fields(&e)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFound()
		}
		return nil, apperror.Internal(err)
	}
	return &e, nil
}

func (r *crudRepo[E]) Fetch(ctx context.Context, offset, limit int) ([]E, error) {
	query := fmt.Sprintf("%s ORDER BY %s LIMIT $1 OFFSET $2", r.selectSQL, r.t.orderBy)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	list := make([]E, 0)
	for rows.Next() {
		var e E
		if err := rows.Scan(r.t.fields(&e)...); err != nil {
			return nil, apperror.Internal(err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func (r *crudRepo[E]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+r.t.name).Scan(&n); err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func (r *crudRepo[E]) Update(ctx context.Context, id uuid.UUID, mutate func(e *E) error) (*E, error) {
	var updated *E
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		current, err := r.getOne(ctx, tx, r.selectSQL+" WHERE "+r.t.columns[0]+" = $1", id)
		if err != nil {
			return err
		}
		if err := mutate(current); err != nil {
			return err
		}

		var out E
		if err := tx.QueryRow(ctx, r.updateSQL, r.t.fields(current)...).Scan(r.t.fields(&out)...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.notFound()
			}
			return r.writeError(err)
		}
		updated = &out
		return nil
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (r *crudRepo[E]) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM "+r.t.name+" WHERE "+r.t.columns[0]+" = $1", id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.Conflict(r.t.label + " still has dependent records")
		}
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return r.notFound()
	}
	return nil
}

// writeError maps constraint violations raised by INSERT and UPDATE.
func (r *crudRepo[E]) writeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			msg := r.t.conflict
			if msg == "" {
				msg = r.t.label + " already exists"
			}
			return apperror.New(http.StatusConflict, msg, err)
		case pgForeignKeyViolation:
			parent := r.t.parent
			if parent == "" {
				parent = "Parent"
			}
			return apperror.New(http.StatusNotFound, parent+" not found", err)
		}
	}
	return apperror.Internal(err)
}
