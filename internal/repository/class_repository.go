package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
)

const classColumns = "id, name, status, schedule, time, university, college, branch, semester, created_at"

// ClassRepository stores classes in PostgreSQL.
type ClassRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

// NewClassRepository constructs a PostgreSQL class repository.
func NewClassRepository(db *sqlx.DB, clk clock.Clock) *ClassRepository {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ClassRepository{db: db, clock: clk}
}

// List returns classes matching the filter, newest first.
func (r *ClassRepository) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	where, args := whereClause([]column{
		{"university", filter.University},
		{"branch", filter.Branch},
		{"semester", filter.Semester},
		{"status", filter.Status},
	})
	query := fmt.Sprintf("SELECT %s FROM classes WHERE 1=1%s ORDER BY created_at DESC", classColumns, where)

	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID returns a class by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	query := fmt.Sprintf("SELECT %s FROM classes WHERE id = $1", classColumns)
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		if isNoRows(err) {
			return nil, errClassNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return &class, nil
}

// Create validates and inserts a class.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if err := validateDocument(class, "invalid class"); err != nil {
		return err
	}
	class.ID = uuid.NewString()
	class.CreatedAt = r.clock.Now()

	const query = `INSERT INTO classes (id, name, status, schedule, time, university, college, branch, semester, created_at) VALUES (:id, :name, :status, :schedule, :time, :university, :college, :branch, :semester, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update replaces every mutable field of an existing class.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	if err := validateDocument(class, "invalid class"); err != nil {
		return err
	}
	const query = `UPDATE classes SET name = :name, status = :status, schedule = :schedule, time = :time, university = :university, college = :college, branch = :branch, semester = :semester WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, class)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return expectAffected(res, errClassNotFound)
}

// Delete removes a class.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return expectAffected(res, errClassNotFound)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
