package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
)

const resourceColumns = "id, name, subject_code, header, university, scheme, college, branch, semester, type, file_url, uploaded_at"

// ResourceRepository stores resources in PostgreSQL.
type ResourceRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

// NewResourceRepository constructs a PostgreSQL resource repository.
func NewResourceRepository(db *sqlx.DB, clk clock.Clock) *ResourceRepository {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ResourceRepository{db: db, clock: clk}
}

// List returns resources matching the filter, newest upload first.
func (r *ResourceRepository) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	where, args := whereClause([]column{
		{"university", filter.University},
		{"branch", filter.Branch},
		{"semester", filter.Semester},
		{"type", filter.Type},
	})
	query := fmt.Sprintf("SELECT %s FROM resources WHERE 1=1%s ORDER BY uploaded_at DESC", resourceColumns, where)

	resources := []models.Resource{}
	if err := r.db.SelectContext(ctx, &resources, query, args...); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// FindByID returns a resource by ID.
func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	query := fmt.Sprintf("SELECT %s FROM resources WHERE id = $1", resourceColumns)
	var resource models.Resource
	if err := r.db.GetContext(ctx, &resource, query, id); err != nil {
		if isNoRows(err) {
			return nil, errResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return &resource, nil
}

// Create validates and inserts a resource, assigning its ID and upload time.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if err := validateDocument(resource, "invalid resource"); err != nil {
		return err
	}
	resource.ID = uuid.NewString()
	resource.UploadedAt = r.clock.Now()

	const query = `INSERT INTO resources (id, name, subject_code, header, university, scheme, college, branch, semester, type, file_url, uploaded_at) VALUES (:id, :name, :subject_code, :header, :university, :scheme, :college, :branch, :semester, :type, :file_url, :uploaded_at)`
	if _, err := r.db.NamedExecContext(ctx, query, resource); err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

// Update replaces every mutable field of an existing resource.
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	if err := validateDocument(resource, "invalid resource"); err != nil {
		return err
	}
	const query = `UPDATE resources SET name = :name, subject_code = :subject_code, header = :header, university = :university, scheme = :scheme, college = :college, branch = :branch, semester = :semester, type = :type, file_url = :file_url WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, resource)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return expectAffected(res, errResourceNotFound)
}

// Delete removes a resource.
func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return expectAffected(res, errResourceNotFound)
}

type column struct {
	name  string
	value string
}

// whereClause renders equality conditions for every set filter column.
func whereClause(cols []column) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	for _, col := range cols {
		if col.value == "" || col.value == models.FilterAll {
			continue
		}
		args = append(args, col.value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col.name, len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(conditions, " AND "), args
}
