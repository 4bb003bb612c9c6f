package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
)

// memoryTable keeps documents in insertion order; List sorts newest first and
// breaks timestamp ties by insertion order.
type memoryTable[T any] struct {
	mu    sync.RWMutex
	seq   int
	order map[string]int
	rows  map[string]T
}

func newMemoryTable[T any]() *memoryTable[T] {
	return &memoryTable[T]{order: map[string]int{}, rows: map[string]T{}}
}

func (t *memoryTable[T]) list(less func(a, b T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	ids := make([]string, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return t.order[ids[i]] > t.order[ids[j]] })
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (t *memoryTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *memoryTable[T]) insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.order[id] = t.seq
	t.rows[id] = row
}

func (t *memoryTable[T]) replace(id string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *memoryTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	delete(t.order, id)
	return true
}

// MemoryResourceRepository keeps resources in process memory.
type MemoryResourceRepository struct {
	table *memoryTable[models.Resource]
	clock clock.Clock
}

// NewMemoryResourceRepository constructs an empty in-memory resource store.
func NewMemoryResourceRepository(clk clock.Clock) *MemoryResourceRepository {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MemoryResourceRepository{table: newMemoryTable[models.Resource](), clock: clk}
}

func (r *MemoryResourceRepository) List(_ context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	all := r.table.list(func(a, b models.Resource) bool { return a.UploadedAt.After(b.UploadedAt) })
	return filter.Apply(all), nil
}

func (r *MemoryResourceRepository) FindByID(_ context.Context, id string) (*models.Resource, error) {
	row, ok := r.table.get(id)
	if !ok {
		return nil, errResourceNotFound
	}
	return &row, nil
}

func (r *MemoryResourceRepository) Create(_ context.Context, resource *models.Resource) error {
	if err := validateDocument(resource, "invalid resource"); err != nil {
		return err
	}
	resource.ID = uuid.NewString()
	resource.UploadedAt = r.clock.Now()
	r.table.insert(resource.ID, *resource)
	return nil
}

func (r *MemoryResourceRepository) Update(_ context.Context, resource *models.Resource) error {
	existing, ok := r.table.get(resource.ID)
	if !ok {
		return errResourceNotFound
	}
	if err := validateDocument(resource, "invalid resource"); err != nil {
		return err
	}
	resource.UploadedAt = existing.UploadedAt
	if !r.table.replace(resource.ID, *resource) {
		return errResourceNotFound
	}
	return nil
}

func (r *MemoryResourceRepository) Delete(_ context.Context, id string) error {
	if !r.table.remove(id) {
		return errResourceNotFound
	}
	return nil
}

// MemoryClassRepository keeps classes in process memory.
type MemoryClassRepository struct {
	table *memoryTable[models.Class]
	clock clock.Clock
}

// NewMemoryClassRepository constructs an empty in-memory class store.
func NewMemoryClassRepository(clk clock.Clock) *MemoryClassRepository {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MemoryClassRepository{table: newMemoryTable[models.Class](), clock: clk}
}

func (r *MemoryClassRepository) List(_ context.Context, filter models.ClassFilter) ([]models.Class, error) {
	all := r.table.list(func(a, b models.Class) bool { return a.CreatedAt.After(b.CreatedAt) })
	return filter.Apply(all), nil
}

func (r *MemoryClassRepository) FindByID(_ context.Context, id string) (*models.Class, error) {
	row, ok := r.table.get(id)
	if !ok {
		return nil, errClassNotFound
	}
	return &row, nil
}

func (r *MemoryClassRepository) Create(_ context.Context, class *models.Class) error {
	if err := validateDocument(class, "invalid class"); err != nil {
		return err
	}
	class.ID = uuid.NewString()
	class.CreatedAt = r.clock.Now()
	r.table.insert(class.ID, *class)
	return nil
}

func (r *MemoryClassRepository) Update(_ context.Context, class *models.Class) error {
	existing, ok := r.table.get(class.ID)
	if !ok {
		return errClassNotFound
	}
	if err := validateDocument(class, "invalid class"); err != nil {
		return err
	}
	class.CreatedAt = existing.CreatedAt
	if !r.table.replace(class.ID, *class) {
		return errClassNotFound
	}
	return nil
}

func (r *MemoryClassRepository) Delete(_ context.Context, id string) error {
	if !r.table.remove(id) {
		return errClassNotFound
	}
	return nil
}
