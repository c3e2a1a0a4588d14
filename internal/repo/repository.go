package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayhub/internal/domain"
)

// Updatable is what Update needs from an entity: a validated partial merge.
// All domain entities implement it.
type Updatable interface {
	Apply(fields map[string]any) error
}

// Repo is a single-entity CRUD abstraction over gorm. Preloads are applied on
// reads so to-many associations come back in one query.
type Repo[T any] struct {
	db       *gorm.DB
	preloads []string
}

func New[T any](db *gorm.DB, preloads ...string) *Repo[T] {
	return &Repo[T]{db: db, preloads: preloads}
}

func (r *Repo[T]) Add(ctx context.Context, m *T) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return Classify(err)
	}
	return nil
}

// Get returns (nil, nil) when the row does not exist; the facade decides
// whether absence is an error.
func (r *Repo[T]) Get(ctx context.Context, id string) (*T, error) {
	var m T
	err := r.query(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Unexpected(err)
	}
	return &m, nil
}

func (r *Repo[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.query(ctx).Order("created_at").Find(&items).Error; err != nil {
		return nil, domain.Unexpected(err)
	}
	return items, nil
}

// Update loads the row, applies a validated field merge and persists it.
// Returns (nil, nil) when the row does not exist.
func (r *Repo[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	m, err := r.Get(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}
	up, ok := any(m).(Updatable)
	if !ok {
		return nil, domain.Unexpected(fmt.Errorf("%T does not support partial update", m))
	}
	if err := up.Apply(fields); err != nil {
		return nil, err
	}
	// Associations were only loaded for reading; keep Save off them.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return nil, Classify(err)
	}
	return m, nil
}

func (r *Repo[T]) Delete(ctx context.Context, id string) (bool, error) {
	var m T
	res := r.db.WithContext(ctx).Delete(&m, "id = ?", id)
	if res.Error != nil {
		return false, domain.Unexpected(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetByAttribute does a single-row lookup by column. Column names come from
// code, never from request input.
func (r *Repo[T]) GetByAttribute(ctx context.Context, column string, value any) (*T, error) {
	var m T
	err := r.query(ctx).First(&m, column+" = ?", value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Unexpected(err)
	}
	return &m, nil
}

func (r *Repo[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}
