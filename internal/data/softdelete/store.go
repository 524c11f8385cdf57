package softdelete

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/data/query"
	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

// Store provides soft-delete-aware primitives for any model carrying a
// gorm.DeletedAt column. SoftDelete and Restore are single conditional
// updates: the row-matched check doubles as the existence/state check, which
// is what gives at-most-once semantics under concurrent callers.
type Store[T any] struct {
	db     *gorm.DB
	log    *logger.Logger
	entity string
}

func NewStore[T any](db *gorm.DB, baseLog *logger.Logger, entity string) *Store[T] {
	return &Store[T]{
		db:     db,
		log:    baseLog.With("store", entity),
		entity: entity,
	}
}

func (s *Store[T]) Entity() string { return s.entity }

func (s *Store[T]) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = s.db
	}
	return transaction.WithContext(dbc.Ctx)
}

// SoftDelete marks the row deleted where the id matches AND the deletion
// timestamp is unset. Zero rows matched means missing or already deleted;
// both surface as NotFoundError.
func (s *Store[T]) SoftDelete(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	res := s.handle(dbc).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperr.NotFoundError{Entity: s.entity, ID: id}
	}
	return s.GetByIDIncludingDeleted(dbc, id)
}

// Restore clears the deletion timestamp where the id matches AND the
// timestamp is set. The symmetric inverse of SoftDelete.
func (s *Store[T]) Restore(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	res := s.handle(dbc).Unscoped().Model(new(T)).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperr.NotFoundError{Entity: s.entity, ID: id}
	}
	return s.GetByID(dbc, id)
}

// HardDelete physically removes the row regardless of soft-delete state.
// Irreversible; reserved for administrative purge.
func (s *Store[T]) HardDelete(dbc dbctx.Context, id uuid.UUID) error {
	res := s.handle(dbc).Unscoped().Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperr.NotFoundError{Entity: s.entity, ID: id}
	}
	return nil
}

// BulkSoftDelete marks every listed row deleted, with the same per-row
// conditional guarantee. Returns how many rows were actually marked.
func (s *Store[T]) BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.handle(dbc).Where("id IN ?", ids).Delete(new(T))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *Store[T]) GetByID(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.handle(dbc).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: s.entity, ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store[T]) GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.handle(dbc).Unscoped().First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: s.entity, ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store[T]) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := s.handle(dbc).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List reads rows matching the filter, in no particular order.
func (s *Store[T]) List(dbc dbctx.Context, f *query.Filter) ([]*T, error) {
	var rows []*T
	tx := s.handle(dbc).Model(new(T))
	if f != nil {
		tx = f.Apply(tx)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts rows matching the filter.
func (s *Store[T]) Count(dbc dbctx.Context, f *query.Filter) (int64, error) {
	var count int64
	tx := s.handle(dbc).Model(new(T))
	if f != nil {
		tx = f.Apply(tx)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
