package funnel

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

// ActivityRepo is append-only: no update, no delete of any kind.
type ActivityRepo interface {
	Create(dbc dbctx.Context, activities []*domain.Activity) ([]*domain.Activity, error)
	Recent(dbc dbctx.Context, limit int) ([]*domain.Activity, error)
	GetByEntity(dbc dbctx.Context, entityType string, entityID uuid.UUID) ([]*domain.Activity, error)
}

type activityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityRepo(db *gorm.DB, baseLog *logger.Logger) ActivityRepo {
	return &activityRepo{
		db:  db,
		log: baseLog.With("repo", "ActivityRepo"),
	}
}

func (r *activityRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *activityRepo) Create(dbc dbctx.Context, activities []*domain.Activity) ([]*domain.Activity, error) {
	if len(activities) == 0 {
		return []*domain.Activity{}, nil
	}
	if err := r.handle(dbc).Create(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepo) Recent(dbc dbctx.Context, limit int) ([]*domain.Activity, error) {
	var results []*domain.Activity
	if err := r.handle(dbc).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *activityRepo) GetByEntity(dbc dbctx.Context, entityType string, entityID uuid.UUID) ([]*domain.Activity, error) {
	var results []*domain.Activity
	if err := r.handle(dbc).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
