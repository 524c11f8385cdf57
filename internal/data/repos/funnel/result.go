package funnel

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/data/query"
	"github.com/ideaforge/ideaforge-backend/internal/data/softdelete"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type ExperimentResultRepo interface {
	Create(dbc dbctx.Context, results []*domain.ExperimentResult) ([]*domain.ExperimentResult, error)
	GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.ExperimentResult, error)
	SoftDeleteByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) error
}

type experimentResultRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.ExperimentResult]
}

func NewExperimentResultRepo(db *gorm.DB, baseLog *logger.Logger) ExperimentResultRepo {
	return &experimentResultRepo{
		db:    db,
		log:   baseLog.With("repo", "ExperimentResultRepo"),
		store: softdelete.NewStore[domain.ExperimentResult](db, baseLog, "experiment_result"),
	}
}

func (r *experimentResultRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *experimentResultRepo) Create(dbc dbctx.Context, results []*domain.ExperimentResult) ([]*domain.ExperimentResult, error) {
	if len(results) == 0 {
		return []*domain.ExperimentResult{}, nil
	}
	if err := r.handle(dbc).Create(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *experimentResultRepo) GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.ExperimentResult, error) {
	return r.store.List(dbc, query.NewFilter().Where("experiment_id = ?", experimentID))
}

func (r *experimentResultRepo) SoftDeleteByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) error {
	return r.handle(dbc).
		Where("experiment_id = ?", experimentID).
		Delete(&domain.ExperimentResult{}).Error
}
