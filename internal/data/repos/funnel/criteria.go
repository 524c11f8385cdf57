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

type SuccessCriteriaRepo interface {
	Create(dbc dbctx.Context, criteria []*domain.SuccessCriteria) ([]*domain.SuccessCriteria, error)
	GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.SuccessCriteria, error)
	GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.SuccessCriteria, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error
}

type successCriteriaRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.SuccessCriteria]
}

func NewSuccessCriteriaRepo(db *gorm.DB, baseLog *logger.Logger) SuccessCriteriaRepo {
	return &successCriteriaRepo{
		db:    db,
		log:   baseLog.With("repo", "SuccessCriteriaRepo"),
		store: softdelete.NewStore[domain.SuccessCriteria](db, baseLog, "success_criteria"),
	}
}

func (r *successCriteriaRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *successCriteriaRepo) Create(dbc dbctx.Context, criteria []*domain.SuccessCriteria) ([]*domain.SuccessCriteria, error) {
	if len(criteria) == 0 {
		return []*domain.SuccessCriteria{}, nil
	}
	if err := r.handle(dbc).Create(&criteria).Error; err != nil {
		return nil, err
	}
	return criteria, nil
}

func (r *successCriteriaRepo) GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.SuccessCriteria, error) {
	return r.store.List(dbc, query.NewFilter().Where("hypothesis_id = ?", hypothesisID))
}

func (r *successCriteriaRepo) GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.SuccessCriteria, error) {
	return r.store.List(dbc, query.NewFilter().Where("experiment_id = ?", experimentID))
}

func (r *successCriteriaRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.handle(dbc).Model(&domain.SuccessCriteria{}).Where("id = ?", id).Updates(fields).Error
}
