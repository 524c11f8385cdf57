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

type MVPRepo interface {
	Create(dbc dbctx.Context, mvp *domain.MVP) (*domain.MVP, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.MVP, error)
	GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.MVP, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error
}

type mvpRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.MVP]
}

func NewMVPRepo(db *gorm.DB, baseLog *logger.Logger) MVPRepo {
	return &mvpRepo{
		db:    db,
		log:   baseLog.With("repo", "MVPRepo"),
		store: softdelete.NewStore[domain.MVP](db, baseLog, "mvp"),
	}
}

func (r *mvpRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *mvpRepo) Create(dbc dbctx.Context, mvp *domain.MVP) (*domain.MVP, error) {
	if err := r.handle(dbc).Create(mvp).Error; err != nil {
		return nil, err
	}
	return mvp, nil
}

func (r *mvpRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.MVP, error) {
	return r.store.GetByID(dbc, id)
}

func (r *mvpRepo) GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.MVP, error) {
	return r.store.List(dbc, query.NewFilter().Where("experiment_id = ?", experimentID))
}

func (r *mvpRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.handle(dbc).Model(&domain.MVP{}).Where("id = ?", id).Updates(fields).Error
}
