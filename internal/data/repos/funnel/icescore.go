package funnel

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ideaforge/ideaforge-backend/internal/data/query"
	"github.com/ideaforge/ideaforge-backend/internal/data/softdelete"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type ICEScoreRepo interface {
	// Upsert inserts the scores, replacing any previous score by the same
	// user for the same hypothesis. A soft-deleted previous score is
	// revived: the conflict update clears its deletion timestamp.
	Upsert(dbc dbctx.Context, scores []*domain.ICEScore) ([]*domain.ICEScore, error)
	GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.ICEScore, error)
	SoftDeleteByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) error
}

type iceScoreRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.ICEScore]
}

func NewICEScoreRepo(db *gorm.DB, baseLog *logger.Logger) ICEScoreRepo {
	return &iceScoreRepo{
		db:    db,
		log:   baseLog.With("repo", "ICEScoreRepo"),
		store: softdelete.NewStore[domain.ICEScore](db, baseLog, "ice_score"),
	}
}

func (r *iceScoreRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *iceScoreRepo) Upsert(dbc dbctx.Context, scores []*domain.ICEScore) ([]*domain.ICEScore, error) {
	if len(scores) == 0 {
		return []*domain.ICEScore{}, nil
	}
	if err := r.handle(dbc).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hypothesis_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"impact", "confidence", "ease", "comment", "updated_at", "deleted_at",
		}),
	}).Create(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *iceScoreRepo) GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.ICEScore, error) {
	return r.store.List(dbc, query.NewFilter().Where("hypothesis_id = ?", hypothesisID))
}

func (r *iceScoreRepo) SoftDeleteByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) error {
	return r.handle(dbc).
		Where("hypothesis_id = ?", hypothesisID).
		Delete(&domain.ICEScore{}).Error
}
