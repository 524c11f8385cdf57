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

type LessonRepo interface {
	Create(dbc dbctx.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.Lesson, error)
	GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.Lesson, error)
}

type lessonRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.Lesson]
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return &lessonRepo{
		db:    db,
		log:   baseLog.With("repo", "LessonRepo"),
		store: softdelete.NewStore[domain.Lesson](db, baseLog, "lesson"),
	}
}

func (r *lessonRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *lessonRepo) Create(dbc dbctx.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	if err := r.handle(dbc).Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *lessonRepo) GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.Lesson, error) {
	return r.store.List(dbc, query.NewFilter().Where("hypothesis_id = ?", hypothesisID))
}

func (r *lessonRepo) GetByExperimentID(dbc dbctx.Context, experimentID uuid.UUID) ([]*domain.Lesson, error) {
	return r.store.List(dbc, query.NewFilter().Where("experiment_id = ?", experimentID))
}
