package funnel

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/query"
	"github.com/ideaforge/ideaforge-backend/internal/data/softdelete"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type HypothesisRepo interface {
	Create(dbc dbctx.Context, hyp *domain.Hypothesis) (*domain.Hypothesis, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Hypothesis, error)
	GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*domain.Hypothesis, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	Update(dbc dbctx.Context, hyp *domain.Hypothesis) error
	UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error
	GetByIdeaID(dbc dbctx.Context, ideaID uuid.UUID) ([]*domain.Hypothesis, error)
	ListByStatus(dbc dbctx.Context, status domain.HypothesisStatus) ([]*domain.Hypothesis, error)
	CountByStatus(dbc dbctx.Context) (map[domain.HypothesisStatus]int64, error)
	CountAll(dbc dbctx.Context) (int64, error)
	CountValidated(dbc dbctx.Context) (int64, error)
	SoftDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Hypothesis, error)
	Restore(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Hypothesis, error)
	HardDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) error
	BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID, actorID uuid.UUID) (int64, error)
}

type hypothesisRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.Hypothesis]
	ices  ICEScoreRepo
	audit audit.Recorder
}

func NewHypothesisRepo(db *gorm.DB, baseLog *logger.Logger, ices ICEScoreRepo, rec audit.Recorder) HypothesisRepo {
	return &hypothesisRepo{
		db:    db,
		log:   baseLog.With("repo", "HypothesisRepo"),
		store: softdelete.NewStore[domain.Hypothesis](db, baseLog, "hypothesis"),
		ices:  ices,
		audit: rec,
	}
}

func (r *hypothesisRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *hypothesisRepo) Create(dbc dbctx.Context, hyp *domain.Hypothesis) (*domain.Hypothesis, error) {
	if err := r.handle(dbc).Create(hyp).Error; err != nil {
		return nil, err
	}
	return hyp, nil
}

func (r *hypothesisRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Hypothesis, error) {
	return r.store.GetByID(dbc, id)
}

func (r *hypothesisRepo) GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*domain.Hypothesis, error) {
	return r.store.GetByIDIncludingDeleted(dbc, id)
}

func (r *hypothesisRepo) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	return r.store.Exists(dbc, id)
}

func (r *hypothesisRepo) Update(dbc dbctx.Context, hyp *domain.Hypothesis) error {
	return r.handle(dbc).Save(hyp).Error
}

func (r *hypothesisRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.handle(dbc).Model(&domain.Hypothesis{}).Where("id = ?", id).Updates(fields).Error
}

func (r *hypothesisRepo) GetByIdeaID(dbc dbctx.Context, ideaID uuid.UUID) ([]*domain.Hypothesis, error) {
	return r.store.List(dbc, query.NewFilter().Where("idea_id = ?", ideaID))
}

func (r *hypothesisRepo) ListByStatus(dbc dbctx.Context, status domain.HypothesisStatus) ([]*domain.Hypothesis, error) {
	return r.store.List(dbc, query.NewFilter().Where("status = ?", status))
}

func (r *hypothesisRepo) CountByStatus(dbc dbctx.Context) (map[domain.HypothesisStatus]int64, error) {
	var rows []struct {
		Status domain.HypothesisStatus
		Count  int64
	}
	if err := r.handle(dbc).Model(&domain.Hypothesis{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[domain.HypothesisStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *hypothesisRepo) CountAll(dbc dbctx.Context) (int64, error) {
	return r.store.Count(dbc, nil)
}

func (r *hypothesisRepo) CountValidated(dbc dbctx.Context) (int64, error) {
	return r.store.Count(dbc, query.NewFilter().Where("status = ?", domain.HypothesisStatusValidated))
}

func (r *hypothesisRepo) SoftDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Hypothesis, error) {
	hyp, err := r.store.SoftDelete(dbc, id)
	if err != nil {
		return nil, err
	}
	// Scores go with their hypothesis; a later re-score revives them
	// through the upsert.
	if err := r.ices.SoftDeleteByHypothesisID(dbc, id); err != nil {
		return nil, err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivitySoftDeleted,
		Description: fmt.Sprintf("hypothesis %q soft-deleted", hyp.Title),
		EntityType:  "hypothesis",
		EntityID:    id,
		ActorID:     actorID,
	})
	return hyp, nil
}

func (r *hypothesisRepo) Restore(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Hypothesis, error) {
	hyp, err := r.store.Restore(dbc, id)
	if err != nil {
		return nil, err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivityRestored,
		Description: fmt.Sprintf("hypothesis %q restored", hyp.Title),
		EntityType:  "hypothesis",
		EntityID:    id,
		ActorID:     actorID,
	})
	return hyp, nil
}

func (r *hypothesisRepo) HardDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) error {
	if err := r.store.HardDelete(dbc, id); err != nil {
		return err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivityHardDeleted,
		Severity:    domain.ActivitySeverityWarning,
		Description: "hypothesis permanently deleted",
		EntityType:  "hypothesis",
		EntityID:    id,
		ActorID:     actorID,
	})
	return nil
}

func (r *hypothesisRepo) BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID, actorID uuid.UUID) (int64, error) {
	affected, err := r.store.BulkSoftDelete(dbc, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if err := r.ices.SoftDeleteByHypothesisID(dbc, id); err != nil {
			return affected, err
		}
	}
	for _, id := range ids {
		r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
			Type:        domain.ActivitySoftDeleted,
			Description: "hypothesis soft-deleted (bulk)",
			EntityType:  "hypothesis",
			EntityID:    id,
			ActorID:     actorID,
		})
	}
	return affected, nil
}
