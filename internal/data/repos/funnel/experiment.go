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

type ExperimentRepo interface {
	Create(dbc dbctx.Context, exp *domain.Experiment) (*domain.Experiment, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Experiment, error)
	GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*domain.Experiment, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	Update(dbc dbctx.Context, exp *domain.Experiment) error
	UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error
	GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.Experiment, error)
	ListRunning(dbc dbctx.Context) ([]*domain.Experiment, error)
	CountByStatus(dbc dbctx.Context) (map[domain.ExperimentStatus]int64, error)
	CountAll(dbc dbctx.Context) (int64, error)
	CountRunning(dbc dbctx.Context) (int64, error)
	SoftDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Experiment, error)
	Restore(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Experiment, error)
	HardDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) error
	BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID, actorID uuid.UUID) (int64, error)
}

type experimentRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.Experiment]
	audit audit.Recorder
}

func NewExperimentRepo(db *gorm.DB, baseLog *logger.Logger, rec audit.Recorder) ExperimentRepo {
	return &experimentRepo{
		db:    db,
		log:   baseLog.With("repo", "ExperimentRepo"),
		store: softdelete.NewStore[domain.Experiment](db, baseLog, "experiment"),
		audit: rec,
	}
}

func (r *experimentRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *experimentRepo) Create(dbc dbctx.Context, exp *domain.Experiment) (*domain.Experiment, error) {
	if err := r.handle(dbc).Create(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

func (r *experimentRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Experiment, error) {
	return r.store.GetByID(dbc, id)
}

func (r *experimentRepo) GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*domain.Experiment, error) {
	return r.store.GetByIDIncludingDeleted(dbc, id)
}

func (r *experimentRepo) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	return r.store.Exists(dbc, id)
}

func (r *experimentRepo) Update(dbc dbctx.Context, exp *domain.Experiment) error {
	return r.handle(dbc).Save(exp).Error
}

func (r *experimentRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.handle(dbc).Model(&domain.Experiment{}).Where("id = ?", id).Updates(fields).Error
}

func (r *experimentRepo) GetByHypothesisID(dbc dbctx.Context, hypothesisID uuid.UUID) ([]*domain.Experiment, error) {
	return r.store.List(dbc, query.NewFilter().Where("hypothesis_id = ?", hypothesisID))
}

func (r *experimentRepo) ListRunning(dbc dbctx.Context) ([]*domain.Experiment, error) {
	return r.store.List(dbc, query.NewFilter().Where("status = ?", domain.ExperimentStatusRunning))
}

func (r *experimentRepo) CountByStatus(dbc dbctx.Context) (map[domain.ExperimentStatus]int64, error) {
	var rows []struct {
		Status domain.ExperimentStatus
		Count  int64
	}
	if err := r.handle(dbc).Model(&domain.Experiment{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[domain.ExperimentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *experimentRepo) CountAll(dbc dbctx.Context) (int64, error) {
	return r.store.Count(dbc, nil)
}

func (r *experimentRepo) CountRunning(dbc dbctx.Context) (int64, error) {
	return r.store.Count(dbc, query.NewFilter().Where("status = ?", domain.ExperimentStatusRunning))
}

func (r *experimentRepo) SoftDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Experiment, error) {
	exp, err := r.store.SoftDelete(dbc, id)
	if err != nil {
		return nil, err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivitySoftDeleted,
		Description: fmt.Sprintf("experiment %q soft-deleted", exp.Title),
		EntityType:  "experiment",
		EntityID:    id,
		ActorID:     actorID,
	})
	return exp, nil
}

func (r *experimentRepo) Restore(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Experiment, error) {
	exp, err := r.store.Restore(dbc, id)
	if err != nil {
		return nil, err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivityRestored,
		Description: fmt.Sprintf("experiment %q restored", exp.Title),
		EntityType:  "experiment",
		EntityID:    id,
		ActorID:     actorID,
	})
	return exp, nil
}

func (r *experimentRepo) HardDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) error {
	if err := r.store.HardDelete(dbc, id); err != nil {
		return err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivityHardDeleted,
		Severity:    domain.ActivitySeverityWarning,
		Description: "experiment permanently deleted",
		EntityType:  "experiment",
		EntityID:    id,
		ActorID:     actorID,
	})
	return nil
}

func (r *experimentRepo) BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID, actorID uuid.UUID) (int64, error) {
	affected, err := r.store.BulkSoftDelete(dbc, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
			Type:        domain.ActivitySoftDeleted,
			Description: "experiment soft-deleted (bulk)",
			EntityType:  "experiment",
			EntityID:    id,
			ActorID:     actorID,
		})
	}
	return affected, nil
}
