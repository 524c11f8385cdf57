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

type IdeaRepo interface {
	Create(dbc dbctx.Context, idea *domain.Idea) (*domain.Idea, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Idea, error)
	GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*domain.Idea, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	Update(dbc dbctx.Context, idea *domain.Idea) error
	UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error
	List(dbc dbctx.Context, f *query.Filter) ([]*domain.Idea, error)
	ListByStatus(dbc dbctx.Context, status domain.IdeaStatus) ([]*domain.Idea, error)
	TopByRICE(dbc dbctx.Context, limit int) ([]*domain.Idea, error)
	CountByStatus(dbc dbctx.Context) (map[domain.IdeaStatus]int64, error)
	CountAll(dbc dbctx.Context) (int64, error)
	SoftDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Idea, error)
	Restore(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Idea, error)
	HardDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) error
	BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID, actorID uuid.UUID) (int64, error)
}

type ideaRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	store *softdelete.Store[domain.Idea]
	audit audit.Recorder
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger, rec audit.Recorder) IdeaRepo {
	return &ideaRepo{
		db:    db,
		log:   baseLog.With("repo", "IdeaRepo"),
		store: softdelete.NewStore[domain.Idea](db, baseLog, "idea"),
		audit: rec,
	}
}

func (r *ideaRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *ideaRepo) Create(dbc dbctx.Context, idea *domain.Idea) (*domain.Idea, error) {
	if err := r.handle(dbc).Create(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Idea, error) {
	return r.store.GetByID(dbc, id)
}

func (r *ideaRepo) GetByIDIncludingDeleted(dbc dbctx.Context, id uuid.UUID) (*domain.Idea, error) {
	return r.store.GetByIDIncludingDeleted(dbc, id)
}

func (r *ideaRepo) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	return r.store.Exists(dbc, id)
}

func (r *ideaRepo) Update(dbc dbctx.Context, idea *domain.Idea) error {
	return r.handle(dbc).Save(idea).Error
}

func (r *ideaRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.handle(dbc).Model(&domain.Idea{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ideaRepo) List(dbc dbctx.Context, f *query.Filter) ([]*domain.Idea, error) {
	return r.store.List(dbc, f)
}

func (r *ideaRepo) ListByStatus(dbc dbctx.Context, status domain.IdeaStatus) ([]*domain.Idea, error) {
	return r.store.List(dbc, query.NewFilter().Where("status = ?", status))
}

func (r *ideaRepo) TopByRICE(dbc dbctx.Context, limit int) ([]*domain.Idea, error) {
	var results []*domain.Idea
	if err := r.handle(dbc).
		Order("rice_score DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ideaRepo) CountByStatus(dbc dbctx.Context) (map[domain.IdeaStatus]int64, error) {
	var rows []struct {
		Status domain.IdeaStatus
		Count  int64
	}
	if err := r.handle(dbc).Model(&domain.Idea{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[domain.IdeaStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *ideaRepo) CountAll(dbc dbctx.Context) (int64, error) {
	return r.store.Count(dbc, nil)
}

func (r *ideaRepo) SoftDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Idea, error) {
	idea, err := r.store.SoftDelete(dbc, id)
	if err != nil {
		return nil, err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivitySoftDeleted,
		Description: fmt.Sprintf("idea %q soft-deleted", idea.Title),
		EntityType:  "idea",
		EntityID:    id,
		ActorID:     actorID,
	})
	return idea, nil
}

func (r *ideaRepo) Restore(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) (*domain.Idea, error) {
	idea, err := r.store.Restore(dbc, id)
	if err != nil {
		return nil, err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivityRestored,
		Description: fmt.Sprintf("idea %q restored", idea.Title),
		EntityType:  "idea",
		EntityID:    id,
		ActorID:     actorID,
	})
	return idea, nil
}

func (r *ideaRepo) HardDelete(dbc dbctx.Context, id uuid.UUID, actorID uuid.UUID) error {
	if err := r.store.HardDelete(dbc, id); err != nil {
		return err
	}
	r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
		Type:        domain.ActivityHardDeleted,
		Severity:    domain.ActivitySeverityWarning,
		Description: "idea permanently deleted",
		EntityType:  "idea",
		EntityID:    id,
		ActorID:     actorID,
	})
	return nil
}

func (r *ideaRepo) BulkSoftDelete(dbc dbctx.Context, ids []uuid.UUID, actorID uuid.UUID) (int64, error) {
	affected, err := r.store.BulkSoftDelete(dbc, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		r.audit.RecordBestEffort(dbc.Ctx, audit.Entry{
			Type:        domain.ActivitySoftDeleted,
			Description: "idea soft-deleted (bulk)",
			EntityType:  "idea",
			EntityID:    id,
			ActorID:     actorID,
		})
	}
	return affected, nil
}
