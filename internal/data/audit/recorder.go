package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type Entry struct {
	Type        domain.ActivityType
	Severity    domain.ActivitySeverity
	Description string
	EntityType  string
	EntityID    uuid.UUID
	ActorID     uuid.UUID
}

// Recorder appends Activity rows. Record returns the write error so callers
// can feed telemetry; RecordBestEffort downgrades it to a warning. Writes
// always go through the recorder's own handle, never a caller transaction,
// so a failed audit write cannot roll back the primary mutation.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	RecordBestEffort(ctx context.Context, e Entry)
}

type recorder struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func NewRecorder(db *gorm.DB, baseLog *logger.Logger) Recorder {
	return &recorder{
		db:  db,
		log: baseLog.With("component", "AuditRecorder"),
		now: time.Now,
	}
}

func (r *recorder) Record(ctx context.Context, e Entry) error {
	severity := e.Severity
	if severity == "" {
		severity = domain.ActivitySeverityInfo
	}
	row := &domain.Activity{
		ID:          uuid.New(),
		Type:        e.Type,
		Severity:    severity,
		Description: e.Description,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		ActorID:     e.ActorID,
		CreatedAt:   r.now().UTC(),
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *recorder) RecordBestEffort(ctx context.Context, e Entry) {
	if err := r.Record(ctx, e); err != nil {
		r.log.Warn("activity log write failed",
			"error", err,
			"type", e.Type,
			"entity_type", e.EntityType,
			"entity_id", e.EntityID,
		)
	}
}
