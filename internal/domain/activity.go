package domain

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityIdeaSubmitted         ActivityType = "idea_submitted"
	ActivityIdeaScored            ActivityType = "idea_scored"
	ActivityIdeaSelected          ActivityType = "idea_selected"
	ActivityHypothesisCreated     ActivityType = "hypothesis_created"
	ActivityICEScored             ActivityType = "ice_scored"
	ActivityDeskResearchCompleted ActivityType = "desk_research_completed"
	ActivityExperimentCreated     ActivityType = "experiment_created"
	ActivityExperimentStarted     ActivityType = "experiment_started"
	ActivityExperimentCompleted   ActivityType = "experiment_completed"
	ActivityMVPCreated            ActivityType = "mvp_created"
	ActivityUserCreated           ActivityType = "user_created"
	ActivitySoftDeleted           ActivityType = "soft_deleted"
	ActivityRestored              ActivityType = "restored"
	ActivityHardDeleted           ActivityType = "hard_deleted"
)

type ActivitySeverity string

const (
	ActivitySeverityInfo    ActivitySeverity = "info"
	ActivitySeverityWarning ActivitySeverity = "warning"
)

// Activity is an immutable audit record. It carries no UpdatedAt or
// DeletedAt: rows are only ever appended.
type Activity struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Type        ActivityType     `gorm:"type:text;not null;index" json:"type"`
	Severity    ActivitySeverity `gorm:"type:text;not null;default:'info'" json:"severity"`
	Description string           `gorm:"type:text;not null" json:"description"`

	EntityType string    `gorm:"type:text;not null;index:idx_activity_entity,priority:1" json:"entity_type"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_entity,priority:2" json:"entity_id"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"actor_id"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Activity) TableName() string { return "activity" }
