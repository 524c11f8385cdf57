package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MVP is produced from a completed experiment.
type MVP struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExperimentID uuid.UUID `gorm:"type:uuid;not null;index" json:"experiment_id"`

	Type        string    `gorm:"type:text;not null;default:''" json:"type"`
	Status      MVPStatus `gorm:"type:text;not null;index" json:"status"`
	FeatureSpec string    `gorm:"type:text;not null;default:''" json:"feature_spec"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (MVP) TableName() string { return "mvp" }

// Lesson is an optional free-text takeaway recorded when an experiment
// closes.
type Lesson struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExperimentID uuid.UUID `gorm:"type:uuid;not null;index" json:"experiment_id"`
	HypothesisID uuid.UUID `gorm:"type:uuid;not null;index" json:"hypothesis_id"`

	Text     string `gorm:"type:text;not null" json:"text"`
	Category string `gorm:"type:text;not null;default:''" json:"category"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_id"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Lesson) TableName() string { return "lesson" }
