package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Experiment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HypothesisID uuid.UUID `gorm:"type:uuid;not null;index" json:"hypothesis_id"`

	Title string `gorm:"type:text;not null" json:"title"`
	Type  string `gorm:"type:text;not null;default:''" json:"type"`

	Status ExperimentStatus `gorm:"type:text;not null;index" json:"status"`

	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	ActualStart *time.Time `json:"actual_start,omitempty"`
	ActualEnd   *time.Time `json:"actual_end,omitempty"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Experiment) TableName() string { return "experiment" }

// ExperimentResult is one measured metric of a completed experiment.
type ExperimentResult struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExperimentID uuid.UUID `gorm:"type:uuid;not null;index" json:"experiment_id"`

	MetricName string  `gorm:"type:text;not null" json:"metric_name"`
	Value      float64 `gorm:"not null" json:"value"`
	Unit       string  `gorm:"type:text;not null;default:''" json:"unit"`
	Notes      string  `gorm:"type:text;not null;default:''" json:"notes"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ExperimentResult) TableName() string { return "experiment_result" }

// SuccessCriteria belongs to either a hypothesis or an experiment; exactly
// one of the two owner ids is set.
type SuccessCriteria struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	HypothesisID *uuid.UUID `gorm:"type:uuid;index" json:"hypothesis_id,omitempty"`
	ExperimentID *uuid.UUID `gorm:"type:uuid;index" json:"experiment_id,omitempty"`

	Name        string   `gorm:"type:text;not null;default:''" json:"name"`
	TargetValue float64  `gorm:"not null" json:"target_value"`
	Unit        string   `gorm:"type:text;not null;default:''" json:"unit"`
	ActualValue *float64 `json:"actual_value,omitempty"`
	Achieved    *bool    `json:"achieved,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SuccessCriteria) TableName() string { return "success_criteria" }
