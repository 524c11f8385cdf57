package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ICEScore is one scorer's assessment of a hypothesis. A user scores a
// hypothesis at most once; re-scoring replaces the previous row.
type ICEScore struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HypothesisID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_ice_score_hyp_user,unique,priority:1" json:"hypothesis_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_ice_score_hyp_user,unique,priority:2" json:"user_id"`

	Impact     float64 `gorm:"not null" json:"impact"`
	Confidence float64 `gorm:"not null" json:"confidence"`
	Ease       float64 `gorm:"not null" json:"ease"`
	Comment    string  `gorm:"type:text;not null;default:''" json:"comment"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ICEScore) TableName() string { return "ice_score" }
