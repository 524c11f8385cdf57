package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Idea is the funnel entry point. Reach/Impact/Confidence/Effort are the
// RICE inputs; RICEScore is derived and only ever written together with
// them in the same transaction.
type Idea struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
	Category    string `gorm:"type:text;not null;default:'';index" json:"category"`
	Priority    string `gorm:"type:text;not null;default:''" json:"priority"`

	Status IdeaStatus `gorm:"type:text;not null;index" json:"status"`

	Reach      float64 `gorm:"not null;default:0" json:"reach"`
	Impact     float64 `gorm:"not null;default:0" json:"impact"`
	Confidence float64 `gorm:"not null;default:0" json:"confidence"`
	Effort     float64 `gorm:"not null;default:0" json:"effort"`
	RICEScore  float64 `gorm:"column:rice_score;not null;default:0;index" json:"rice_score"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Idea) TableName() string { return "idea" }
