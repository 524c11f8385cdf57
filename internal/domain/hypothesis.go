package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hypothesis is promoted from an Idea. FinalPriority is derived from the
// ICE scores of its scorers and only ever written together with them.
type Hypothesis struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IdeaID uuid.UUID `gorm:"type:uuid;not null;index" json:"idea_id"`

	Title     string `gorm:"type:text;not null" json:"title"`
	Statement string `gorm:"type:text;not null;default:''" json:"statement"`

	Level  HypothesisLevel  `gorm:"type:text;not null" json:"level"`
	Status HypothesisStatus `gorm:"type:text;not null;index" json:"status"`

	FinalPriority int `gorm:"not null;default:0;index" json:"final_priority"`

	// Desk research fields.
	ResearchNotes string         `gorm:"type:text;not null;default:''" json:"research_notes"`
	Sources       datatypes.JSON `gorm:"type:jsonb" json:"sources,omitempty"`
	Risks         datatypes.JSON `gorm:"type:jsonb" json:"risks,omitempty"`
	Opportunities datatypes.JSON `gorm:"type:jsonb" json:"opportunities,omitempty"`

	Conclusion *Conclusion `gorm:"type:text" json:"conclusion,omitempty"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Hypothesis) TableName() string { return "hypothesis" }
