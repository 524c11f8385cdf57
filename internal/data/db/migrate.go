package db

import (
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity
		&domain.User{},

		// Funnel chain
		&domain.Idea{},
		&domain.Hypothesis{},
		&domain.ICEScore{},
		&domain.Experiment{},
		&domain.ExperimentResult{},
		&domain.SuccessCriteria{},
		&domain.MVP{},
		&domain.Lesson{},

		// Audit trail
		&domain.Activity{},
	)
}
