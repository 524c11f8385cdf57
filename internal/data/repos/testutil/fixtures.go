package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/domain"
)

func SeedUser(tb testing.TB, gdb *gorm.DB, email string) *domain.User {
	tb.Helper()
	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		Role:      domain.UserRoleContributor,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := gdb.Create(user).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return user
}

func SeedIdea(tb testing.TB, gdb *gorm.DB, createdBy uuid.UUID, status domain.IdeaStatus) *domain.Idea {
	tb.Helper()
	idea := &domain.Idea{
		ID:          uuid.New(),
		Title:       "seeded idea",
		Status:      status,
		CreatedByID: createdBy,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := gdb.Create(idea).Error; err != nil {
		tb.Fatalf("seed idea: %v", err)
	}
	return idea
}

func SeedHypothesis(tb testing.TB, gdb *gorm.DB, ideaID, createdBy uuid.UUID, status domain.HypothesisStatus) *domain.Hypothesis {
	tb.Helper()
	hyp := &domain.Hypothesis{
		ID:          uuid.New(),
		IdeaID:      ideaID,
		Title:       "seeded hypothesis",
		Level:       domain.HypothesisLevel1,
		Status:      status,
		CreatedByID: createdBy,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := gdb.Create(hyp).Error; err != nil {
		tb.Fatalf("seed hypothesis: %v", err)
	}
	return hyp
}

// NewICEScore builds a score row without inserting it; repos insert via
// Upsert.
func NewICEScore(hypothesisID, userID uuid.UUID, impact, confidence, ease float64) *domain.ICEScore {
	return &domain.ICEScore{
		ID:           uuid.New(),
		HypothesisID: hypothesisID,
		UserID:       userID,
		Impact:       impact,
		Confidence:   confidence,
		Ease:         ease,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func SeedExperiment(tb testing.TB, gdb *gorm.DB, hypothesisID, createdBy uuid.UUID, status domain.ExperimentStatus) *domain.Experiment {
	tb.Helper()
	exp := &domain.Experiment{
		ID:           uuid.New(),
		HypothesisID: hypothesisID,
		Title:        "seeded experiment",
		Status:       status,
		CreatedByID:  createdBy,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := gdb.Create(exp).Error; err != nil {
		tb.Fatalf("seed experiment: %v", err)
	}
	return exp
}
