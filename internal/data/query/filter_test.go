package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/data/repos/testutil"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
)

func seedIdea(t *testing.T, gdb *gorm.DB, status domain.IdeaStatus, deleted bool) {
	t.Helper()
	idea := &domain.Idea{
		ID:          uuid.New(),
		Title:       "idea",
		Status:      status,
		CreatedByID: uuid.New(),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if deleted {
		idea.DeletedAt = gorm.DeletedAt{Time: time.Now().UTC(), Valid: true}
	}
	if err := gdb.Create(idea).Error; err != nil {
		t.Fatalf("seed idea: %v", err)
	}
}

func TestFilterDeletedModes(t *testing.T) {
	gdb := testutil.OpenDB(t)
	seedIdea(t, gdb, domain.IdeaStatusNew, false)
	seedIdea(t, gdb, domain.IdeaStatusScored, false)
	seedIdea(t, gdb, domain.IdeaStatusNew, true)

	count := func(f *Filter) int64 {
		t.Helper()
		var n int64
		if err := f.Apply(gdb.Model(&domain.Idea{})).Count(&n).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		return n
	}

	if got := count(NewFilter()); got != 2 {
		t.Fatalf("expected 2 live rows, got %d", got)
	}
	if got := count(NewFilter().WithDeleted()); got != 3 {
		t.Fatalf("expected 3 rows including deleted, got %d", got)
	}
	if got := count(NewFilter().OnlyDeleted()); got != 1 {
		t.Fatalf("expected 1 deleted row, got %d", got)
	}
	if got := count(NewFilter().Where("status = ?", domain.IdeaStatusScored)); got != 1 {
		t.Fatalf("expected 1 scored row, got %d", got)
	}
	if got := count(NewFilter().WithDeleted().Where("status = ?", domain.IdeaStatusNew)); got != 2 {
		t.Fatalf("expected 2 NEW rows including deleted, got %d", got)
	}
}

func TestFilterCopyOnWrite(t *testing.T) {
	base := NewFilter().Where("status = ?", domain.IdeaStatusNew)
	derived := base.WithDeleted().Where("category = ?", "growth")

	if base.mode != excludeDeleted {
		t.Fatalf("base mode mutated to %d", base.mode)
	}
	if len(base.conds) != 1 {
		t.Fatalf("base conds mutated, got %d", len(base.conds))
	}
	if derived.mode != includeDeleted || len(derived.conds) != 2 {
		t.Fatalf("derived filter wrong: mode=%d conds=%d", derived.mode, len(derived.conds))
	}
}
