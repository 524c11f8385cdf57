package funnel

import (
	"context"
	"testing"

	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/testutil"
	"github.com/ideaforge/ideaforge-backend/internal/domain"
	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
)

func TestIdeaRepoLifecycle(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)
	repo := NewIdeaRepo(gdb, log, rec)
	dbc := dbctx.Context{Ctx: context.Background()}

	user := testutil.SeedUser(t, gdb, "ideas@example.com")

	low := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusScored)
	low.RICEScore = 10
	if err := repo.Update(dbc, low); err != nil {
		t.Fatalf("update: %v", err)
	}
	high := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusScored)
	high.RICEScore = 500
	if err := repo.Update(dbc, high); err != nil {
		t.Fatalf("update: %v", err)
	}
	testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusNew)

	top, err := repo.TopByRICE(dbc, 2)
	if err != nil {
		t.Fatalf("top by rice: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 ideas, got %d", len(top))
	}
	if top[0].ID != high.ID {
		t.Fatalf("expected highest score first, got %s", top[0].ID)
	}

	counts, err := repo.CountByStatus(dbc)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	if counts[domain.IdeaStatusScored] != 2 || counts[domain.IdeaStatusNew] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	scored, err := repo.ListByStatus(dbc, domain.IdeaStatusScored)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored ideas, got %d", len(scored))
	}
}

func TestIdeaRepoSoftDeleteWritesActivity(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)
	repo := NewIdeaRepo(gdb, log, rec)
	dbc := dbctx.Context{Ctx: context.Background()}

	user := testutil.SeedUser(t, gdb, "audit@example.com")
	idea := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusNew)

	deleted, err := repo.SoftDelete(dbc, idea.ID, user.ID)
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !deleted.DeletedAt.Valid {
		t.Fatalf("expected deletion timestamp set")
	}
	if _, err := repo.GetByID(dbc, idea.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	restored, err := repo.Restore(dbc, idea.ID, user.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.DeletedAt.Valid {
		t.Fatalf("expected restored row live")
	}

	var acts []*domain.Activity
	if err := gdb.Where("entity_id = ?", idea.ID).Order("created_at").Find(&acts).Error; err != nil {
		t.Fatalf("read activities: %v", err)
	}
	if len(acts) != 2 {
		t.Fatalf("expected 2 activity rows, got %d", len(acts))
	}
	if acts[0].Type != domain.ActivitySoftDeleted || acts[1].Type != domain.ActivityRestored {
		t.Fatalf("unexpected activity types: %s, %s", acts[0].Type, acts[1].Type)
	}
	if acts[0].ActorID != user.ID {
		t.Fatalf("expected actor %s, got %s", user.ID, acts[0].ActorID)
	}
}

func TestICEScoreRepoUpsert(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	repo := NewICEScoreRepo(gdb, log)
	dbc := dbctx.Context{Ctx: context.Background()}

	user := testutil.SeedUser(t, gdb, "scorer@example.com")
	idea := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusInHypothesis)
	hyp := testutil.SeedHypothesis(t, gdb, idea.ID, user.ID, domain.HypothesisStatusDraft)

	first := testutil.NewICEScore(hyp.ID, user.ID, 4, 80, 3)
	if _, err := repo.Upsert(dbc, []*domain.ICEScore{first}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Same user re-scores; the previous row is replaced, not duplicated.
	second := testutil.NewICEScore(hyp.ID, user.ID, 5, 90, 2)
	if _, err := repo.Upsert(dbc, []*domain.ICEScore{second}); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	scores, err := repo.GetByHypothesisID(dbc, hyp.ID)
	if err != nil {
		t.Fatalf("get scores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 score row, got %d", len(scores))
	}
	if scores[0].Impact != 5 || scores[0].Confidence != 90 || scores[0].Ease != 2 {
		t.Fatalf("expected updated values, got %+v", scores[0])
	}
}

func TestActivityRepoRecent(t *testing.T) {
	gdb := testutil.OpenDB(t)
	log := testutil.Logger(t)
	rec := audit.NewRecorder(gdb, log)
	repo := NewActivityRepo(gdb, log)
	dbc := dbctx.Context{Ctx: context.Background()}

	user := testutil.SeedUser(t, gdb, "activity@example.com")
	idea := testutil.SeedIdea(t, gdb, user.ID, domain.IdeaStatusNew)

	for _, typ := range []domain.ActivityType{
		domain.ActivityIdeaSubmitted,
		domain.ActivityIdeaScored,
		domain.ActivityIdeaSelected,
	} {
		if err := rec.Record(context.Background(), audit.Entry{
			Type:        typ,
			Description: string(typ),
			EntityType:  "idea",
			EntityID:    idea.ID,
			ActorID:     user.ID,
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	recent, err := repo.Recent(dbc, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(recent))
	}

	byEntity, err := repo.GetByEntity(dbc, "idea", idea.ID)
	if err != nil {
		t.Fatalf("by entity: %v", err)
	}
	if len(byEntity) != 3 {
		t.Fatalf("expected 3 activities for entity, got %d", len(byEntity))
	}
}
