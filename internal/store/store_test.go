package store

import (
	"context"
	"testing"
	"time"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionRepoPutGetReplace(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	// Absent key.
	rec, err := repo.Get(ctx, "q1.json")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil for absent question")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Put(ctx, &QuestionRecord{
		Filename: "q1.json",
		Data: catalog.QuestionRecord{
			Parts: []catalog.Part{{ProblemType: "indices", Marks: 3, Text: "simplify"}},
			Pool:  catalog.PoolImported,
		},
		ImportedFrom: "u-2026-01",
		ImportedAt:   now,
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err = repo.Get(ctx, "q1.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected question record")
	}
	if rec.ImportedFrom != "u-2026-01" {
		t.Errorf("importedFrom = %q, want u-2026-01", rec.ImportedFrom)
	}
	if len(rec.Data.Parts) != 1 || rec.Data.Parts[0].ProblemType != "indices" {
		t.Errorf("data round-trip = %+v", rec.Data)
	}

	// Re-put with the same filename replaces the row.
	err = repo.Put(ctx, &QuestionRecord{
		Filename: "q1.json",
		Data: catalog.QuestionRecord{
			Parts: []catalog.Part{{ProblemType: "calculus", Marks: 5, Text: "differentiate"}},
			Pool:  catalog.PoolImported,
		},
		ImportedFrom: "u-2026-02",
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("count after replace = %d, want 1", len(all))
	}
	if all[0].Data.Parts[0].ProblemType != "calculus" {
		t.Errorf("replaced data = %+v", all[0].Data)
	}
}

func TestScheduleUpdateRepoArrivalOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleUpdates()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	ids := []string{"u-c", "u-a", "u-b"}
	for i, id := range ids {
		err := repo.Put(ctx, &ScheduleUpdateRecord{
			UpdateID:   id,
			Enabled:    []string{"indices"},
			ImportedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("count = %d, want 3", len(all))
	}
	// Arrival order, not lexical order.
	for i, id := range ids {
		if all[i].UpdateID != id {
			t.Errorf("all[%d] = %s, want %s", i, all[i].UpdateID, id)
		}
	}
}

func TestScheduleUpdateRepoDatedRecord(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleUpdates()
	ctx := context.Background()

	err := repo.Put(ctx, &ScheduleUpdateRecord{
		UpdateID:     "u-dated",
		Date:         "2026-04-01",
		Label:        "Term 2",
		ProblemTypes: []string{"matrices"},
		ImportedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := repo.Get(ctx, "u-dated")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}

	u := rec.ToUpdate()
	if u.Flat() {
		t.Error("dated record converted to a flat update")
	}
	if u.Dated == nil || u.Dated.Date != "2026-04-01" {
		t.Errorf("dated entry = %+v", u.Dated)
	}
}

func TestDiagramRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Diagrams()
	ctx := context.Background()

	err := repo.Put(ctx, &DiagramRecord{
		Filename:     "curve.png",
		DataURL:      "data:image/png;base64,AAAA",
		ImportedFrom: "u-2026-01",
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := repo.Get(ctx, "curve.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.DataURL != "data:image/png;base64,AAAA" {
		t.Errorf("record = %+v", rec)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("count after clear = %d, want 0", len(all))
	}
}

func TestProfileRepoSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profile()
	ctx := context.Background()

	prof, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if prof != nil {
		t.Fatal("expected nil profile before first save")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &ProfileRecord{
		StudentName:     "Priya",
		AheadOfSchedule: true,
		UpdatesImported: []ImportHistoryEntry{
			{UpdateID: "u-2026-01", Date: "2026-02-01", QuestionsAdded: 4, ImportedAt: now},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	prof, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if prof == nil {
		t.Fatal("expected profile")
	}
	if prof.StudentName != "Priya" || !prof.AheadOfSchedule {
		t.Errorf("profile = %+v", prof)
	}
	if len(prof.UpdatesImported) != 1 || prof.UpdatesImported[0].UpdateID != "u-2026-01" {
		t.Errorf("history = %+v", prof.UpdatesImported)
	}

	// Saving again updates the single row.
	prof.AheadOfSchedule = false
	prof.UpdatesImported = append(prof.UpdatesImported, ImportHistoryEntry{UpdateID: "u-2026-02"})
	if err := repo.Save(ctx, prof); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	prof, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get after re-save: %v", err)
	}
	if prof.AheadOfSchedule {
		t.Error("aheadOfSchedule not updated")
	}
	if len(prof.UpdatesImported) != 2 {
		t.Errorf("history length = %d, want 2", len(prof.UpdatesImported))
	}
}

func TestSessionRepoAppendOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, &SessionRecord{
			SessionID:       string(rune('a' + i)),
			StartedAt:       base.Add(time.Duration(i) * time.Hour),
			EndedAt:         base.Add(time.Duration(i)*time.Hour + 20*time.Minute),
			DurationMinutes: 20,
			QuestionsViewed: i + 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("count = %d, want 3", len(all))
	}
	for i, rec := range all {
		if rec.QuestionsViewed != i+1 {
			t.Errorf("all[%d].questionsViewed = %d, want %d", i, rec.QuestionsViewed, i+1)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"imported_questions",
		"schedule_updates",
		"diagrams",
		"profiles",
		"session_summaries",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
