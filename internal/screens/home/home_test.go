package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

func newTestHome(t *testing.T) (*HomeScreen, *engine.Engine, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "home.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	eng := engine.New(engine.Options{
		Base: schedule.Base{
			ClassName:            "Year 12 Methods",
			TeacherName:          "Ms Chen",
			AllowAheadOfSchedule: true,
			Entries: []schedule.Entry{
				{Date: "2099-01-01", ProblemTypes: []string{"calculus"}},
			},
		},
		BaseBundle: map[string]catalog.QuestionRecord{
			"q1.json": {
				Parts: []catalog.Part{{ProblemType: "calculus", Marks: 5, Text: "differentiate"}},
				Pool:  catalog.PoolOriginal,
			},
		},
		Questions:       st.Questions(),
		ScheduleUpdates: st.ScheduleUpdates(),
		Diagrams:        st.Diagrams(),
		Profile:         st.Profile(),
	})
	if err := eng.Init(context.Background()); err != nil {
		t.Fatalf("init engine: %v", err)
	}

	return New(eng, st), eng, st
}

func TestViewShowsClassDetails(t *testing.T) {
	h, _, _ := newTestHome(t)

	view := h.View(80, 24)
	if !strings.Contains(view, "Year 12 Methods") {
		t.Error("view should show the class name")
	}
	if !strings.Contains(view, "Ms Chen") {
		t.Error("view should show the teacher name")
	}
}

func TestViewHintsFollowUnlockChanges(t *testing.T) {
	h, eng, st := newTestHome(t)
	ctx := context.Background()

	// Everything is gated behind a far-future date at first.
	view := h.View(80, 24)
	if !strings.Contains(view, "0 of 1 questions available") {
		t.Errorf("view should show no questions available, got:\n%s", view)
	}
	if !strings.Contains(view, "0 problem types unlocked") {
		t.Errorf("view should show nothing unlocked, got:\n%s", view)
	}

	// The student flips ahead-of-schedule on the schedule screen; the home
	// screen underneath must not keep its old counts.
	err := st.Profile().Save(ctx, &store.ProfileRecord{AheadOfSchedule: true})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := eng.Recompute(ctx); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	view = h.View(80, 24)
	if !strings.Contains(view, "1 of 1 questions available") {
		t.Errorf("view should show the refreshed availability, got:\n%s", view)
	}
	if !strings.Contains(view, "1 problem types unlocked") {
		t.Errorf("view should show the refreshed unlock count, got:\n%s", view)
	}
}
