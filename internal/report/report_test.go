package report

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

// File-backed stores: the restore test opens two at once, which shared
// in-memory databases cannot express.
func openTestStore(t *testing.T, name string) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestEngine(t *testing.T, st *store.Store) *engine.Engine {
	t.Helper()
	eng := engine.New(engine.Options{
		Base: schedule.Base{
			ClassName:           "Year 12 Methods",
			TeacherName:         "Ms Chen",
			EnabledProblemTypes: []string{"indices"},
		},
		BaseBundle: map[string]catalog.QuestionRecord{
			"q1.json": {Parts: []catalog.Part{{ProblemType: "indices", Marks: 3}}, Pool: catalog.PoolOriginal},
			"q2.json": {Parts: []catalog.Part{{ProblemType: "calculus", Marks: 5}}, Pool: catalog.PoolOriginal},
		},
		Questions:       st.Questions(),
		ScheduleUpdates: st.ScheduleUpdates(),
		Diagrams:        st.Diagrams(),
		Profile:         st.Profile(),
	})
	require.NoError(t, eng.Init(context.Background()))
	return eng
}

func seedSessions(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)
	for i, rec := range []store.SessionRecord{
		{SessionID: "s1", DurationMinutes: 25, QuestionsViewed: 4, SolutionsRevealed: 2},
		{SessionID: "s2", DurationMinutes: 15, QuestionsViewed: 3, SolutionsRevealed: 1},
	} {
		rec.StartedAt = base.Add(time.Duration(i) * time.Hour)
		rec.EndedAt = rec.StartedAt.Add(time.Duration(rec.DurationMinutes) * time.Minute)
		require.NoError(t, st.Sessions().Append(ctx, &rec))
	}
}

func TestBuildProgress(t *testing.T) {
	st := openTestStore(t, "progress.db")
	eng := newTestEngine(t, st)
	ctx := context.Background()

	seedSessions(t, st)
	require.NoError(t, st.Profile().Save(ctx, &store.ProfileRecord{
		StudentName: "Priya",
		UpdatesImported: []store.ImportHistoryEntry{
			{UpdateID: "u-2026-01", QuestionsAdded: 4},
		},
	}))

	rep, err := BuildProgress(ctx, eng, st, "1.4.0")
	require.NoError(t, err)

	assert.Equal(t, ReportTypeProgress, rep.ReportType)
	assert.NotEmpty(t, rep.ReportID)
	assert.Equal(t, "Priya", rep.StudentName)
	assert.Equal(t, "Year 12 Methods", rep.ClassName)
	assert.Equal(t, 2, rep.Summary.TotalSessions)
	assert.Equal(t, 7, rep.Summary.TotalQuestionsViewed)
	assert.Equal(t, 3, rep.Summary.TotalSolutionsRevealed)
	assert.Equal(t, 40, rep.Summary.TotalStudyMinutes)
	assert.Equal(t, 1, rep.Summary.UnlockedProblemTypes)
	assert.Equal(t, 2, rep.Summary.TotalProblemTypes)
	assert.Len(t, rep.ImportHistory, 1)
}

func TestBuildProgressEmptyStore(t *testing.T) {
	st := openTestStore(t, "empty.db")
	eng := newTestEngine(t, st)

	rep, err := BuildProgress(context.Background(), eng, st, "1.4.0")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", rep.StudentName)
	assert.Zero(t, rep.Summary.TotalSessions)
	assert.Empty(t, rep.Sessions)
}

func TestProgressFilename(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Progress_Priya_Nair_2026-03-10.json", ProgressFilename("Priya Nair", now))
	assert.Equal(t, "Progress_Student_2026-03-10.json", ProgressFilename("", now))
}

func TestBackupRoundTrip(t *testing.T) {
	src := openTestStore(t, "src.db")
	ctx := context.Background()

	require.NoError(t, src.Questions().Put(ctx, &store.QuestionRecord{
		Filename: "q1.json",
		Data: catalog.QuestionRecord{
			Parts: []catalog.Part{{ProblemType: "calculus", Marks: 5, Text: "differentiate"}},
			Pool:  catalog.PoolImported,
		},
		ImportedFrom: "u-2026-01",
		ImportedAt:   time.Now().UTC().Truncate(time.Second),
	}))
	require.NoError(t, src.ScheduleUpdates().Put(ctx, &store.ScheduleUpdateRecord{
		UpdateID:   "u-2026-01",
		Enabled:    []string{"calculus"},
		ImportedAt: time.Now().UTC().Truncate(time.Second),
	}))
	require.NoError(t, src.Diagrams().Put(ctx, &store.DiagramRecord{
		Filename: "curve.png", DataURL: "data:image/png;base64,AAAA", ImportedFrom: "u-2026-01",
	}))
	require.NoError(t, src.Profile().Save(ctx, &store.ProfileRecord{StudentName: "Priya"}))
	seedSessions(t, src)

	b, err := BuildBackup(ctx, src, "1.4.0")
	require.NoError(t, err)
	assert.Equal(t, BackupTypeFull, b.BackupType)

	// Through the wire format and into a fresh store.
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	parsed, err := ParseBackup(raw)
	require.NoError(t, err)

	dst := openTestStore(t, "dst.db")
	require.NoError(t, Restore(ctx, dst, parsed))

	questions, err := dst.Questions().All(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "u-2026-01", questions[0].ImportedFrom)
	assert.True(t, questions[0].Data.HasProblemType("calculus"))

	updates, err := dst.ScheduleUpdates().All(ctx)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, []string{"calculus"}, updates[0].Enabled)

	prof, err := dst.Profile().Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, prof)
	assert.Equal(t, "Priya", prof.StudentName)

	sessions, err := dst.Sessions().All(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestRestoreReplacesExistingData(t *testing.T) {
	st := openTestStore(t, "replace.db")
	ctx := context.Background()

	require.NoError(t, st.Questions().Put(ctx, &store.QuestionRecord{
		Filename: "old.json",
		Data:     catalog.QuestionRecord{Parts: []catalog.Part{{ProblemType: "indices"}}},
	}))

	empty := &Backup{BackupType: BackupTypeFull}
	require.NoError(t, Restore(ctx, st, empty))

	questions, err := st.Questions().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestParseBackupRejectsWrongType(t *testing.T) {
	_, err := ParseBackup([]byte(`{"backupType": "progressReport"}`))
	require.Error(t, err)

	_, err = ParseBackup([]byte(`{nope`))
	require.Error(t, err)
}
