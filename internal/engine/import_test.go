package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

const flatUpdatePkg = `{
	"updateId": "u-2026-03",
	"updateDate": "2026-03-09",
	"description": "Term 1 week 7",
	"questions": {
		"imported_q1.json": {"parts": [{"problemType": "calculus", "marks": 5, "text": "differentiate"}], "_pool": "original"},
		"imported_q2.json": {"parts": [{"problemType": "calculus", "marks": 3, "text": "integrate"}]}
	},
	"scheduleUpdate": {"enabledProblemTypes": ["calculus"]},
	"newDiagrams": {"curve.png": "data:image/png;base64,AAAA"}
}`

func TestImportUpdateAppliesEverything(t *testing.T) {
	env := newTestEnv(t, schedule.Base{EnabledProblemTypes: []string{"indices"}}, map[string]catalog.QuestionRecord{
		"base_q1.json": question("indices"),
	})
	ctx := context.Background()

	summary, err := env.eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.NoError(t, err)

	assert.Equal(t, "u-2026-03", summary.UpdateID)
	assert.Equal(t, 2, summary.ImportedCount)
	assert.Equal(t, 1, summary.DiagramsAdded)
	assert.Equal(t, 1, summary.NewlyUnlocked)

	// Questions are merged and re-tagged as imported regardless of the
	// pool marker inside the file.
	got, ok := env.eng.Question("imported_q1.json")
	require.True(t, ok)
	assert.Equal(t, catalog.PoolImported, got.Pool)

	// The schedule grant is in the persisted log and the set is republished.
	assert.Len(t, env.updates.recs, 1)
	assert.True(t, env.eng.IsUnlocked("calculus"))

	// History records the package.
	require.NotNil(t, env.profile.rec)
	require.Len(t, env.profile.rec.UpdatesImported, 1)
	entry := env.profile.rec.UpdatesImported[0]
	assert.Equal(t, "u-2026-03", entry.UpdateID)
	assert.Equal(t, "2026-03-09", entry.Date)
	assert.Equal(t, 2, entry.QuestionsAdded)
}

func TestImportUpdateDuplicateRejectedWithoutMutation(t *testing.T) {
	env := newTestEnv(t, schedule.Base{}, nil)
	ctx := context.Background()

	_, err := env.eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.NoError(t, err)
	questionsAfterFirst := len(env.questions.recs)

	_, err = env.eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.Error(t, err)
	assert.True(t, IsDuplicateImport(err))

	var dup *DuplicateImportError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "u-2026-03", dup.UpdateID)

	assert.Len(t, env.questions.recs, questionsAfterFirst)
	assert.Len(t, env.profile.rec.UpdatesImported, 1)
	assert.Len(t, env.updates.recs, 1)
}

func TestImportUpdateMalformed(t *testing.T) {
	env := newTestEnv(t, schedule.Base{}, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{nope`},
		{"missing updateId", `{"description": "no id"}`},
		{"empty updateId", `{"updateId": ""}`},
		{"wrong questions shape", `{"updateId": "u1", "questions": {"q.json": {"noparts": true}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.eng.ImportUpdate(ctx, []byte(tt.raw))
			require.Error(t, err)
			assert.True(t, IsMalformedPackage(err))
		})
	}

	// Nothing was persisted by any of the rejected packages.
	assert.Empty(t, env.questions.recs)
	assert.Nil(t, env.profile.rec)
}

func TestImportUpdateDatedGrantStaysGated(t *testing.T) {
	env := newTestEnv(t, schedule.Base{}, nil)
	ctx := context.Background()

	// A dated grant in the future: questions import immediately but stay
	// locked until the date passes.
	pkg := `{
		"updateId": "u-2026-04",
		"questions": {
			"q_matrices.json": {"parts": [{"problemType": "matrices", "marks": 4, "text": "invert"}]}
		},
		"scheduleUpdate": {"date": "2026-04-01", "label": "Term 2", "problemTypes": ["matrices"]}
	}`

	summary, err := env.eng.ImportUpdate(ctx, []byte(pkg))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ImportedCount)
	assert.Equal(t, 0, summary.NewlyUnlocked)

	got, ok := env.eng.Question("q_matrices.json")
	require.True(t, ok)
	assert.False(t, env.eng.IsAvailable(got))

	// Time passes: the same persisted log now yields the unlock.
	env.eng.now = func() time.Time { return engineNow.AddDate(0, 1, 0) }
	require.NoError(t, env.eng.Recompute(ctx))
	assert.True(t, env.eng.IsAvailable(got))
}

func TestImportUpdateVersionGate(t *testing.T) {
	env := newTestEnv(t, schedule.Base{}, nil)
	ctx := context.Background()

	pkg := `{"updateId": "u-future", "minAppVersion": "2.0.0"}`
	_, err := env.eng.ImportUpdate(ctx, []byte(pkg))
	require.Error(t, err)

	var unsupported *UnsupportedPackageError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "2.0.0", unsupported.MinAppVersion)

	// Nothing recorded: retrying after upgrading must succeed.
	assert.Nil(t, env.profile.rec)
}

func TestImportUpdateVersionGateSkippedInDev(t *testing.T) {
	env := newTestEnv(t, schedule.Base{}, nil)
	env.eng.appVersion = "(devel)"
	ctx := context.Background()

	pkg := `{"updateId": "u-future", "minAppVersion": "99.0.0"}`
	_, err := env.eng.ImportUpdate(ctx, []byte(pkg))
	require.NoError(t, err)
}

func TestImportUpdateSatisfiedVersionGate(t *testing.T) {
	env := newTestEnv(t, schedule.Base{}, nil)
	ctx := context.Background()

	// App runs 1.4.0; 1.2.0 and v-prefixed forms both pass.
	for _, min := range []string{"1.2.0", "v1.4.0", "1.4"} {
		pkg := `{"updateId": "u-` + min + `", "minAppVersion": "` + min + `"}`
		_, err := env.eng.ImportUpdate(ctx, []byte(pkg))
		assert.NoError(t, err, "minAppVersion %s", min)
	}
}

var errDiskFull = errors.New("disk full")

// flakyProfile fails the next failSaves calls to Save, then behaves normally.
type flakyProfile struct {
	memProfile
	failSaves int
}

func (f *flakyProfile) Save(ctx context.Context, rec *store.ProfileRecord) error {
	if f.failSaves > 0 {
		f.failSaves--
		return errDiskFull
	}
	return f.memProfile.Save(ctx, rec)
}

// flakyUpdates fails the next failPuts calls to Put, then behaves normally.
type flakyUpdates struct {
	memUpdates
	failPuts int
}

func (f *flakyUpdates) Put(ctx context.Context, rec *store.ScheduleUpdateRecord) error {
	if f.failPuts > 0 {
		f.failPuts--
		return errDiskFull
	}
	return f.memUpdates.Put(ctx, rec)
}

func TestImportUpdateRetryAfterHistoryWriteFailure(t *testing.T) {
	questions := newMemQuestions()
	updates := &memUpdates{}
	profile := &flakyProfile{failSaves: 1}
	eng := New(Options{
		Base:            schedule.Base{},
		Questions:       questions,
		ScheduleUpdates: updates,
		Diagrams:        newMemDiagrams(),
		Profile:         profile,
		AppVersion:      "1.4.0",
	})
	eng.now = func() time.Time { return engineNow }
	ctx := context.Background()
	require.NoError(t, eng.Init(ctx))

	// The history append is the last write; everything before it landed,
	// but nothing is recorded and the unlocked set was not republished.
	_, err := eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.ErrorIs(t, err, errDiskFull)
	assert.False(t, IsDuplicateImport(err))
	assert.Len(t, questions.recs, 2)
	assert.Nil(t, profile.rec)
	assert.False(t, eng.IsUnlocked("calculus"))

	// Retrying the whole import converges: the duplicate check passes
	// because no history was written, and re-putting the same rows is
	// idempotent.
	summary, err := eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ImportedCount)
	assert.Len(t, questions.recs, 2)
	assert.Len(t, updates.recs, 1)
	require.NotNil(t, profile.rec)
	assert.Len(t, profile.rec.UpdatesImported, 1)
	assert.True(t, eng.IsUnlocked("calculus"))
}

func TestImportUpdateRetryAfterScheduleWriteFailure(t *testing.T) {
	questions := newMemQuestions()
	updates := &flakyUpdates{failPuts: 1}
	profile := &memProfile{}
	eng := New(Options{
		Base:            schedule.Base{},
		Questions:       questions,
		ScheduleUpdates: updates,
		Diagrams:        newMemDiagrams(),
		Profile:         profile,
		AppVersion:      "1.4.0",
	})
	eng.now = func() time.Time { return engineNow }
	ctx := context.Background()
	require.NoError(t, eng.Init(ctx))

	// Failure mid-import: questions are already persisted, the schedule
	// grant and history are not.
	_, err := eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.ErrorIs(t, err, errDiskFull)
	assert.Len(t, questions.recs, 2)
	assert.Empty(t, updates.recs)
	assert.Nil(t, profile.rec)

	summary, err := eng.ImportUpdate(ctx, []byte(flatUpdatePkg))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NewlyUnlocked)
	assert.Len(t, updates.recs, 1)
	require.NotNil(t, profile.rec)
	assert.Len(t, profile.rec.UpdatesImported, 1)
}

func TestImportUpdateQuestionOnlyPackage(t *testing.T) {
	env := newTestEnv(t, schedule.Base{EnabledProblemTypes: []string{"indices"}}, nil)
	ctx := context.Background()

	pkg := `{
		"updateId": "u-extra",
		"questions": {
			"extra.json": {"parts": [{"problemType": "indices", "marks": 2, "text": "simplify"}]}
		}
	}`

	summary, err := env.eng.ImportUpdate(ctx, []byte(pkg))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ImportedCount)
	assert.Equal(t, 0, summary.NewlyUnlocked)
	assert.Empty(t, env.updates.recs)

	got, ok := env.eng.Question("extra.json")
	require.True(t, ok)
	assert.True(t, env.eng.IsAvailable(got))
}
