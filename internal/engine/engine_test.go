package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

// In-memory repositories backing engine tests. Same interfaces as the SQLite
// store, no database.

type memQuestions struct {
	recs map[string]store.QuestionRecord
}

func newMemQuestions() *memQuestions {
	return &memQuestions{recs: make(map[string]store.QuestionRecord)}
}

func (m *memQuestions) Put(_ context.Context, rec *store.QuestionRecord) error {
	m.recs[rec.Filename] = *rec
	return nil
}

func (m *memQuestions) Get(_ context.Context, filename string) (*store.QuestionRecord, error) {
	rec, ok := m.recs[filename]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memQuestions) All(_ context.Context) ([]store.QuestionRecord, error) {
	out := make([]store.QuestionRecord, 0, len(m.recs))
	for _, rec := range m.recs {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memQuestions) Clear(_ context.Context) error {
	m.recs = make(map[string]store.QuestionRecord)
	return nil
}

type memUpdates struct {
	recs []store.ScheduleUpdateRecord
}

func (m *memUpdates) Put(_ context.Context, rec *store.ScheduleUpdateRecord) error {
	for i := range m.recs {
		if m.recs[i].UpdateID == rec.UpdateID {
			m.recs[i] = *rec
			return nil
		}
	}
	m.recs = append(m.recs, *rec)
	return nil
}

func (m *memUpdates) Get(_ context.Context, updateID string) (*store.ScheduleUpdateRecord, error) {
	for i := range m.recs {
		if m.recs[i].UpdateID == updateID {
			rec := m.recs[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *memUpdates) All(_ context.Context) ([]store.ScheduleUpdateRecord, error) {
	out := make([]store.ScheduleUpdateRecord, len(m.recs))
	copy(out, m.recs)
	return out, nil
}

func (m *memUpdates) Clear(_ context.Context) error {
	m.recs = nil
	return nil
}

type memDiagrams struct {
	recs map[string]store.DiagramRecord
}

func newMemDiagrams() *memDiagrams {
	return &memDiagrams{recs: make(map[string]store.DiagramRecord)}
}

func (m *memDiagrams) Put(_ context.Context, rec *store.DiagramRecord) error {
	m.recs[rec.Filename] = *rec
	return nil
}

func (m *memDiagrams) Get(_ context.Context, filename string) (*store.DiagramRecord, error) {
	rec, ok := m.recs[filename]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memDiagrams) All(_ context.Context) ([]store.DiagramRecord, error) {
	out := make([]store.DiagramRecord, 0, len(m.recs))
	for _, rec := range m.recs {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memDiagrams) Clear(_ context.Context) error {
	m.recs = make(map[string]store.DiagramRecord)
	return nil
}

type memProfile struct {
	rec *store.ProfileRecord
}

func (m *memProfile) Get(_ context.Context) (*store.ProfileRecord, error) {
	if m.rec == nil {
		return nil, nil
	}
	cp := *m.rec
	return &cp, nil
}

func (m *memProfile) Save(_ context.Context, rec *store.ProfileRecord) error {
	cp := *rec
	m.rec = &cp
	return nil
}

func (m *memProfile) Clear(_ context.Context) error {
	m.rec = nil
	return nil
}

// testEnv bundles an engine with its backing fakes so tests can inspect what
// got persisted.
type testEnv struct {
	eng       *Engine
	questions *memQuestions
	updates   *memUpdates
	diagrams  *memDiagrams
	profile   *memProfile
}

var engineNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T, base schedule.Base, bundle map[string]catalog.QuestionRecord) *testEnv {
	t.Helper()
	env := &testEnv{
		questions: newMemQuestions(),
		updates:   &memUpdates{},
		diagrams:  newMemDiagrams(),
		profile:   &memProfile{},
	}
	env.eng = New(Options{
		Base:            base,
		BaseBundle:      bundle,
		Questions:       env.questions,
		ScheduleUpdates: env.updates,
		Diagrams:        env.diagrams,
		Profile:         env.profile,
		AppVersion:      "1.4.0",
	})
	env.eng.now = func() time.Time { return engineNow }
	require.NoError(t, env.eng.Init(context.Background()))
	return env
}

func question(pts ...string) catalog.QuestionRecord {
	parts := make([]catalog.Part, 0, len(pts))
	for _, pt := range pts {
		parts = append(parts, catalog.Part{ProblemType: pt, Marks: 2, Text: "solve"})
	}
	return catalog.QuestionRecord{Parts: parts, Pool: catalog.PoolOriginal}
}

func TestIsAvailableAllPartsUnlocked(t *testing.T) {
	env := newTestEnv(t, schedule.Base{EnabledProblemTypes: []string{"indices", "calculus"}}, nil)

	assert.True(t, env.eng.IsAvailable(question("indices")))
	assert.True(t, env.eng.IsAvailable(question("indices", "calculus")))
}

func TestIsAvailableFailsClosed(t *testing.T) {
	env := newTestEnv(t, schedule.Base{EnabledProblemTypes: []string{"indices"}}, nil)

	// One locked part blocks the whole question.
	assert.False(t, env.eng.IsAvailable(question("indices", "calculus")))
	// No parts at all: never available.
	assert.False(t, env.eng.IsAvailable(catalog.QuestionRecord{}))
}

func TestIsAvailableUntypedPartsNeverBlock(t *testing.T) {
	env := newTestEnv(t, schedule.Base{EnabledProblemTypes: []string{"indices"}}, nil)

	q := catalog.QuestionRecord{Parts: []catalog.Part{
		{Text: "context paragraph"},
		{ProblemType: "indices", Marks: 3},
	}}
	assert.True(t, env.eng.IsAvailable(q))

	// But a question made only of untyped parts is still available.
	untypedOnly := catalog.QuestionRecord{Parts: []catalog.Part{{Text: "free response"}}}
	assert.True(t, env.eng.IsAvailable(untypedOnly))
}

func TestInitMergesPersistedImports(t *testing.T) {
	questions := newMemQuestions()
	_ = questions.Put(context.Background(), &store.QuestionRecord{
		Filename:     "q1.json",
		Data:         catalog.QuestionRecord{Parts: []catalog.Part{{ProblemType: "calculus"}}, Pool: catalog.PoolImported},
		ImportedFrom: "u-2026-01",
	})

	eng := New(Options{
		Base: schedule.Base{EnabledProblemTypes: []string{"calculus"}},
		BaseBundle: map[string]catalog.QuestionRecord{
			"q1.json": question("indices"),
			"q2.json": question("indices"),
		},
		Questions:       questions,
		ScheduleUpdates: &memUpdates{},
		Diagrams:        newMemDiagrams(),
		Profile:         &memProfile{},
	})
	require.NoError(t, eng.Init(context.Background()))

	// The persisted import replaces the base record sharing its key.
	got, ok := eng.Question("q1.json")
	require.True(t, ok)
	assert.Equal(t, catalog.PoolImported, got.Pool)
	assert.True(t, got.HasProblemType("calculus"))
	assert.Equal(t, 2, eng.PoolCounts().Total)
}

func TestRecomputeHonorsAheadToggle(t *testing.T) {
	base := schedule.Base{
		AllowAheadOfSchedule: true,
		Entries: []schedule.Entry{
			{Date: "2027-01-01", ProblemTypes: []string{"calculus"}},
		},
	}
	env := newTestEnv(t, base, nil)

	assert.Empty(t, env.eng.Unlocked())

	env.profile.rec = &store.ProfileRecord{AheadOfSchedule: true}
	require.NoError(t, env.eng.Recompute(context.Background()))
	assert.Equal(t, []string{"calculus"}, env.eng.Unlocked())
}

func TestAheadToggleIgnoredWhenScheduleForbidsIt(t *testing.T) {
	base := schedule.Base{
		AllowAheadOfSchedule: false,
		Entries: []schedule.Entry{
			{Date: "2027-01-01", ProblemTypes: []string{"calculus"}},
		},
	}
	env := newTestEnv(t, base, nil)

	env.profile.rec = &store.ProfileRecord{AheadOfSchedule: true}
	require.NoError(t, env.eng.Recompute(context.Background()))
	assert.Empty(t, env.eng.Unlocked())
}

func TestAvailableQuestions(t *testing.T) {
	bundle := map[string]catalog.QuestionRecord{
		"q1.json": question("indices"),
		"q2.json": question("calculus"),
		"q3.json": question("indices", "calculus"),
	}
	env := newTestEnv(t, schedule.Base{EnabledProblemTypes: []string{"indices"}}, bundle)

	avail := env.eng.AvailableQuestions()
	assert.Len(t, avail, 1)
	_, ok := avail["q1.json"]
	assert.True(t, ok)
}
