// Package engine is the content unlocking and data synchronization core. It
// owns the merged question catalogue and the published unlocked-set, and
// funnels all mutation through Init, ImportUpdate, and Recompute.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

// Options configures a new Engine.
type Options struct {
	// Base is the parsed taught schedule.
	Base schedule.Base

	// BaseBundle seeds the catalogue before persisted imports are merged.
	BaseBundle map[string]catalog.QuestionRecord

	Questions       store.QuestionRepo
	ScheduleUpdates store.ScheduleUpdateRepo
	Diagrams        store.DiagramRepo
	Profile         store.ProfileRepo

	// AppVersion gates packages carrying minAppVersion. Empty or "(devel)"
	// disables the gate.
	AppVersion string
}

// Engine holds the catalogue and the current unlocked problem-type set.
// The unlocked set is replaced atomically; readers see either the
// pre-import or the fully post-import value, never an intermediate one.
type Engine struct {
	mu       sync.RWMutex
	unlocked map[string]struct{}

	cat  *catalog.Catalogue
	base schedule.Base

	questions store.QuestionRepo
	updates   store.ScheduleUpdateRepo
	diagrams  store.DiagramRepo
	profile   store.ProfileRepo

	appVersion string
	now        func() time.Time
}

// New creates an Engine. Call Init before using it.
func New(opts Options) *Engine {
	e := &Engine{
		unlocked:   make(map[string]struct{}),
		cat:        catalog.New(),
		base:       opts.Base,
		questions:  opts.Questions,
		updates:    opts.ScheduleUpdates,
		diagrams:   opts.Diagrams,
		profile:    opts.Profile,
		appVersion: opts.AppVersion,
		now:        time.Now,
	}
	if opts.BaseBundle != nil {
		e.cat.Load(opts.BaseBundle)
	}
	return e
}

// Init merges previously imported questions over the base bundle and derives
// the unlocked set from the persisted schedule-update log.
func (e *Engine) Init(ctx context.Context) error {
	imported, err := e.questions.All(ctx)
	if err != nil {
		return fmt.Errorf("load imported questions: %w", err)
	}
	if len(imported) > 0 {
		merge := make(map[string]catalog.QuestionRecord, len(imported))
		for _, rec := range imported {
			merge[rec.Filename] = rec.Data
		}
		e.cat.Merge(merge)
	}
	return e.Recompute(ctx)
}

// Recompute re-derives and republishes the unlocked set from the base
// schedule, the full persisted update log, and the profile's
// ahead-of-schedule toggle.
func (e *Engine) Recompute(ctx context.Context) error {
	_, err := e.recompute(ctx)
	return err
}

// recompute returns the freshly published set so the importer can diff it.
func (e *Engine) recompute(ctx context.Context) (map[string]struct{}, error) {
	records, err := e.updates.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedule updates: %w", err)
	}
	updates := make([]schedule.Update, 0, len(records))
	for _, rec := range records {
		updates = append(updates, rec.ToUpdate())
	}

	ahead, err := e.aheadOfSchedule(ctx)
	if err != nil {
		return nil, err
	}

	unlocked := schedule.ComputeUnlocked(e.base, updates, ahead, e.now())

	e.mu.Lock()
	e.unlocked = unlocked
	e.mu.Unlock()
	return unlocked, nil
}

// aheadOfSchedule reads the student's toggle; it only takes effect when the
// base schedule allows it.
func (e *Engine) aheadOfSchedule(ctx context.Context) (bool, error) {
	if !e.base.AllowAheadOfSchedule {
		return false, nil
	}
	prof, err := e.profile.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load profile: %w", err)
	}
	return prof != nil && prof.AheadOfSchedule, nil
}

// Unlocked returns the current unlocked problem types, sorted.
func (e *Engine) Unlocked() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return schedule.Sorted(e.unlocked)
}

// IsUnlocked reports whether a single problem type is unlocked.
func (e *Engine) IsUnlocked(pt string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.unlocked[pt]
	return ok
}

// IsAvailable reports whether a question may be shown. Fails closed: a
// question with no parts is never available, and any part whose non-empty
// problem type is locked blocks the whole question. Parts without a problem
// type never block.
func (e *Engine) IsAvailable(q catalog.QuestionRecord) bool {
	if len(q.Parts) == 0 {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range q.Parts {
		if p.ProblemType == "" {
			continue
		}
		if _, ok := e.unlocked[p.ProblemType]; !ok {
			return false
		}
	}
	return true
}

// AvailableQuestions filters the catalogue down to questions whose every
// typed part is unlocked.
func (e *Engine) AvailableQuestions() map[string]catalog.QuestionRecord {
	all := e.cat.All()
	out := make(map[string]catalog.QuestionRecord)
	for key, q := range all {
		if e.IsAvailable(q) {
			out[key] = q
		}
	}
	return out
}

// QuestionsForProblemType returns every question containing the problem
// type, regardless of unlock state. Availability filtering for
// student-facing views is the caller's responsibility.
func (e *Engine) QuestionsForProblemType(pt string) map[string]catalog.QuestionRecord {
	return e.cat.ByProblemType(pt)
}

// Question returns a single catalogue record by key.
func (e *Engine) Question(key string) (catalog.QuestionRecord, bool) {
	return e.cat.Get(key)
}

// AllQuestions returns the full merged catalogue.
func (e *Engine) AllQuestions() map[string]catalog.QuestionRecord {
	return e.cat.All()
}

// AllProblemTypes returns every problem type referenced by the catalogue.
func (e *Engine) AllProblemTypes() []string {
	return e.cat.ProblemTypes()
}

// PoolCounts tallies catalogue questions per pool.
func (e *Engine) PoolCounts() catalog.PoolCounts {
	return e.cat.Counts()
}

// ScheduleSummary describes the base schedule for display.
func (e *Engine) ScheduleSummary() schedule.Summary {
	return schedule.Summarize(e.base, e.now())
}
