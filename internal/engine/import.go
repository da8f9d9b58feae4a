package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

// ImportSummary reports what an accepted update package changed.
type ImportSummary struct {
	UpdateID      string
	Description   string
	ImportedCount int
	DiagramsAdded int

	// NewlyUnlocked counts problem types the package's schedule grant
	// unlocked that were locked before. Informational only.
	NewlyUnlocked int
}

// ImportUpdate validates and applies a teacher update package exactly once.
//
// Validation (no state mutated on failure): the package must pass the shape
// check, satisfy its minAppVersion if it carries one, and carry an updateId
// not yet in the import history.
//
// Apply: questions are persisted and merged into the catalogue (replacing
// any record sharing a key), the schedule grant is appended to the
// persisted update log, diagrams are stored, an import-history entry is
// appended to the profile, and the unlocked set is re-derived from the full
// persisted log and published once.
//
// There is no rollback on a storage failure partway through: the error is
// surfaced and the caller may retry the whole import. A retry is safe — the
// duplicate check only trips once the history append succeeded, and
// re-merging questions is idempotent by key.
func (e *Engine) ImportUpdate(ctx context.Context, raw []byte) (*ImportSummary, error) {
	pkg, err := ParsePackage(raw)
	if err != nil {
		return nil, err
	}

	if err := e.checkVersion(pkg); err != nil {
		return nil, err
	}

	prof, err := e.profile.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if prof == nil {
		prof = &store.ProfileRecord{}
	}
	for _, entry := range prof.UpdatesImported {
		if entry.UpdateID == pkg.UpdateID {
			return nil, &DuplicateImportError{UpdateID: pkg.UpdateID}
		}
	}

	importedAt := e.now()
	preUnlocked := e.snapshotUnlocked()

	// Persist every question, then merge the batch into the catalogue in
	// one step.
	merge := make(map[string]catalog.QuestionRecord, len(pkg.Questions))
	for _, filename := range sortedKeys(pkg.Questions) {
		q := pkg.Questions[filename]
		q.Pool = catalog.PoolImported
		rec := &store.QuestionRecord{
			Filename:     filename,
			Data:         q,
			ImportedFrom: pkg.UpdateID,
			ImportedAt:   importedAt,
		}
		if err := e.questions.Put(ctx, rec); err != nil {
			return nil, fmt.Errorf("persist question %s: %w", filename, err)
		}
		merge[filename] = q
	}
	e.cat.Merge(merge)

	if pkg.ScheduleGrant != nil {
		rec := &store.ScheduleUpdateRecord{
			UpdateID:     pkg.UpdateID,
			Enabled:      pkg.ScheduleGrant.Enabled,
			Date:         pkg.ScheduleGrant.Date,
			Label:        pkg.ScheduleGrant.Label,
			ProblemTypes: pkg.ScheduleGrant.ProblemTypes,
			ImportedAt:   importedAt,
		}
		if rec.Date == "" {
			rec.Date = pkg.UpdateDate
		}
		if rec.Label == "" {
			rec.Label = pkg.Description
		}
		if err := e.updates.Put(ctx, rec); err != nil {
			return nil, fmt.Errorf("persist schedule update: %w", err)
		}
	}

	diagramsAdded := 0
	for _, filename := range sortedKeys(pkg.NewDiagrams) {
		rec := &store.DiagramRecord{
			Filename:     filename,
			DataURL:      pkg.NewDiagrams[filename],
			ImportedFrom: pkg.UpdateID,
		}
		if err := e.diagrams.Put(ctx, rec); err != nil {
			return nil, fmt.Errorf("persist diagram %s: %w", filename, err)
		}
		diagramsAdded++
	}

	historyDate := pkg.UpdateDate
	if historyDate == "" {
		historyDate = importedAt.Format("2006-01-02")
	}
	prof.UpdatesImported = append(prof.UpdatesImported, store.ImportHistoryEntry{
		UpdateID:       pkg.UpdateID,
		Date:           historyDate,
		Description:    pkg.Description,
		QuestionsAdded: len(merge),
		ImportedAt:     importedAt,
	})
	if err := e.profile.Save(ctx, prof); err != nil {
		return nil, fmt.Errorf("record import history: %w", err)
	}

	unlocked, err := e.recompute(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		UpdateID:      pkg.UpdateID,
		Description:   pkg.Description,
		ImportedCount: len(merge),
		DiagramsAdded: diagramsAdded,
	}
	if pkg.ScheduleGrant != nil {
		for _, pt := range pkg.ScheduleGrant.Types() {
			_, before := preUnlocked[pt]
			_, after := unlocked[pt]
			if after && !before {
				summary.NewlyUnlocked++
			}
		}
	}
	return summary, nil
}

// checkVersion enforces the package's minAppVersion when both sides carry a
// comparable version.
func (e *Engine) checkVersion(pkg *UpdatePackage) error {
	if pkg.MinAppVersion == "" || e.appVersion == "" || e.appVersion == "(devel)" {
		return nil
	}
	app := canonVersion(e.appVersion)
	min := canonVersion(pkg.MinAppVersion)
	if !semver.IsValid(app) || !semver.IsValid(min) {
		return nil
	}
	if semver.Compare(app, min) < 0 {
		return &UnsupportedPackageError{
			MinAppVersion: pkg.MinAppVersion,
			AppVersion:    e.appVersion,
		}
	}
	return nil
}

func canonVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func (e *Engine) snapshotUnlocked() map[string]struct{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]struct{}, len(e.unlocked))
	for pt := range e.unlocked {
		out[pt] = struct{}{}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
