// Package report builds the teacher-facing progress report and full local
// backups. File IO and download mechanics belong to the callers; this
// package only assembles and restores the structured data.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

// ProgressSummary aggregates the headline numbers a teacher scans first.
type ProgressSummary struct {
	TotalSessions          int                `json:"totalSessions"`
	TotalQuestionsViewed   int                `json:"totalQuestionsViewed"`
	TotalSolutionsRevealed int                `json:"totalSolutionsRevealed"`
	TotalStudyMinutes      int                `json:"totalStudyMinutes"`
	UnlockedProblemTypes   int                `json:"unlockedProblemTypes"`
	TotalProblemTypes      int                `json:"totalProblemTypes"`
	QuestionCounts         catalog.PoolCounts `json:"questionCounts"`
}

// ProgressReport is the exported progress file.
type ProgressReport struct {
	ReportType    string                     `json:"reportType"`
	ReportID      string                     `json:"reportId"`
	GeneratedBy   string                     `json:"generatedBy"`
	GeneratedAt   time.Time                  `json:"generatedAt"`
	StudentName   string                     `json:"studentName"`
	ClassName     string                     `json:"className"`
	TeacherName   string                     `json:"teacherName"`
	Summary       ProgressSummary            `json:"summary"`
	Sessions      []store.SessionRecord      `json:"sessions"`
	ImportHistory []store.ImportHistoryEntry `json:"updatesImported"`
}

// ReportTypeProgress is the reportType value of a progress report.
const ReportTypeProgress = "progressReport"

// BuildProgress assembles a progress report from the engine's derived state
// and the persisted session log.
func BuildProgress(ctx context.Context, eng *engine.Engine, st *store.Store, appVersion string) (*ProgressReport, error) {
	prof, err := st.Profile().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if prof == nil {
		prof = &store.ProfileRecord{}
	}

	sessions, err := st.Sessions().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	summary := ProgressSummary{
		TotalSessions:        len(sessions),
		UnlockedProblemTypes: len(eng.Unlocked()),
		TotalProblemTypes:    len(eng.AllProblemTypes()),
		QuestionCounts:       eng.PoolCounts(),
	}
	for _, s := range sessions {
		summary.TotalQuestionsViewed += s.QuestionsViewed
		summary.TotalSolutionsRevealed += s.SolutionsRevealed
		summary.TotalStudyMinutes += s.DurationMinutes
	}

	sched := eng.ScheduleSummary()
	studentName := prof.StudentName
	if studentName == "" {
		studentName = "Unknown"
	}

	return &ProgressReport{
		ReportType:    ReportTypeProgress,
		ReportID:      uuid.New().String(),
		GeneratedBy:   "WACE Student Trainer " + appVersion,
		GeneratedAt:   time.Now().UTC(),
		StudentName:   studentName,
		ClassName:     sched.ClassName,
		TeacherName:   sched.TeacherName,
		Summary:       summary,
		Sessions:      sessions,
		ImportHistory: prof.UpdatesImported,
	}, nil
}

// ProgressFilename suggests an export filename for the report.
func ProgressFilename(studentName string, now time.Time) string {
	name := strings.Join(strings.Fields(studentName), "_")
	if name == "" {
		name = "Student"
	}
	return fmt.Sprintf("Progress_%s_%s.json", name, now.Format("2006-01-02"))
}
