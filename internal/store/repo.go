package store

import (
	"context"
	"time"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/schedule"
)

// QuestionRecord is a persisted imported question, keyed by filename.
type QuestionRecord struct {
	Filename     string                 `json:"filename"`
	Data         catalog.QuestionRecord `json:"questionData"`
	ImportedFrom string                 `json:"importedFrom"`
	ImportedAt   time.Time              `json:"importedAt"`
}

// ScheduleUpdateRecord is one row of the append-only schedule-update log.
type ScheduleUpdateRecord struct {
	UpdateID     string    `json:"updateId"`
	Enabled      []string  `json:"enabledProblemTypes,omitempty"`
	Date         string    `json:"date,omitempty"`
	Label        string    `json:"label,omitempty"`
	ProblemTypes []string  `json:"problemTypes,omitempty"`
	ImportedAt   time.Time `json:"importedAt"`
}

// ToUpdate converts the persisted row to the schedule package's union type.
func (r ScheduleUpdateRecord) ToUpdate() schedule.Update {
	u := schedule.Update{
		UpdateID:   r.UpdateID,
		Enabled:    r.Enabled,
		ImportedAt: r.ImportedAt,
	}
	if len(r.Enabled) == 0 {
		u.Dated = &schedule.Entry{
			Date:         r.Date,
			Label:        r.Label,
			ProblemTypes: r.ProblemTypes,
		}
	}
	return u
}

// DiagramRecord is an embedded image delivered by an update package.
type DiagramRecord struct {
	Filename     string `json:"filename"`
	DataURL      string `json:"dataUrl"`
	ImportedFrom string `json:"importedFrom"`
}

// ImportHistoryEntry records one applied update package. Entries are
// append-only; the importer's duplicate check reads them.
type ImportHistoryEntry struct {
	UpdateID       string    `json:"updateId"`
	Date           string    `json:"date"`
	Description    string    `json:"description"`
	QuestionsAdded int       `json:"questionsAdded"`
	ImportedAt     time.Time `json:"importedAt"`
}

// ProfileRecord is the single local student profile.
type ProfileRecord struct {
	StudentName     string               `json:"studentName"`
	AheadOfSchedule bool                 `json:"aheadOfSchedule"`
	UpdatesImported []ImportHistoryEntry `json:"updatesImported"`
}

// SessionRecord summarizes one practice session.
type SessionRecord struct {
	SessionID         string    `json:"sessionId"`
	StartedAt         time.Time `json:"startedAt"`
	EndedAt           time.Time `json:"endedAt"`
	DurationMinutes   int       `json:"durationMinutes"`
	TopicFilter       string    `json:"topicFilter,omitempty"`
	QuestionsViewed   int       `json:"questionsViewed"`
	SolutionsRevealed int       `json:"solutionsRevealed"`
}

// QuestionRepo persists imported questions by filename.
type QuestionRepo interface {
	// Put inserts or replaces the record for its filename.
	Put(ctx context.Context, rec *QuestionRecord) error

	// Get returns the record for filename, or nil if absent.
	Get(ctx context.Context, filename string) (*QuestionRecord, error)

	// All returns every imported question.
	All(ctx context.Context) ([]QuestionRecord, error)

	// Clear removes every imported question.
	Clear(ctx context.Context) error
}

// ScheduleUpdateRepo persists the schedule-update log by updateId.
type ScheduleUpdateRepo interface {
	Put(ctx context.Context, rec *ScheduleUpdateRecord) error
	Get(ctx context.Context, updateID string) (*ScheduleUpdateRecord, error)

	// All returns updates in arrival order (oldest first).
	All(ctx context.Context) ([]ScheduleUpdateRecord, error)

	Clear(ctx context.Context) error
}

// DiagramRepo persists embedded diagrams by filename.
type DiagramRepo interface {
	Put(ctx context.Context, rec *DiagramRecord) error
	Get(ctx context.Context, filename string) (*DiagramRecord, error)
	All(ctx context.Context) ([]DiagramRecord, error)
	Clear(ctx context.Context) error
}

// ProfileRepo persists the single student profile.
type ProfileRepo interface {
	// Get returns the profile, or nil if the student has none yet.
	Get(ctx context.Context) (*ProfileRecord, error)

	// Save inserts or replaces the profile.
	Save(ctx context.Context, rec *ProfileRecord) error

	Clear(ctx context.Context) error
}

// SessionRepo persists practice session summaries.
type SessionRepo interface {
	Append(ctx context.Context, rec *SessionRecord) error

	// All returns sessions oldest first.
	All(ctx context.Context) ([]SessionRecord, error)

	Clear(ctx context.Context) error
}
