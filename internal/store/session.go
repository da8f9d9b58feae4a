package store

import (
	"context"
	"fmt"

	"github.com/marblesj/wace-student-trainer/ent"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Append(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.SessionSummary.Create().
		SetSessionID(rec.SessionID).
		SetStartedAt(rec.StartedAt).
		SetEndedAt(rec.EndedAt).
		SetDurationMinutes(rec.DurationMinutes).
		SetTopicFilter(rec.TopicFilter).
		SetQuestionsViewed(rec.QuestionsViewed).
		SetSolutionsRevealed(rec.SolutionsRevealed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.SessionID, err)
	}
	return nil
}

func (r *sessionRepo) All(ctx context.Context) ([]SessionRecord, error) {
	rows, err := r.client.SessionSummary.Query().
		Order(ent.Asc(sessionsummary.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionRecord{
			SessionID:         row.SessionID,
			StartedAt:         row.StartedAt,
			EndedAt:           row.EndedAt,
			DurationMinutes:   row.DurationMinutes,
			TopicFilter:       row.TopicFilter,
			QuestionsViewed:   row.QuestionsViewed,
			SolutionsRevealed: row.SolutionsRevealed,
		})
	}
	return out, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	_, err := r.client.SessionSummary.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}
