package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marblesj/wace-student-trainer/ent"
	"github.com/marblesj/wace-student-trainer/ent/profile"
)

// profileKey is the key of the single profile row.
const profileKey = "main"

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context) (*ProfileRecord, error) {
	row, err := r.client.Profile.Query().
		Where(profile.KeyEQ(profileKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	history, err := historyFromMaps(row.UpdatesImported)
	if err != nil {
		return nil, fmt.Errorf("unmarshal import history: %w", err)
	}
	return &ProfileRecord{
		StudentName:     row.StudentName,
		AheadOfSchedule: row.AheadOfSchedule,
		UpdatesImported: history,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, rec *ProfileRecord) error {
	history, err := historyToMaps(rec.UpdatesImported)
	if err != nil {
		return fmt.Errorf("marshal import history: %w", err)
	}

	existing, err := r.client.Profile.Query().
		Where(profile.KeyEQ(profileKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup profile: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetStudentName(rec.StudentName).
			SetAheadOfSchedule(rec.AheadOfSchedule).
			SetUpdatesImported(history).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	}

	_, err = r.client.Profile.Create().
		SetKey(profileKey).
		SetStudentName(rec.StudentName).
		SetAheadOfSchedule(rec.AheadOfSchedule).
		SetUpdatesImported(history).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Clear(ctx context.Context) error {
	_, err := r.client.Profile.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

func historyToMaps(entries []ImportHistoryEntry) ([]map[string]any, error) {
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func historyFromMaps(maps []map[string]any) ([]ImportHistoryEntry, error) {
	if len(maps) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(maps)
	if err != nil {
		return nil, err
	}
	var out []ImportHistoryEntry
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
