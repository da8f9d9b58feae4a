package store

import (
	"context"
	"fmt"

	"github.com/marblesj/wace-student-trainer/ent"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
)

// scheduleUpdateRepo implements ScheduleUpdateRepo using the ent client.
type scheduleUpdateRepo struct {
	client *ent.Client
}

func (r *scheduleUpdateRepo) Put(ctx context.Context, rec *ScheduleUpdateRecord) error {
	existing, err := r.client.ScheduleUpdate.Query().
		Where(scheduleupdate.UpdateIDEQ(rec.UpdateID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup schedule update %s: %w", rec.UpdateID, err)
	}
	if existing != nil {
		// A re-put of the same updateId happens on import retry after a
		// partial failure; the row contents are identical either way.
		_, err = existing.Update().
			SetEnabledProblemTypes(rec.Enabled).
			SetDate(rec.Date).
			SetLabel(rec.Label).
			SetProblemTypes(rec.ProblemTypes).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("replace schedule update %s: %w", rec.UpdateID, err)
		}
		return nil
	}

	create := r.client.ScheduleUpdate.Create().
		SetUpdateID(rec.UpdateID).
		SetEnabledProblemTypes(rec.Enabled).
		SetDate(rec.Date).
		SetLabel(rec.Label).
		SetProblemTypes(rec.ProblemTypes)
	if !rec.ImportedAt.IsZero() {
		create.SetImportedAt(rec.ImportedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save schedule update %s: %w", rec.UpdateID, err)
	}
	return nil
}

func (r *scheduleUpdateRepo) Get(ctx context.Context, updateID string) (*ScheduleUpdateRecord, error) {
	row, err := r.client.ScheduleUpdate.Query().
		Where(scheduleupdate.UpdateIDEQ(updateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query schedule update %s: %w", updateID, err)
	}
	return entToScheduleUpdate(row), nil
}

func (r *scheduleUpdateRepo) All(ctx context.Context) ([]ScheduleUpdateRecord, error) {
	rows, err := r.client.ScheduleUpdate.Query().
		Order(ent.Asc(scheduleupdate.FieldImportedAt), ent.Asc(scheduleupdate.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedule updates: %w", err)
	}
	out := make([]ScheduleUpdateRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, *entToScheduleUpdate(row))
	}
	return out, nil
}

func (r *scheduleUpdateRepo) Clear(ctx context.Context) error {
	_, err := r.client.ScheduleUpdate.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear schedule updates: %w", err)
	}
	return nil
}

func entToScheduleUpdate(row *ent.ScheduleUpdate) *ScheduleUpdateRecord {
	return &ScheduleUpdateRecord{
		UpdateID:     row.UpdateID,
		Enabled:      row.EnabledProblemTypes,
		Date:         row.Date,
		Label:        row.Label,
		ProblemTypes: row.ProblemTypes,
		ImportedAt:   row.ImportedAt,
	}
}
