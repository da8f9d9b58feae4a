package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marblesj/wace-student-trainer/ent"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
	"github.com/marblesj/wace-student-trainer/internal/catalog"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Put(ctx context.Context, rec *QuestionRecord) error {
	dataMap, err := toMap(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal question %s: %w", rec.Filename, err)
	}

	existing, err := r.client.ImportedQuestion.Query().
		Where(importedquestion.FilenameEQ(rec.Filename)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup question %s: %w", rec.Filename, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetQuestionData(dataMap).
			SetImportedFrom(rec.ImportedFrom).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("replace question %s: %w", rec.Filename, err)
		}
		return nil
	}

	create := r.client.ImportedQuestion.Create().
		SetFilename(rec.Filename).
		SetQuestionData(dataMap).
		SetImportedFrom(rec.ImportedFrom)
	if !rec.ImportedAt.IsZero() {
		create.SetImportedAt(rec.ImportedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save question %s: %w", rec.Filename, err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, filename string) (*QuestionRecord, error) {
	q, err := r.client.ImportedQuestion.Query().
		Where(importedquestion.FilenameEQ(filename)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question %s: %w", filename, err)
	}
	return entToQuestion(q)
}

func (r *questionRepo) All(ctx context.Context) ([]QuestionRecord, error) {
	rows, err := r.client.ImportedQuestion.Query().
		Order(ent.Asc(importedquestion.FieldImportedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	out := make([]QuestionRecord, 0, len(rows))
	for _, q := range rows {
		rec, err := entToQuestion(q)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (r *questionRepo) Clear(ctx context.Context) error {
	_, err := r.client.ImportedQuestion.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}
	return nil
}

func entToQuestion(q *ent.ImportedQuestion) (*QuestionRecord, error) {
	var data catalog.QuestionRecord
	if err := fromMap(q.QuestionData, &data); err != nil {
		return nil, fmt.Errorf("unmarshal question %s: %w", q.Filename, err)
	}
	return &QuestionRecord{
		Filename:     q.Filename,
		Data:         data,
		ImportedFrom: q.ImportedFrom,
		ImportedAt:   q.ImportedAt,
	}, nil
}

// toMap converts a typed value to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap converts an ent JSON map back to a typed value.
func fromMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
