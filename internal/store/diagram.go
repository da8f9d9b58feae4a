package store

import (
	"context"
	"fmt"

	"github.com/marblesj/wace-student-trainer/ent"
	"github.com/marblesj/wace-student-trainer/ent/diagram"
)

// diagramRepo implements DiagramRepo using the ent client.
type diagramRepo struct {
	client *ent.Client
}

func (r *diagramRepo) Put(ctx context.Context, rec *DiagramRecord) error {
	existing, err := r.client.Diagram.Query().
		Where(diagram.FilenameEQ(rec.Filename)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup diagram %s: %w", rec.Filename, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetDataURL(rec.DataURL).
			SetImportedFrom(rec.ImportedFrom).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("replace diagram %s: %w", rec.Filename, err)
		}
		return nil
	}

	_, err = r.client.Diagram.Create().
		SetFilename(rec.Filename).
		SetDataURL(rec.DataURL).
		SetImportedFrom(rec.ImportedFrom).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagram %s: %w", rec.Filename, err)
	}
	return nil
}

func (r *diagramRepo) Get(ctx context.Context, filename string) (*DiagramRecord, error) {
	row, err := r.client.Diagram.Query().
		Where(diagram.FilenameEQ(filename)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query diagram %s: %w", filename, err)
	}
	return &DiagramRecord{
		Filename:     row.Filename,
		DataURL:      row.DataURL,
		ImportedFrom: row.ImportedFrom,
	}, nil
}

func (r *diagramRepo) All(ctx context.Context) ([]DiagramRecord, error) {
	rows, err := r.client.Diagram.Query().
		Order(ent.Asc(diagram.FieldFilename)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query diagrams: %w", err)
	}
	out := make([]DiagramRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, DiagramRecord{
			Filename:     row.Filename,
			DataURL:      row.DataURL,
			ImportedFrom: row.ImportedFrom,
		})
	}
	return out, nil
}

func (r *diagramRepo) Clear(ctx context.Context) error {
	_, err := r.client.Diagram.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear diagrams: %w", err)
	}
	return nil
}
