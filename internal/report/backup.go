package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marblesj/wace-student-trainer/internal/store"
)

// BackupTypeFull is the backupType value of a full backup file.
const BackupTypeFull = "fullBackup"

// BackupStores holds the dumped contents of every persisted collection.
type BackupStores struct {
	ImportedQuestions []store.QuestionRecord       `json:"importedQuestions"`
	ScheduleUpdates   []store.ScheduleUpdateRecord `json:"scheduleUpdates"`
	Diagrams          []store.DiagramRecord        `json:"diagrams"`
	Profile           *store.ProfileRecord         `json:"config,omitempty"`
	Sessions          []store.SessionRecord        `json:"sessions"`
}

// Backup is a full dump of local state, restorable on another machine.
type Backup struct {
	BackupType  string       `json:"backupType"`
	GeneratedBy string       `json:"generatedBy"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Stores      BackupStores `json:"stores"`
}

// BuildBackup dumps every persisted collection.
func BuildBackup(ctx context.Context, st *store.Store, appVersion string) (*Backup, error) {
	questions, err := st.Questions().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump questions: %w", err)
	}
	updates, err := st.ScheduleUpdates().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump schedule updates: %w", err)
	}
	diagrams, err := st.Diagrams().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump diagrams: %w", err)
	}
	prof, err := st.Profile().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump profile: %w", err)
	}
	sessions, err := st.Sessions().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump sessions: %w", err)
	}

	return &Backup{
		BackupType:  BackupTypeFull,
		GeneratedBy: "WACE Student Trainer " + appVersion,
		GeneratedAt: time.Now().UTC(),
		Stores: BackupStores{
			ImportedQuestions: questions,
			ScheduleUpdates:   updates,
			Diagrams:          diagrams,
			Profile:           prof,
			Sessions:          sessions,
		},
	}, nil
}

// ParseBackup decodes backup bytes and rejects files that are not full
// backups.
func ParseBackup(raw []byte) (*Backup, error) {
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if b.BackupType != BackupTypeFull {
		return nil, fmt.Errorf("not a full backup file (backupType %q)", b.BackupType)
	}
	return &b, nil
}

// Restore replaces every persisted collection with the backup's contents.
// Each collection is cleared before its records are written back.
func Restore(ctx context.Context, st *store.Store, b *Backup) error {
	if err := st.Questions().Clear(ctx); err != nil {
		return err
	}
	for i := range b.Stores.ImportedQuestions {
		if err := st.Questions().Put(ctx, &b.Stores.ImportedQuestions[i]); err != nil {
			return fmt.Errorf("restore questions: %w", err)
		}
	}

	if err := st.ScheduleUpdates().Clear(ctx); err != nil {
		return err
	}
	for i := range b.Stores.ScheduleUpdates {
		if err := st.ScheduleUpdates().Put(ctx, &b.Stores.ScheduleUpdates[i]); err != nil {
			return fmt.Errorf("restore schedule updates: %w", err)
		}
	}

	if err := st.Diagrams().Clear(ctx); err != nil {
		return err
	}
	for i := range b.Stores.Diagrams {
		if err := st.Diagrams().Put(ctx, &b.Stores.Diagrams[i]); err != nil {
			return fmt.Errorf("restore diagrams: %w", err)
		}
	}

	if err := st.Profile().Clear(ctx); err != nil {
		return err
	}
	if b.Stores.Profile != nil {
		if err := st.Profile().Save(ctx, b.Stores.Profile); err != nil {
			return fmt.Errorf("restore profile: %w", err)
		}
	}

	if err := st.Sessions().Clear(ctx); err != nil {
		return err
	}
	for i := range b.Stores.Sessions {
		if err := st.Sessions().Append(ctx, &b.Stores.Sessions[i]); err != nil {
			return fmt.Errorf("restore sessions: %w", err)
		}
	}

	return nil
}
