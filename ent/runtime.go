// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/marblesj/wace-student-trainer/ent/diagram"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
	"github.com/marblesj/wace-student-trainer/ent/profile"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
	"github.com/marblesj/wace-student-trainer/ent/schema"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagramFields := schema.Diagram{}.Fields()
	_ = diagramFields
	// diagramDescFilename is the schema descriptor for filename field.
	diagramDescFilename := diagramFields[0].Descriptor()
	// diagram.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	diagram.FilenameValidator = diagramDescFilename.Validators[0].(func(string) error)
	// diagramDescDataURL is the schema descriptor for data_url field.
	diagramDescDataURL := diagramFields[1].Descriptor()
	// diagram.DataURLValidator is a validator for the "data_url" field. It is called by the builders before save.
	diagram.DataURLValidator = diagramDescDataURL.Validators[0].(func(string) error)
	// diagramDescImportedFrom is the schema descriptor for imported_from field.
	diagramDescImportedFrom := diagramFields[2].Descriptor()
	// diagram.ImportedFromValidator is a validator for the "imported_from" field. It is called by the builders before save.
	diagram.ImportedFromValidator = diagramDescImportedFrom.Validators[0].(func(string) error)
	importedquestionFields := schema.ImportedQuestion{}.Fields()
	_ = importedquestionFields
	// importedquestionDescFilename is the schema descriptor for filename field.
	importedquestionDescFilename := importedquestionFields[0].Descriptor()
	// importedquestion.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	importedquestion.FilenameValidator = importedquestionDescFilename.Validators[0].(func(string) error)
	// importedquestionDescImportedFrom is the schema descriptor for imported_from field.
	importedquestionDescImportedFrom := importedquestionFields[2].Descriptor()
	// importedquestion.ImportedFromValidator is a validator for the "imported_from" field. It is called by the builders before save.
	importedquestion.ImportedFromValidator = importedquestionDescImportedFrom.Validators[0].(func(string) error)
	// importedquestionDescImportedAt is the schema descriptor for imported_at field.
	importedquestionDescImportedAt := importedquestionFields[3].Descriptor()
	// importedquestion.DefaultImportedAt holds the default value on creation for the imported_at field.
	importedquestion.DefaultImportedAt = importedquestionDescImportedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescKey is the schema descriptor for key field.
	profileDescKey := profileFields[0].Descriptor()
	// profile.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	profile.KeyValidator = profileDescKey.Validators[0].(func(string) error)
	// profileDescAheadOfSchedule is the schema descriptor for ahead_of_schedule field.
	profileDescAheadOfSchedule := profileFields[2].Descriptor()
	// profile.DefaultAheadOfSchedule holds the default value on creation for the ahead_of_schedule field.
	profile.DefaultAheadOfSchedule = profileDescAheadOfSchedule.Default.(bool)
	scheduleupdateFields := schema.ScheduleUpdate{}.Fields()
	_ = scheduleupdateFields
	// scheduleupdateDescUpdateID is the schema descriptor for update_id field.
	scheduleupdateDescUpdateID := scheduleupdateFields[0].Descriptor()
	// scheduleupdate.UpdateIDValidator is a validator for the "update_id" field. It is called by the builders before save.
	scheduleupdate.UpdateIDValidator = scheduleupdateDescUpdateID.Validators[0].(func(string) error)
	// scheduleupdateDescImportedAt is the schema descriptor for imported_at field.
	scheduleupdateDescImportedAt := scheduleupdateFields[5].Descriptor()
	// scheduleupdate.DefaultImportedAt holds the default value on creation for the imported_at field.
	scheduleupdate.DefaultImportedAt = scheduleupdateDescImportedAt.Default.(func() time.Time)
	sessionsummaryFields := schema.SessionSummary{}.Fields()
	_ = sessionsummaryFields
	// sessionsummaryDescSessionID is the schema descriptor for session_id field.
	sessionsummaryDescSessionID := sessionsummaryFields[0].Descriptor()
	// sessionsummary.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionsummary.SessionIDValidator = sessionsummaryDescSessionID.Validators[0].(func(string) error)
}
