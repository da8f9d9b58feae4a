package engine

import (
	"encoding/json"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/validate"
)

// ScheduleGrant is the scheduleUpdate section of an update package. New
// format carries enabledProblemTypes; legacy format carries a single dated
// entry. enabledProblemTypes wins when both are present.
type ScheduleGrant struct {
	Enabled      []string `json:"enabledProblemTypes,omitempty"`
	Date         string   `json:"date,omitempty"`
	Label        string   `json:"label,omitempty"`
	ProblemTypes []string `json:"problemTypes,omitempty"`
}

// Types returns the problem types this grant can unlock, whichever format it
// uses.
func (g ScheduleGrant) Types() []string {
	if len(g.Enabled) > 0 {
		return g.Enabled
	}
	return g.ProblemTypes
}

// UpdatePackage is a teacher-distributed update file: new questions, a
// schedule grant, embedded diagrams, or any combination.
type UpdatePackage struct {
	UpdateID      string                            `json:"updateId"`
	UpdateDate    string                            `json:"updateDate,omitempty"`
	Description   string                            `json:"description,omitempty"`
	MinAppVersion string                            `json:"minAppVersion,omitempty"`
	Questions     map[string]catalog.QuestionRecord `json:"questions,omitempty"`
	ScheduleGrant *ScheduleGrant                    `json:"scheduleUpdate,omitempty"`
	NewDiagrams   map[string]string                 `json:"newDiagrams,omitempty"`
}

// packageSchema is the shape check applied to update files before anything
// else looks at them. Beyond requiring updateId, it stays permissive:
// imported files are trusted after this check.
var packageSchema = &validate.Schema{
	Name: "update-package",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"updateId":      map[string]any{"type": "string", "minLength": 1},
			"updateDate":    map[string]any{"type": "string"},
			"description":   map[string]any{"type": "string"},
			"minAppVersion": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"parts": map[string]any{"type": "array"},
					},
					"required": []any{"parts"},
				},
			},
			"scheduleUpdate": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"enabledProblemTypes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"date":  map[string]any{"type": "string"},
					"label": map[string]any{"type": "string"},
					"problemTypes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
			"newDiagrams": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
		"required": []any{"updateId"},
	},
}

// ParsePackage validates raw bytes against the package schema and decodes
// them. Any shape failure comes back as *MalformedPackageError.
func ParsePackage(raw []byte) (*UpdatePackage, error) {
	if err := validate.Check(packageSchema, raw); err != nil {
		return nil, &MalformedPackageError{Err: err}
	}
	var pkg UpdatePackage
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, &MalformedPackageError{Err: err}
	}
	return &pkg, nil
}
