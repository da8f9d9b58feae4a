package schedule

import "github.com/marblesj/wace-student-trainer/internal/validate"

// BaseSchema defines the JSON schema for a taught-schedule file. Either the
// flat enabledProblemTypes list, the legacy dated schedule, or both may be
// present; className and teacherName identify the class the file belongs to.
var BaseSchema = &validate.Schema{
	Name: "taught-schedule",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"className":   map[string]any{"type": "string"},
			"teacherName": map[string]any{"type": "string"},
			"enabledProblemTypes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"date":  map[string]any{"type": "string"},
						"label": map[string]any{"type": "string"},
						"problemTypes": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"date", "problemTypes"},
				},
			},
			"allowAheadOfSchedule": map[string]any{"type": "boolean"},
		},
		"required": []any{"className", "teacherName"},
	},
}
