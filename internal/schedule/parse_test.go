package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marblesj/wace-student-trainer/internal/validate"
)

func TestParseBaseFlatFormat(t *testing.T) {
	raw := []byte(`{
		"className": "Year 12 Methods",
		"teacherName": "Ms Chen",
		"enabledProblemTypes": ["quadratics", "indices"],
		"allowAheadOfSchedule": true
	}`)

	base, err := ParseBase(raw)
	require.NoError(t, err)

	assert.Equal(t, "Year 12 Methods", base.ClassName)
	assert.Equal(t, "Ms Chen", base.TeacherName)
	assert.Equal(t, []string{"quadratics", "indices"}, base.EnabledProblemTypes)
	assert.True(t, base.AllowAheadOfSchedule)
	assert.Empty(t, base.Entries)
}

func TestParseBaseLegacyFormat(t *testing.T) {
	raw := []byte(`{
		"className": "Year 11 Applications",
		"teacherName": "Mr Okafor",
		"schedule": [
			{"date": "2026-02-09", "label": "Term 1", "problemTypes": ["linear-equations"]},
			{"date": "2026-03-02", "problemTypes": ["matrices", "sequences"]}
		]
	}`)

	base, err := ParseBase(raw)
	require.NoError(t, err)

	require.Len(t, base.Entries, 2)
	assert.Equal(t, "2026-02-09", base.Entries[0].Date)
	assert.Equal(t, "Term 1", base.Entries[0].Label)
	assert.Equal(t, []string{"matrices", "sequences"}, base.Entries[1].ProblemTypes)
}

func TestParseBaseMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing className", `{"teacherName": "Ms Chen"}`},
		{"missing teacherName", `{"className": "Year 12"}`},
		{"not JSON", `{oops`},
		{"wrong type", `{"className": 5, "teacherName": "Ms Chen"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBase([]byte(tt.raw))
			require.Error(t, err)
			var shapeErr *validate.ErrInvalidShape
			assert.True(t, errors.As(err, &shapeErr))
		})
	}
}

func TestLoadBaseMissingFile(t *testing.T) {
	base, err := LoadBase(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Base{}, base)
}

func TestLoadBaseReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	err := os.WriteFile(path, []byte(`{"className": "Year 12", "teacherName": "Ms Chen"}`), 0o644)
	require.NoError(t, err)

	base, err := LoadBase(path)
	require.NoError(t, err)
	assert.Equal(t, "Year 12", base.ClassName)
}
