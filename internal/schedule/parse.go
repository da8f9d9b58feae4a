package schedule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marblesj/wace-student-trainer/internal/validate"
)

// ParseBase validates and decodes a taught-schedule file. Schedule files are
// teacher-authored JSON passed around by hand, so the shape is checked
// explicitly before anything downstream consumes it.
func ParseBase(raw []byte) (Base, error) {
	if err := validate.Check(BaseSchema, raw); err != nil {
		return Base{}, err
	}
	var base Base
	if err := json.Unmarshal(raw, &base); err != nil {
		return Base{}, fmt.Errorf("decode schedule: %w", err)
	}
	return base, nil
}

// LoadBase reads and parses the schedule file at path. A missing file yields
// an empty schedule: nothing unlocks until a teacher provides one.
func LoadBase(path string) (Base, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Base{}, nil
		}
		return Base{}, fmt.Errorf("read schedule %s: %w", path, err)
	}
	return ParseBase(raw)
}
