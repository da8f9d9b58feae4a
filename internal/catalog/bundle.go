package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadBundle reads the base question bundle: a JSON object mapping
// filename-like keys to question records. A missing bundle file is not an
// error; the app runs with an empty catalogue and everything stays locked.
func LoadBundle(path string) (map[string]QuestionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]QuestionRecord{}, nil
		}
		return nil, fmt.Errorf("read bundle %s: %w", path, err)
	}
	return ParseBundle(data)
}

// ParseBundle decodes bundle bytes into the question map. Records without an
// explicit pool marker default to the original pool.
func ParseBundle(data []byte) (map[string]QuestionRecord, error) {
	var bundle map[string]QuestionRecord
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	for key, q := range bundle {
		if q.Pool == "" {
			q.Pool = PoolOriginal
			bundle[key] = q
		}
	}
	return bundle, nil
}
