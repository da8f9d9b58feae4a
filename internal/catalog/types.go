package catalog

// Question pools. Imported questions always carry PoolImported regardless of
// what the update file claims.
const (
	PoolOriginal = "original"
	PoolPractice = "practice"
	PoolImported = "imported"
)

// Part is one marked part of an exam question. A part with an empty
// ProblemType (free-response scaffolding, context paragraphs) never gates
// availability.
type Part struct {
	ProblemType     string   `json:"problemType,omitempty"`
	Marks           int      `json:"marks"`
	Text            string   `json:"text"`
	Solution        []string `json:"solution,omitempty"`
	MarkingCriteria []string `json:"markingCriteria,omitempty"`
}

// QuestionRecord is a single exam question as stored in the base data bundle
// and in teacher update files. Records are replaced whole on re-import; there
// is no field-level merge.
type QuestionRecord struct {
	Parts      []Part `json:"parts"`
	Difficulty int    `json:"difficulty,omitempty"`
	Section    string `json:"section,omitempty"`
	TotalMarks int    `json:"totalMarks,omitempty"`
	Pool       string `json:"_pool,omitempty"`
}

// ProblemTypes returns the distinct non-empty problem types across all parts.
func (q QuestionRecord) ProblemTypes() []string {
	seen := make(map[string]struct{}, len(q.Parts))
	var out []string
	for _, p := range q.Parts {
		if p.ProblemType == "" {
			continue
		}
		if _, ok := seen[p.ProblemType]; ok {
			continue
		}
		seen[p.ProblemType] = struct{}{}
		out = append(out, p.ProblemType)
	}
	return out
}

// HasProblemType reports whether any part carries the given problem type.
func (q QuestionRecord) HasProblemType(pt string) bool {
	for _, p := range q.Parts {
		if p.ProblemType == pt {
			return true
		}
	}
	return false
}

// PoolCounts summarizes how many questions come from each pool.
type PoolCounts struct {
	Original int
	Practice int
	Imported int
	Total    int
}
