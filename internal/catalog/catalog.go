package catalog

import (
	"sort"
	"sync"
)

// Catalogue is the in-memory question map: base bundle first, imported
// records overlaid on top. Catalogue sizes are in the hundreds, so lookups
// by problem type scan the full map rather than maintaining a secondary
// index. The distinct problem-type set is cached and invalidated by any
// merge.
type Catalogue struct {
	mu        sync.RWMutex
	questions map[string]QuestionRecord

	problemTypes []string // cached, nil when dirty
}

// New creates an empty catalogue.
func New() *Catalogue {
	return &Catalogue{questions: make(map[string]QuestionRecord)}
}

// Load seeds the catalogue from the base bundle. Keys already present are
// left untouched, so imported data merged before a (re)load keeps precedence.
func (c *Catalogue) Load(base map[string]QuestionRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, q := range base {
		if _, ok := c.questions[key]; ok {
			continue
		}
		c.questions[key] = q
	}
	c.problemTypes = nil
}

// Merge overlays records onto the catalogue, last write wins per key.
// Imported records replace base records sharing a key in their entirety.
func (c *Catalogue) Merge(records map[string]QuestionRecord) {
	if len(records) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, q := range records {
		c.questions[key] = q
	}
	c.problemTypes = nil
}

// Put inserts or replaces a single record.
func (c *Catalogue) Put(key string, q QuestionRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions[key] = q
	c.problemTypes = nil
}

// Get returns the record for key.
func (c *Catalogue) Get(key string) (QuestionRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.questions[key]
	return q, ok
}

// Len returns the number of questions.
func (c *Catalogue) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.questions)
}

// All returns a copy of the current mapping.
func (c *Catalogue) All() map[string]QuestionRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]QuestionRecord, len(c.questions))
	for k, q := range c.questions {
		out[k] = q
	}
	return out
}

// ByProblemType returns every question with at least one part of the given
// problem type, regardless of unlock state.
func (c *Catalogue) ByProblemType(pt string) map[string]QuestionRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]QuestionRecord)
	for k, q := range c.questions {
		if q.HasProblemType(pt) {
			out[k] = q
		}
	}
	return out
}

// ProblemTypes returns the sorted distinct problem types referenced by any
// part of any loaded question. The result is recomputed lazily after a merge.
func (c *Catalogue) ProblemTypes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.problemTypes == nil {
		set := make(map[string]struct{})
		for _, q := range c.questions {
			for _, p := range q.Parts {
				if p.ProblemType != "" {
					set[p.ProblemType] = struct{}{}
				}
			}
		}
		pts := make([]string, 0, len(set))
		for pt := range set {
			pts = append(pts, pt)
		}
		sort.Strings(pts)
		c.problemTypes = pts
	}
	out := make([]string, len(c.problemTypes))
	copy(out, c.problemTypes)
	return out
}

// Counts tallies questions per pool.
func (c *Catalogue) Counts() PoolCounts {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var pc PoolCounts
	for _, q := range c.questions {
		switch q.Pool {
		case PoolOriginal:
			pc.Original++
		case PoolPractice:
			pc.Practice++
		case PoolImported:
			pc.Imported++
		}
	}
	pc.Total = len(c.questions)
	return pc
}
