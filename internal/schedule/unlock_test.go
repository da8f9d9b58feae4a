package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// now is a fixed reference instant for date-gating tests: mid-afternoon so
// day-granularity comparison actually matters.
var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func TestComputeUnlockedFlatBase(t *testing.T) {
	base := Base{
		EnabledProblemTypes: []string{"quadratics", "trigonometry"},
	}

	got := ComputeUnlocked(base, nil, false, testNow)

	assert.Equal(t, []string{"quadratics", "trigonometry"}, Sorted(got))
}

func TestComputeUnlockedDateGating(t *testing.T) {
	base := Base{
		Entries: []Entry{
			{Date: "2026-03-01", ProblemTypes: []string{"indices"}},
			{Date: "2026-03-10", ProblemTypes: []string{"logarithms"}},
			{Date: "2026-03-11", ProblemTypes: []string{"calculus"}},
		},
	}

	got := ComputeUnlocked(base, nil, false, testNow)

	// Past and today's entries unlock; tomorrow's does not. The comparison
	// is at day granularity: 15:30 on the entry's own date still counts.
	assert.Equal(t, []string{"indices", "logarithms"}, Sorted(got))
}

func TestComputeUnlockedAheadBypassesDates(t *testing.T) {
	base := Base{
		Entries: []Entry{
			{Date: "2026-03-01", ProblemTypes: []string{"indices"}},
			{Date: "2027-01-01", ProblemTypes: []string{"calculus"}},
		},
	}

	got := ComputeUnlocked(base, nil, true, testNow)

	assert.Equal(t, []string{"calculus", "indices"}, Sorted(got))
}

func TestComputeUnlockedMalformedDateContributesNothing(t *testing.T) {
	base := Base{
		Entries: []Entry{
			{Date: "not-a-date", ProblemTypes: []string{"broken"}},
			{Date: "2026-03-01", ProblemTypes: []string{"indices"}},
		},
	}

	got := ComputeUnlocked(base, nil, false, testNow)

	assert.Equal(t, []string{"indices"}, Sorted(got))

	// Ahead skips date parsing entirely, so even a malformed entry's types
	// come through.
	gotAhead := ComputeUnlocked(base, nil, true, testNow)
	assert.Equal(t, []string{"broken", "indices"}, Sorted(gotAhead))
}

func TestComputeUnlockedUpdatesUnion(t *testing.T) {
	base := Base{
		EnabledProblemTypes: []string{"quadratics"},
	}
	updates := []Update{
		{UpdateID: "u1", Enabled: []string{"trigonometry"}},
		{UpdateID: "u2", Dated: &Entry{Date: "2026-03-05", ProblemTypes: []string{"indices"}}},
		{UpdateID: "u3", Dated: &Entry{Date: "2026-04-01", ProblemTypes: []string{"calculus"}}},
	}

	got := ComputeUnlocked(base, updates, false, testNow)

	// Flat update grants unconditionally; dated updates obey the same date
	// gate as base entries.
	assert.Equal(t, []string{"indices", "quadratics", "trigonometry"}, Sorted(got))
}

func TestComputeUnlockedPure(t *testing.T) {
	base := Base{
		EnabledProblemTypes: []string{"quadratics"},
		Entries: []Entry{
			{Date: "2026-03-01", ProblemTypes: []string{"indices"}},
		},
	}
	updates := []Update{
		{UpdateID: "u1", Enabled: []string{"trigonometry"}},
	}

	first := ComputeUnlocked(base, updates, false, testNow)
	second := ComputeUnlocked(base, updates, false, testNow)

	assert.Equal(t, Sorted(first), Sorted(second))
	// Inputs must not be mutated.
	assert.Equal(t, []string{"quadratics"}, base.EnabledProblemTypes)
	assert.Equal(t, []string{"trigonometry"}, updates[0].Enabled)
}

func TestComputeUnlockedMonotonicOverUpdates(t *testing.T) {
	base := Base{EnabledProblemTypes: []string{"quadratics"}}

	var updates []Update
	prev := ComputeUnlocked(base, updates, false, testNow)
	grants := [][]string{{"trigonometry"}, {"indices"}, {"quadratics", "calculus"}}

	// Each appended update can only grow the set.
	for i, g := range grants {
		updates = append(updates, Update{UpdateID: string(rune('a' + i)), Enabled: g})
		next := ComputeUnlocked(base, updates, false, testNow)
		for pt := range prev {
			_, ok := next[pt]
			assert.True(t, ok, "problem type %q dropped after update %d", pt, i)
		}
		prev = next
	}
}

func TestComputeUnlockedEmptyInputs(t *testing.T) {
	got := ComputeUnlocked(Base{}, nil, false, testNow)
	assert.Empty(t, got)

	got = ComputeUnlocked(Base{}, nil, true, testNow)
	assert.Empty(t, got)
}

func TestFlat(t *testing.T) {
	assert.True(t, Update{Enabled: []string{"x"}}.Flat())
	assert.False(t, Update{Dated: &Entry{Date: "2026-01-01"}}.Flat())
	assert.False(t, Update{}.Flat())
}

func TestSummarize(t *testing.T) {
	base := Base{
		ClassName:   "Year 12 Methods",
		TeacherName: "Ms Chen",
		Entries: []Entry{
			{Date: "2026-03-01", Label: "Term 1", ProblemTypes: []string{"indices"}},
			{Date: "2026-03-20", Label: "Term 1 week 8", ProblemTypes: []string{"calculus"}},
		},
	}

	sum := Summarize(base, testNow)

	assert.Equal(t, "Year 12 Methods", sum.ClassName)
	assert.Equal(t, 2, sum.TotalEntries)
	if assert.NotNil(t, sum.NextUnlock) {
		assert.Equal(t, "2026-03-20", sum.NextUnlock.Date)
	}
}

func TestSummarizeFlatHasNoNextUnlock(t *testing.T) {
	base := Base{
		ClassName:           "Year 12 Methods",
		EnabledProblemTypes: []string{"indices", "calculus", "quadratics"},
	}

	sum := Summarize(base, testNow)

	assert.Nil(t, sum.NextUnlock)
	assert.Equal(t, 3, sum.TotalEntries)
}
