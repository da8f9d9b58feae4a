package catalog

import (
	"path/filepath"
	"reflect"
	"testing"
)

func q(pool string, pts ...string) QuestionRecord {
	parts := make([]Part, 0, len(pts))
	for _, pt := range pts {
		parts = append(parts, Part{ProblemType: pt, Marks: 2, Text: "solve"})
	}
	return QuestionRecord{Parts: parts, Pool: pool}
}

func TestLoadDoesNotOverwrite(t *testing.T) {
	c := New()
	c.Put("q1.json", q(PoolImported, "calculus"))

	c.Load(map[string]QuestionRecord{
		"q1.json": q(PoolOriginal, "indices"),
		"q2.json": q(PoolOriginal, "indices"),
	})

	got, ok := c.Get("q1.json")
	if !ok {
		t.Fatal("q1.json missing")
	}
	if got.Pool != PoolImported {
		t.Errorf("q1.json pool = %q, want imported record to survive a reload", got.Pool)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestMergeReplacesWholeRecord(t *testing.T) {
	c := New()
	c.Load(map[string]QuestionRecord{
		"q1.json": {Parts: []Part{{ProblemType: "indices", Marks: 4}}, Section: "A", Pool: PoolOriginal},
	})

	c.Merge(map[string]QuestionRecord{
		"q1.json": {Parts: []Part{{ProblemType: "calculus", Marks: 6}}, Pool: PoolImported},
	})

	got, _ := c.Get("q1.json")
	if got.Section != "" {
		t.Errorf("section = %q, want record replaced whole, not field-merged", got.Section)
	}
	if !got.HasProblemType("calculus") || got.HasProblemType("indices") {
		t.Errorf("parts = %v, want old parts gone", got.Parts)
	}
}

func TestProblemTypesCacheInvalidation(t *testing.T) {
	c := New()
	c.Load(map[string]QuestionRecord{
		"q1.json": q(PoolOriginal, "indices", "quadratics"),
	})

	got := c.ProblemTypes()
	want := []string{"indices", "quadratics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("problem types = %v, want %v", got, want)
	}

	c.Merge(map[string]QuestionRecord{
		"q2.json": q(PoolImported, "calculus"),
	})

	got = c.ProblemTypes()
	want = []string{"calculus", "indices", "quadratics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("problem types after merge = %v, want %v", got, want)
	}
}

func TestProblemTypesIgnoresUntypedParts(t *testing.T) {
	c := New()
	c.Load(map[string]QuestionRecord{
		"q1.json": {Parts: []Part{{Text: "context only"}, {ProblemType: "indices"}}},
	})

	got := c.ProblemTypes()
	if !reflect.DeepEqual(got, []string{"indices"}) {
		t.Errorf("problem types = %v, want untyped parts skipped", got)
	}
}

func TestByProblemType(t *testing.T) {
	c := New()
	c.Load(map[string]QuestionRecord{
		"q1.json": q(PoolOriginal, "indices"),
		"q2.json": q(PoolOriginal, "indices", "calculus"),
		"q3.json": q(PoolOriginal, "quadratics"),
	})

	got := c.ByProblemType("indices")
	if len(got) != 2 {
		t.Errorf("indices matches = %d, want 2", len(got))
	}
	if _, ok := got["q3.json"]; ok {
		t.Error("q3.json matched indices but has no such part")
	}
}

func TestCounts(t *testing.T) {
	c := New()
	c.Load(map[string]QuestionRecord{
		"q1.json": q(PoolOriginal, "indices"),
		"q2.json": q(PoolPractice, "indices"),
		"q3.json": q(PoolImported, "calculus"),
		"q4.json": q(PoolImported, "calculus"),
	})

	pc := c.Counts()
	if pc.Original != 1 || pc.Practice != 1 || pc.Imported != 2 || pc.Total != 4 {
		t.Errorf("counts = %+v, want 1/1/2 total 4", pc)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := New()
	c.Load(map[string]QuestionRecord{"q1.json": q(PoolOriginal, "indices")})

	all := c.All()
	delete(all, "q1.json")

	if c.Len() != 1 {
		t.Error("mutating the All() result changed the catalogue")
	}
}

func TestParseBundleDefaultsPool(t *testing.T) {
	bundle, err := ParseBundle([]byte(`{
		"q1.json": {"parts": [{"problemType": "indices", "marks": 3, "text": "solve"}]},
		"q2.json": {"parts": [], "_pool": "practice"}
	}`))
	if err != nil {
		t.Fatalf("parse bundle: %v", err)
	}

	if bundle["q1.json"].Pool != PoolOriginal {
		t.Errorf("q1 pool = %q, want default %q", bundle["q1.json"].Pool, PoolOriginal)
	}
	if bundle["q2.json"].Pool != PoolPractice {
		t.Errorf("q2 pool = %q, want explicit marker kept", bundle["q2.json"].Pool)
	}
}

func TestParseBundleRejectsMalformed(t *testing.T) {
	if _, err := ParseBundle([]byte(`["not", "an", "object"]`)); err == nil {
		t.Fatal("expected error for non-object bundle")
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	bundle, err := LoadBundle(filepath.Join(t.TempDir(), "questions.json"))
	if err != nil {
		t.Fatalf("missing bundle should not error: %v", err)
	}
	if len(bundle) != 0 {
		t.Errorf("bundle = %v, want empty", bundle)
	}
}

func TestQuestionRecordProblemTypes(t *testing.T) {
	rec := QuestionRecord{Parts: []Part{
		{ProblemType: "indices"},
		{ProblemType: "indices"},
		{Text: "context"},
		{ProblemType: "calculus"},
	}}

	got := rec.ProblemTypes()
	if !reflect.DeepEqual(got, []string{"indices", "calculus"}) {
		t.Errorf("problem types = %v, want deduped in part order", got)
	}
}
