package classify

import (
	"context"
	"errors"
	"testing"
)

// fakeClassifier returns canned verdicts or a canned error.
type fakeClassifier struct {
	verdicts []bool
	err      error
	calls    int
}

func (f *fakeClassifier) ClassifyBulk(_ context.Context, descriptions []string) ([]bool, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.verdicts, nil
}

func TestRelevance_EmptyInput(t *testing.T) {
	got := Relevance(context.Background(), &fakeClassifier{}, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestRelevance_PassesThroughVerdicts(t *testing.T) {
	f := &fakeClassifier{verdicts: []bool{true, false, true}}
	got := Relevance(context.Background(), f, []string{"a", "b", "c"})
	if len(got) != 3 || !got[0] || got[1] || !got[2] {
		t.Fatalf("unexpected verdicts: %v", got)
	}
	if f.calls != 1 {
		t.Fatalf("expected exactly one bulk call, got %d", f.calls)
	}
}

func TestRelevance_NilClassifierPassesEverything(t *testing.T) {
	got := Relevance(context.Background(), nil, []string{"a", "b"})
	if len(got) != 2 || !got[0] || !got[1] {
		t.Fatalf("expected all-true for disabled classifier, got %v", got)
	}
}

func TestRelevance_FailurePassesEverything(t *testing.T) {
	f := &fakeClassifier{err: errors.New("quota exceeded")}
	got := Relevance(context.Background(), f, []string{"a", "b", "c"})
	if len(got) != 3 {
		t.Fatalf("expected result for every index, got %d", len(got))
	}
	for i, v := range got {
		if !v {
			t.Errorf("index %d: expected true in degraded mode", i)
		}
	}
}

func TestRelevance_WrongLengthPassesEverything(t *testing.T) {
	f := &fakeClassifier{verdicts: []bool{true}}
	got := Relevance(context.Background(), f, []string{"a", "b"})
	if len(got) != 2 || !got[0] || !got[1] {
		t.Fatalf("expected all-true for length mismatch, got %v", got)
	}
}

func TestTruncateBatch(t *testing.T) {
	// "aaaa" encodes to 6 chars; brackets cost 2, each comma 1.
	descriptions := []string{"aaaa", "bbbb", "cccc"}

	tests := []struct {
		name   string
		budget int
		want   int
	}{
		{"everything fits", 1000, 3},
		{"exact fit", 2 + 6 + 7 + 7, 3},
		{"one short of exact", 2 + 6 + 7 + 6, 2},
		{"only first fits", 2 + 6, 1},
		{"nothing fits", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateBatch(descriptions, tt.budget); got != tt.want {
				t.Errorf("truncateBatch(budget=%d) = %d, want %d", tt.budget, got, tt.want)
			}
		})
	}
}

func TestTruncateBatch_Empty(t *testing.T) {
	if got := truncateBatch(nil, 100); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[true, false]`, `[true, false]`},
		{"```json\n[true, false]\n```", `[true, false]`},
		{"```\n[true]\n```", `[true]`},
		{"  [false]  ", `[false]`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
