package repository

import (
	"sort"
	"testing"
	"time"
)

func mustParseRFC3339(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("bad test instant %q: %v", s, err)
	}
	return ts
}

func TestSortableTimeFormatOrdersLexically(t *testing.T) {
	instants := []time.Time{
		mustParseRFC3339(t, "2026-03-14T09:30:00Z"),
		mustParseRFC3339(t, "2026-03-14T09:30:00.25Z"),
		mustParseRFC3339(t, "2026-03-14T09:30:00.5Z"),
		mustParseRFC3339(t, "2026-03-14T09:30:01Z"),
		mustParseRFC3339(t, "2026-03-15T00:00:00Z"),
	}

	rendered := make([]string, len(instants))
	for i, ts := range instants {
		rendered[i] = ts.UTC().Format(sortableTimeFormat)
	}
	if !sort.StringsAreSorted(rendered) {
		t.Fatalf("rendered instants out of order: %v", rendered)
	}

	for i, s := range rendered {
		back, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			t.Fatalf("rendered instant %q does not parse back: %v", s, err)
		}
		if !back.Equal(instants[i]) {
			t.Fatalf("instant changed: got %v, want %v", back, instants[i])
		}
	}
}

func TestMergeNames(t *testing.T) {
	merged := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
	if len(merged) != 2 || merged["#a"] != "a" || merged["#b"] != "b" {
		t.Fatalf("unexpected merge result: %v", merged)
	}
	if mergeNames(nil, nil) != nil {
		t.Fatal("merging two nil maps should stay nil")
	}
}
