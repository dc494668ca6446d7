package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleApps() []Application {
	return []Application{
		{ID: 1, Name: "Ember Notes", Description: "Minimal note taking", Rating: 8.5, Price: "Free", Tags: []string{"free", "productivity"}},
		{ID: 2, Name: "PixelForge", Description: "Sprite editor for game devs", Rating: 9, Price: "$4.99", Tags: []string{"premium", "graphics"}},
		{ID: 3, Name: "FreeFlow", Description: "Diagramming in the terminal", Rating: 6, Price: "$0.00", Tags: []string{"tools"}},
		{ID: 4, Name: "Cinder", Description: "A free log viewer", Rating: 7, Price: "Free", Tags: []string{"free", "tools"}},
	}
}

func TestFilter_TagMatch(t *testing.T) {
	t.Parallel()
	got := Filter(sampleApps(), "tools")

	want := []int64{3, 4}
	if len(got) != len(want) {
		t.Fatalf("Filter(tools) returned %d apps, want %d", len(got), len(want))
	}
	for i, app := range got {
		if app.ID != want[i] {
			t.Errorf("Filter(tools)[%d] = %q (id %d), want id %d", i, app.Name, app.ID, want[i])
		}
	}
}

func TestFilter_NameSubstringAlsoMatches(t *testing.T) {
	t.Parallel()
	// "free" matches the free tag AND the name "FreeFlow".
	got := Filter(sampleApps(), "free")

	ids := make([]int64, 0, len(got))
	for _, app := range got {
		ids = append(ids, app.ID)
	}
	want := []int64{1, 3, 4}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Filter(free) ids mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	t.Parallel()
	upper := Filter(sampleApps(), "TOOLS")
	lower := Filter(sampleApps(), "tools")
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("Filter case sensitivity mismatch (-lower +upper):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()
	once := Filter(sampleApps(), "free")
	twice := Filter(once, "free")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Filter is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilter_NoMatch(t *testing.T) {
	t.Parallel()
	if got := Filter(sampleApps(), "nonexistent"); len(got) != 0 {
		t.Errorf("Filter(nonexistent) returned %d apps, want 0", len(got))
	}
}

func TestSearch_MatchesAllFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"by name", "pixel", []int64{2}},
		{"by description", "game devs", []int64{2}},
		{"by tag substring", "graph", []int64{2}},
		{"multi word", "note taking", []int64{1}},
		{"case insensitive", "CINDER", []int64{4}},
		{"no match", "spreadsheet", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(sampleApps(), tt.query)
			var ids []int64
			for _, app := range got {
				ids = append(ids, app.ID)
			}
			if diff := cmp.Diff(tt.want, ids); diff != "" {
				t.Errorf("Search(%q) ids mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFind_FirstSubstringMatch(t *testing.T) {
	t.Parallel()
	app, ok := Find(sampleApps(), "flow")
	if !ok {
		t.Fatal("Find(flow) returned no match")
	}
	if app.Name != "FreeFlow" {
		t.Errorf("Find(flow) = %q, want FreeFlow", app.Name)
	}

	if _, ok := Find(sampleApps(), "missingapp"); ok {
		t.Error("Find(missingapp) matched, want no match")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	s := Summarize(sampleApps(), []string{"productivity", "graphics", "tools"})

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.Categories != 3 {
		t.Errorf("Categories = %d, want 3", s.Categories)
	}
	if s.Free != 2 {
		t.Errorf("Free = %d, want 2", s.Free)
	}
	if s.Premium != 1 {
		t.Errorf("Premium = %d, want 1", s.Premium)
	}
	want := (8.5 + 9 + 6 + 7) / 4
	if s.AvgRating != want {
		t.Errorf("AvgRating = %v, want %v", s.AvgRating, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()
	s := Summarize(nil, nil)
	if s.Total != 0 || s.Categories != 0 || s.Free != 0 || s.Premium != 0 {
		t.Errorf("empty Summarize counts = %+v, want all zero", s)
	}
	if s.AvgRating != 0 {
		t.Errorf("empty AvgRating = %v, want 0", s.AvgRating)
	}
}
