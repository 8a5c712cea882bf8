package posts

import (
	"testing"
)

func TestListReturnsFivePosts(t *testing.T) {
	got := List()
	if len(got) != 5 {
		t.Fatalf("got %d posts, want 5", len(got))
	}
}

func TestListIDsAreUniqueAndSequential(t *testing.T) {
	seen := make(map[int]bool)
	for i, p := range List() {
		if p.ID != i+1 {
			t.Errorf("post at index %d has id %d, want %d", i, p.ID, i+1)
		}
		if seen[p.ID] {
			t.Errorf("duplicate post id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestListOrderIsStableAcrossCalls(t *testing.T) {
	first := List()
	second := List()
	if len(first) != len(second) {
		t.Fatalf("call lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("post at index %d differs between calls", i)
		}
	}
}

func TestListFieldsPopulated(t *testing.T) {
	for _, p := range List() {
		if p.Title == "" || p.Content == "" || p.Author == "" {
			t.Errorf("post %d has empty fields: %+v", p.ID, p)
		}
	}
}

func TestListKnownTitles(t *testing.T) {
	want := []string{
		"First Post",
		"Learning FastAPI",
		"Python Tips",
		"Web Development",
		"API Design Best Practices",
	}
	got := List()
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("post at index %d has title %q, want %q", i, got[i].Title, title)
		}
	}
}
