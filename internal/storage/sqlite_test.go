package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ended := time.UnixMilli(1_700_000_000_000)

	in := []Rally{
		{SessionID: "a", Number: 1, Hits: 3, WallBounces: 1, Duration: 2500 * time.Millisecond, PeakSpeed: 289.4, Scorer: 1, ScorerScore: 1, EndedAt: ended},
		{SessionID: "a", Number: 2, Hits: 0, Duration: 1200 * time.Millisecond, PeakSpeed: 250, Scorer: 0, ScorerScore: 1, EndedAt: ended},
		{SessionID: "b", Number: 1, Hits: 7, Duration: 9 * time.Second, PeakSpeed: 351.8, Scorer: 0, ScorerScore: 1, EndedAt: ended},
	}
	for _, r := range in {
		if _, err := store.SaveRally(r); err != nil {
			t.Fatalf("SaveRally() failed: %v", err)
		}
	}

	got, err := store.Rallies("a")
	if err != nil {
		t.Fatalf("Rallies() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rallies for session a, got %d", len(got))
	}

	first := got[0]
	if first.ID == 0 {
		t.Error("ID should be populated")
	}
	first.ID = 0
	if first != in[0] {
		t.Errorf("rally round trip mismatch:\n got  %+v\n want %+v", first, in[0])
	}
	if got[1].Number != 2 {
		t.Errorf("rallies should be ordered by number, got %d second", got[1].Number)
	}

	other, err := store.Rallies("b")
	if err != nil {
		t.Fatalf("Rallies() failed: %v", err)
	}
	if len(other) != 1 || other[0].Hits != 7 {
		t.Errorf("session b rallies = %+v", other)
	}
}

func TestStoreDuplicateRallyNumber(t *testing.T) {
	store := openTestStore(t)

	r := Rally{SessionID: "a", Number: 1, Scorer: 0, ScorerScore: 1}
	if _, err := store.SaveRally(r); err != nil {
		t.Fatalf("SaveRally() failed: %v", err)
	}
	if _, err := store.SaveRally(r); err == nil {
		t.Error("saving the same rally number twice should fail")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for i, r := range []Rally{
		{Hits: 2, PeakSpeed: 260, Scorer: 1},
		{Hits: 5, PeakSpeed: 310, Scorer: 0},
		{Hits: 1, PeakSpeed: 255, Scorer: 1},
	} {
		r.SessionID = "s"
		r.Number = i + 1
		if _, err := store.SaveRally(r); err != nil {
			t.Fatalf("SaveRally() failed: %v", err)
		}
	}

	stats, err := store.Stats("s")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rallies != 3 {
		t.Errorf("Rallies = %d, expected 3", stats.Rallies)
	}
	if stats.Points != [2]int{1, 2} {
		t.Errorf("Points = %v, expected [1 2]", stats.Points)
	}
	if stats.MostHits != 5 {
		t.Errorf("MostHits = %d, expected 5", stats.MostHits)
	}
	if stats.PeakSpeed != 310 {
		t.Errorf("PeakSpeed = %f, expected 310", stats.PeakSpeed)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if *stats != (SessionStats{}) {
		t.Errorf("expected zero stats, got %+v", *stats)
	}
}

func TestStoreClearSession(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"keep", "drop", "drop"} {
		rallies, _ := store.Rallies(id)
		r := Rally{SessionID: id, Number: len(rallies) + 1, Scorer: 0, ScorerScore: 1}
		if _, err := store.SaveRally(r); err != nil {
			t.Fatalf("SaveRally() failed: %v", err)
		}
	}

	if err := store.ClearSession("drop"); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}

	dropped, _ := store.Rallies("drop")
	if len(dropped) != 0 {
		t.Errorf("cleared session still has %d rallies", len(dropped))
	}
	kept, _ := store.Rallies("keep")
	if len(kept) != 1 {
		t.Errorf("other session lost its rallies: %d left", len(kept))
	}

	sessions, err := store.Sessions()
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0] != "keep" {
		t.Errorf("Sessions() = %v, expected [keep]", sessions)
	}
}

func TestStoreIsolatedPerOpen(t *testing.T) {
	s1 := openTestStore(t)
	s2 := openTestStore(t)

	if _, err := s1.SaveRally(Rally{SessionID: "x", Number: 1}); err != nil {
		t.Fatalf("SaveRally() failed: %v", err)
	}

	got, err := s2.Rallies("x")
	if err != nil {
		t.Fatalf("Rallies() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("separate stores should not share rows, got %d", len(got))
	}
}
