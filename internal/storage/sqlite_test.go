package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(seed int64, score int) sim.Run {
	p := sim.DefaultPhysics()
	start := sim.NewState(p)
	start.Running = true
	return sim.Run{
		Seed:     seed,
		Start:    start,
		Impulses: []int{3, 11, 19},
		Ticks:    120 + score,
		Score:    score,
		Physics:  p,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/flappy.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "flappy.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)
	want := sampleRun(77, 4)

	id, err := store.SaveRun("local", want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got.ID != id || got.Source != "local" || got.Score != 4 || got.Ticks != want.Ticks {
		t.Errorf("unexpected entry: %+v", got)
	}
	if !reflect.DeepEqual(got.Run, want) {
		t.Errorf("recording round trip:\n got %+v\nwant %+v", got.Run, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Run(42); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Run() error = %v, expected ErrRunNotFound", err)
	}
	if err := store.DeleteRun(42); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("DeleteRun() error = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i, src := range []string{"local", "window", "ssh:alice"} {
		if _, err := store.SaveRun(src, sampleRun(int64(i), i)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Source != "ssh:alice" || runs[1].Source != "window" {
		t.Errorf("unexpected order: %s, %s", runs[0].Source, runs[1].Source)
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected default limit to return all 3 runs, got %d", len(all))
	}
}

func TestStoreDeleteAndClear(t *testing.T) {
	store := openTestStore(t)

	id1, _ := store.SaveRun("local", sampleRun(1, 1))
	store.SaveRun("local", sampleRun(2, 2))
	store.SaveRun("local", sampleRun(3, 3))

	if err := store.DeleteRun(id1); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if n, _ := store.CountRuns(); n != 2 {
		t.Errorf("Expected 2 runs after delete, got %d", n)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.CountRuns(); n != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", n)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store1.SaveRun("local", sampleRun(9, 12))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	e, err := store2.Run(id)
	if err != nil {
		t.Fatalf("Run() after reopen failed: %v", err)
	}
	if e.Score != 12 {
		t.Errorf("Expected persisted score 12, got %d", e.Score)
	}
}

func TestStoreJournaledRunReplays(t *testing.T) {
	store := openTestStore(t)

	// Record a real run: no input, the bird drops onto the initial obstacle
	g := sim.NewWithPhysics(sim.DefaultPhysics())
	g.Reset(testRuntime())
	g.Step(jumpFrame())
	for i := 0; i < 1000; i++ {
		if res := g.Step(emptyFrame()); res.State.GameOver {
			break
		}
	}
	r, ok := g.LastRun()
	if !ok {
		t.Fatal("no run recorded")
	}

	id, err := store.SaveRun("local", r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	e, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if _, err := sim.Replay(e.Run); err != nil {
		t.Errorf("journaled run does not replay: %v", err)
	}
}
