package cache

import (
	"os"
	"path/filepath"
	"testing"
)

type snapshot struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

func TestPutGetRoundTrip(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	in := snapshot{Names: []string{"Milk", "Eggs"}, Count: 2}
	if err := c.Put("grocery-store", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out snapshot
	ok, err := c.Get("grocery-store", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot to exist")
	}
	if len(out.Names) != 2 || out.Names[0] != "Milk" || out.Count != 2 {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestGetMissingSnapshot(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	var out snapshot
	ok, err := c.Get("meal-store", &out)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Error("missing snapshot reported as present")
	}
}

func TestPutOverwritesWhole(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	if err := c.Put("meal-store", snapshot{Names: []string{"a", "b", "c"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put("meal-store", snapshot{Names: []string{"z"}}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	var out snapshot
	if _, err := c.Get("meal-store", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out.Names) != 1 || out.Names[0] != "z" {
		t.Errorf("snapshot = %+v, want latest write only", out)
	}
}

func TestSnapshotsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if err := c.Put("meal-store", snapshot{Count: 7}); err != nil {
		t.Fatalf("put: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen cache: %v", err)
	}
	var out snapshot
	ok, err := reopened.Get("meal-store", &out)
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if out.Count != 7 {
		t.Errorf("count = %d, want 7", out.Count)
	}

	// Snapshots live as one file per store name.
	if _, err := os.Stat(filepath.Join(dir, "meal-store.json")); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
}
