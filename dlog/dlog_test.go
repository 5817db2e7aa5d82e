package dlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shanksdlog/ecpke/group"
)

func testParams() TableParams {
	return TableParams{L: 12, T: 0} // range [0, 4096), 64 baby steps, 64 giant steps
}

func TestSolveFindsKnownValues(t *testing.T) {
	g := group.New()
	params := testParams()
	table, err := BuildTable(g, g.Generator(), params)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	for _, x := range []uint64{0, 1, 2, 63, 64, 65, 4000, 4095} {
		target := g.GMul(group.ScalarFromUint64(x))
		got, err := table.Solve(target)
		if err != nil {
			t.Fatalf("Solve(%d): %v", x, err)
		}
		if got != x {
			t.Fatalf("Solve(%d) = %d", x, got)
		}
	}
}

func TestSolveOutOfRange(t *testing.T) {
	g := group.New()
	table, err := BuildTable(g, g.Generator(), testParams())
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	target := g.GMul(group.ScalarFromUint64(4096))
	if _, err := table.Solve(target); err != ErrNotFoundInRange {
		t.Fatalf("expected ErrNotFoundInRange, got %v", err)
	}
}

func TestParallelSolveMatchesSolve(t *testing.T) {
	g := group.New()
	table, err := BuildTable(g, g.Generator(), testParams())
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	for _, x := range []uint64{0, 17, 1000, 4095} {
		target := g.GMul(group.ScalarFromUint64(x))
		got, err := table.ParallelSolve(context.Background(), target)
		if err != nil {
			t.Fatalf("ParallelSolve(%d): %v", x, err)
		}
		if got != x {
			t.Fatalf("ParallelSolve(%d) = %d", x, got)
		}
	}
}

func TestSaveLoadTableRoundTrip(t *testing.T) {
	g := group.New()
	params := testParams()
	table, err := BuildTable(g, g.Generator(), params)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dlog.table")
	if err := table.SaveTable(path); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	loaded, err := LoadTable(g, g.Generator(), path, params)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	target := g.GMul(group.ScalarFromUint64(321))
	got, err := loaded.Solve(target)
	if err != nil {
		t.Fatalf("Solve on loaded table: %v", err)
	}
	if got != 321 {
		t.Fatalf("Solve on loaded table = %d, want 321", got)
	}
}

func TestLoadTableRejectsMismatch(t *testing.T) {
	g := group.New()
	params := testParams()
	table, err := BuildTable(g, g.Generator(), params)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dlog.table")
	if err := table.SaveTable(path); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	wrong := TableParams{L: 14, T: 0}
	if _, err := LoadTable(g, g.Generator(), path, wrong); err != ErrTableMismatch {
		t.Fatalf("expected ErrTableMismatch, got %v", err)
	}
}

func TestLoadTableRejectsGarbageFile(t *testing.T) {
	g := group.New()
	path := filepath.Join(t.TempDir(), "garbage.table")
	if err := os.WriteFile(path, []byte("not a table"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadTable(g, g.Generator(), path, testParams()); err != ErrIOFailed {
		t.Fatalf("expected ErrIOFailed, got %v", err)
	}
}
