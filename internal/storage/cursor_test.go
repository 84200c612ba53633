package storage

import "testing"

func TestTableStartOnEmptyTree(t *testing.T) {
	tree, _, cleanup := setupTestTree(t)
	defer cleanup()

	cursor, err := TableStart(tree)
	if err != nil {
		t.Fatalf("TableStart failed: %v", err)
	}
	if !cursor.EndOfTable {
		t.Error("expected EndOfTable on a freshly created tree")
	}
}

func TestCursorAdvanceAcrossLeafBoundary(t *testing.T) {
	tree, _, cleanup := setupTestTree(t)
	defer cleanup()

	for id := uint32(1); id <= 14; id++ {
		if err := tree.Insert(mustRow(t, id, "u", "e")); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}

	cursor, err := TableStart(tree)
	if err != nil {
		t.Fatalf("TableStart failed: %v", err)
	}

	var seen []uint32
	for !cursor.EndOfTable {
		row, err := cursor.Value()
		if err != nil {
			t.Fatalf("Value failed: %v", err)
		}
		seen = append(seen, row.ID)
		if err := cursor.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}

	if len(seen) != 14 {
		t.Fatalf("expected to see 14 rows crossing leaf boundaries, got %d", len(seen))
	}
	for i, id := range seen {
		if id != uint32(i+1) {
			t.Fatalf("expected ascending ids, got %v", seen)
		}
	}
}
