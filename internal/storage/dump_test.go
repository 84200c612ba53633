package storage

import "testing"

func TestDumpTreeSingleLeaf(t *testing.T) {
	tree, _, cleanup := setupTestTree(t)
	defer cleanup()

	if err := tree.Insert(mustRow(t, 1, "u", "e")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	dump, err := tree.DumpTree()
	if err != nil {
		t.Fatalf("DumpTree failed: %v", err)
	}
	want := "- leaf (size 1)\n  - 1\n"
	if dump != want {
		t.Errorf("DumpTree mismatch:\ngot:  %q\nwant: %q", dump, want)
	}
}

func TestDumpTreeAfterSplit(t *testing.T) {
	tree, _, cleanup := setupTestTree(t)
	defer cleanup()

	for id := uint32(1); id <= 14; id++ {
		if err := tree.Insert(mustRow(t, id, "u", "e")); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}

	dump, err := tree.DumpTree()
	if err != nil {
		t.Fatalf("DumpTree failed: %v", err)
	}
	want := "- internal (size 1)\n  - leaf (size 7)\n" +
		"    - 1\n    - 2\n    - 3\n    - 4\n    - 5\n    - 6\n    - 7\n" +
		"  - leaf (size 7)\n" +
		"    - 8\n    - 9\n    - 10\n    - 11\n    - 12\n    - 13\n    - 14\n"
	if dump != want {
		t.Errorf("DumpTree mismatch after split:\ngot:\n%s\nwant:\n%s", dump, want)
	}
}

func TestDescribeConstants(t *testing.T) {
	c := Describe()
	if c.RowSize != 293 {
		t.Errorf("expected RowSize 293, got %d", c.RowSize)
	}
	if c.LeafNodeMaxCells != 13 {
		t.Errorf("expected LeafNodeMaxCells 13, got %d", c.LeafNodeMaxCells)
	}
	if c.CommonNodeHeaderSize != 6 {
		t.Errorf("expected CommonNodeHeaderSize 6, got %d", c.CommonNodeHeaderSize)
	}
	if c.LeafNodeHeaderSize != 14 {
		t.Errorf("expected LeafNodeHeaderSize 14, got %d", c.LeafNodeHeaderSize)
	}
}
