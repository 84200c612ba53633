package storage

import (
	"fmt"
	"strings"
)

// Rows returns every row in the tree in key order. It is a thin
// convenience wrapper around Cursor for callers, such as the REPL's
// select command and the HTTP inspector, that just want the whole table.
func (t *Tree) Rows() ([]Row, error) {
	cursor, err := TableStart(t)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for !cursor.EndOfTable {
		row, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if err := cursor.Advance(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// NodeInfo summarizes one page of the tree for display purposes.
type NodeInfo struct {
	PageNum  uint32
	Depth    int
	Type     NodeType
	NumCells uint32 // leaf cell count, or internal key count
	Keys     []uint32
}

// Walk visits every node of the tree in depth-first, parent-before-child
// order, mirroring the indentation the original print_tree helper uses.
func (t *Tree) Walk() ([]NodeInfo, error) {
	var infos []NodeInfo
	if err := t.walk(t.rootPageNum, 0, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (t *Tree) walk(pageNum uint32, depth int, infos *[]NodeInfo) error {
	node, err := t.pager.GetPage(pageNum)
	if err != nil {
		return err
	}

	if nodeType(node) == NodeLeaf {
		numCells := leafNumCells(node)
		keys := make([]uint32, numCells)
		for i := uint32(0); i < numCells; i++ {
			keys[i] = leafKey(node, i)
		}
		*infos = append(*infos, NodeInfo{
			PageNum: pageNum, Depth: depth, Type: NodeLeaf,
			NumCells: numCells, Keys: keys,
		})
		return nil
	}

	numKeys := internalNumKeys(node)
	keys := make([]uint32, numKeys)
	for i := uint32(0); i < numKeys; i++ {
		keys[i] = internalKey(node, i)
	}
	*infos = append(*infos, NodeInfo{
		PageNum: pageNum, Depth: depth, Type: NodeInternal,
		NumCells: numKeys, Keys: keys,
	})

	for i := uint32(0); i <= numKeys; i++ {
		childNum, err := internalChild(node, i)
		if err != nil {
			return err
		}
		if err := t.walk(childNum, depth+1, infos); err != nil {
			return err
		}
	}
	return nil
}

// DumpTree renders the result of Walk as indented text, one node per
// line, in the shape the REPL's .btree command and the HTTP inspector's
// /tree endpoint both print.
func (t *Tree) DumpTree() (string, error) {
	infos, err := t.Walk()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, info := range infos {
		indent := strings.Repeat("  ", info.Depth)
		switch info.Type {
		case NodeLeaf:
			fmt.Fprintf(&b, "%s- leaf (size %d)\n", indent, info.NumCells)
			for _, k := range info.Keys {
				fmt.Fprintf(&b, "%s  - %d\n", indent, k)
			}
		case NodeInternal:
			fmt.Fprintf(&b, "%s- internal (size %d)\n", indent, info.NumCells)
		}
	}
	return b.String(), nil
}

// Constants describes the node layout constants, for display by the
// REPL's .constants command and the HTTP inspector's /constants endpoint.
type Constants struct {
	RowSize                int
	CommonNodeHeaderSize   int
	LeafNodeHeaderSize     int
	LeafNodeCellSize       int
	LeafNodeSpaceForCells  int
	LeafNodeMaxCells       int
	InternalNodeHeaderSize int
	InternalNodeCellSize   int
	InternalNodeMaxCells   int
}

// Describe returns the current layout constants.
func Describe() Constants {
	return Constants{
		RowSize:                RowSize,
		CommonNodeHeaderSize:   commonHeaderSize,
		LeafNodeHeaderSize:     leafHeaderSize,
		LeafNodeCellSize:       leafCellSize,
		LeafNodeSpaceForCells:  PageSize - leafHeaderSize,
		LeafNodeMaxCells:       LeafNodeMaxCells,
		InternalNodeHeaderSize: internalHeaderSize,
		InternalNodeCellSize:   internalCellSize,
		InternalNodeMaxCells:   InternalNodeMaxCells,
	}
}
