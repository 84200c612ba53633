package storage

// Cursor is a positional iterator over a leaf's cells. It is the engine's
// only way of reading rows back out in key order.
//
// Unlike the cursor this engine is modeled on, Advance follows a leaf's
// next-leaf pointer once it runs off the end of the current page, instead
// of stopping at the page boundary. Rows are split across many leaves as
// soon as the tree grows past a single page, so a cursor that didn't
// chase next_leaf would only ever return the first leaf's rows.
type Cursor struct {
	tree *Tree

	PageNum uint32
	CellNum uint32

	// EndOfTable is true once the cursor has advanced past the last row.
	EndOfTable bool
}

// TableStart returns a cursor positioned at the first row in key order.
func TableStart(t *Tree) (*Cursor, error) {
	cursor, err := t.Find(0)
	if err != nil {
		return nil, err
	}

	node, err := t.pager.GetPage(cursor.PageNum)
	if err != nil {
		return nil, err
	}
	cursor.EndOfTable = leafNumCells(node) == 0
	return cursor, nil
}

// Value returns the row at the cursor's current position.
func (c *Cursor) Value() (Row, error) {
	node, err := c.tree.pager.GetPage(c.PageNum)
	if err != nil {
		return Row{}, err
	}
	return deserializeRow(leafValue(node, c.CellNum)), nil
}

// Advance moves the cursor to the next row in key order, crossing into
// the sibling leaf via next_leaf when the current leaf is exhausted.
func (c *Cursor) Advance() error {
	node, err := c.tree.pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}

	c.CellNum++
	if c.CellNum < leafNumCells(node) {
		return nil
	}

	nextLeaf := leafNextLeaf(node)
	if nextLeaf == 0 {
		c.EndOfTable = true
		return nil
	}

	c.PageNum = nextLeaf
	c.CellNum = 0

	nextNode, err := c.tree.pager.GetPage(nextLeaf)
	if err != nil {
		return err
	}
	c.EndOfTable = leafNumCells(nextNode) == 0
	return nil
}
