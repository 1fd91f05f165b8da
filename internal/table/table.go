// Package table implements the in-memory record table the pipeline operates
// on: an ordered collection of named columns of equal length. A nil cell is a
// null. Cell values are whatever the loader produced for them (string,
// float64, int, time.Time, ...).
package table

import "fmt"

// Table is a column-oriented table. The zero value is not usable; call New.
type Table struct {
	names []string
	cols  map[string][]any
	rows  int
}

// New returns an empty table: zero rows, zero columns.
func New() *Table {
	return &Table{cols: make(map[string][]any)}
}

// NumRows reports the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols reports the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// Columns returns the column names in order. The slice is a copy.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the cells of the named column, or nil if it does not exist.
// The returned slice is shared with the table; callers must not modify it.
func (t *Table) Column(name string) []any { return t.cols[name] }

// Value returns the cell at (name, row), or nil when the column does not
// exist or row is out of range.
func (t *Table) Value(name string, row int) any {
	cells, ok := t.cols[name]
	if !ok || row < 0 || row >= len(cells) {
		return nil
	}
	return cells[row]
}

// SetColumn adds or replaces a column. The first column added to an empty
// table fixes the row count; later columns must match it.
func (t *Table) SetColumn(name string, cells []any) error {
	if len(t.names) > 0 && len(cells) != t.rows {
		return fmt.Errorf("column %s: %d cells, table has %d rows", name, len(cells), t.rows)
	}
	if _, ok := t.cols[name]; !ok {
		t.names = append(t.names, name)
	}
	t.rows = len(cells)
	t.cols[name] = cells
	return nil
}

// Rename gives the column named from the name to, keeping its position. If
// another column already holds the target name it is dropped first, so
// exactly one column survives a naming collision.
func (t *Table) Rename(from, to string) {
	if from == to {
		return
	}
	cells, ok := t.cols[from]
	if !ok {
		return
	}
	if _, exists := t.cols[to]; exists {
		t.drop(to)
	}
	delete(t.cols, from)
	t.cols[to] = cells
	for i, n := range t.names {
		if n == from {
			t.names[i] = to
			break
		}
	}
}

func (t *Table) drop(name string) {
	delete(t.cols, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i], t.names[i+1:]...)
			break
		}
	}
}

// Filter returns a new table holding the rows for which keep reports true.
// The receiver is never mutated.
func (t *Table) Filter(keep func(row int) bool) *Table {
	idx := make([]int, 0, t.rows)
	for i := 0; i < t.rows; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	out := New()
	out.names = make([]string, len(t.names))
	copy(out.names, t.names)
	out.rows = len(idx)
	for _, name := range t.names {
		src := t.cols[name]
		cells := make([]any, len(idx))
		for j, i := range idx {
			cells[j] = src[i]
		}
		out.cols[name] = cells
	}
	return out
}

// Head returns a copy of the first n rows (all rows when n exceeds the row
// count).
func (t *Table) Head(n int) *Table {
	return t.Filter(func(row int) bool { return row < n })
}
