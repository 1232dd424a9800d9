package katsuyou

// Analysis is one reading of an inflected surface form.
type Analysis struct {
	// Entry is the dictionary verb the form inflects.
	Entry *Entry
	// Form is the inflection that produces the surface form.
	Form Form
	// Result is the full inflected verb.
	Result Result
}

// Table holds the full paradigm of a verb.
type Table struct {
	// Entry is the verb for which this table was computed.
	Entry *Entry
	// Cells lists the inflected forms in paradigm order. Forms the verb
	// has no register for (e.g. negative Stem) are omitted.
	Cells []Cell
}

// Cell is one inflected form of a Table.
type Cell struct {
	Form   Form
	Result Result
}

// Cell returns the cell for f, if the table has one.
func (t *Table) Cell(f Form) (Cell, bool) {
	for _, c := range t.Cells {
		if c.Form == f {
			return c, true
		}
	}
	return Cell{}, false
}
