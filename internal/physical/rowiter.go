package physical

import (
	"io"

	"vinyldb/internal/tuple"
)

// sliceIter is a forward cursor over a pre-built, already-materialized
// slice of tuples. It backs every operator whose output is fully known
// before Execute returns: CreateTable/Insert (empty), ShowTables,
// DescribeTable, OneRowPlaceholder, Explain.
type sliceIter struct {
	rows []tuple.Tuple
	pos  int
}

func (it *sliceIter) Next(*ExecContext) (tuple.Tuple, error) {
	if it.pos >= len(it.rows) {
		return nil, io.EOF
	}
	row := it.rows[it.pos]
	it.pos++
	return row, nil
}
