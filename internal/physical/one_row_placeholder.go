package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
)

// OneRowPlaceholder emits exactly one empty tuple; it is the source for
// `SELECT <const-expr>` with no FROM clause.
type OneRowPlaceholder struct{}

func (OneRowPlaceholder) Child() Operator        { return nil }
func (OneRowPlaceholder) Name() string           { return "OneRowPlaceholderExec" }
func (OneRowPlaceholder) Schema() catalog.Schema { s, _ := catalog.NewSchema(nil); return s }

func (OneRowPlaceholder) Execute(*ExecContext) (RowIter, error) {
	return &sliceIter{rows: []tuple.Tuple{{}}}, nil
}
