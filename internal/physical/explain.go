package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
)

// Explain walks its child chain via Child(), emitting one row per
// operator name, root-first — a plain stable label per row, not the
// original Rust implementation's ASCII-art box drawing (see
// DESIGN.md's C7 note on testable scenario 6).
type Explain struct {
	Plan Operator
}

func (Explain) Child() Operator { return nil }
func (Explain) Name() string    { return "ExplainExec" }
func (Explain) Schema() catalog.Schema {
	s, _ := catalog.NewSchema([]catalog.Column{{Name: "Physical Plan", Type: value.String}})
	return s
}

func (op Explain) Execute(*ExecContext) (RowIter, error) {
	rows := []tuple.Tuple{{value.NewString(op.Name())}}
	for p := op.Plan; p != nil; p = p.Child() {
		rows = append(rows, tuple.Tuple{value.NewString(p.Name())})
	}
	return &sliceIter{rows: rows}, nil
}
