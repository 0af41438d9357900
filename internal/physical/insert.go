package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
	"vinyldb/internal/vinylerr"
)

// Insert writes rows into an existing table's storage sub-tree, keyed
// by the encoded primary-key column. Output schema is empty.
type Insert struct {
	Table string
	PK    int
	Rows  []tuple.Tuple
}

func (Insert) Child() Operator        { return nil }
func (Insert) Name() string           { return "InsertExec" }
func (Insert) Schema() catalog.Schema { s, _ := catalog.NewSchema(nil); return s }

func (op Insert) Execute(ctx *ExecContext) (RowIter, error) {
	sub, err := ctx.Storage.Sub(op.Table)
	if err != nil {
		return nil, err
	}

	for _, row := range op.Rows {
		key := row[op.PK].Encode()
		displaced, err := sub.Insert(key, row.Encode())
		if err != nil {
			return nil, err
		}
		// The planner performs no dedup; a duplicate primary key is a
		// fatal execute-time error in this model, never a silent
		// overwrite (spec §9's open question, resolved that way here).
		if displaced {
			return nil, vinylerr.ErrStorage.New("duplicate primary key in table " + op.Table)
		}
	}

	return &sliceIter{}, nil
}
