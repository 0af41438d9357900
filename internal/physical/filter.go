package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/expr"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// Filter streams tuples from its child, keeping those for which
// Predicate evaluates to boolean true.
type Filter struct {
	Predicate expr.Expr
	Input     Operator
}

func (f Filter) Child() Operator        { return f.Input }
func (f Filter) Name() string           { return "FilterExec" }
func (f Filter) Schema() catalog.Schema { return f.Input.Schema() }

func (f Filter) Execute(ctx *ExecContext) (RowIter, error) {
	childIter, err := f.Input.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &filterIter{predicate: f.Predicate, schema: f.Input.Schema(), child: childIter}, nil
}

type filterIter struct {
	predicate expr.Expr
	schema    catalog.Schema
	child     RowIter
}

func (it *filterIter) Next(ctx *ExecContext) (tuple.Tuple, error) {
	for {
		row, err := it.child.Next(ctx)
		if err != nil {
			return nil, err
		}
		result, err := it.predicate.Eval(it.schema, row)
		if err != nil {
			return nil, err
		}
		if result.Datatype() != value.Bool {
			return nil, vinylerr.ErrMixedTypes.New(result.Datatype(), value.Bool)
		}
		if result.Bool() {
			return row, nil
		}
	}
}
