package physical

import (
	"vinyldb/internal/catalog"
	"vinyldb/internal/expr"
	"vinyldb/internal/tuple"
)

// Projection streams tuples from its child, evaluating Exprs against
// the child's schema to produce each output row. OutputSchema is fixed
// at construction time by the planner.
type Projection struct {
	Exprs        []expr.Expr
	OutputSchema catalog.Schema
	Input        Operator
}

func (p Projection) Child() Operator        { return p.Input }
func (p Projection) Name() string           { return "ProjectionExec" }
func (p Projection) Schema() catalog.Schema { return p.OutputSchema }

func (p Projection) Execute(ctx *ExecContext) (RowIter, error) {
	childIter, err := p.Input.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &projectionIter{exprs: p.Exprs, schema: p.Input.Schema(), child: childIter}, nil
}

type projectionIter struct {
	exprs  []expr.Expr
	schema catalog.Schema
	child  RowIter
}

func (it *projectionIter) Next(ctx *ExecContext) (tuple.Tuple, error) {
	row, err := it.child.Next(ctx)
	if err != nil {
		return nil, err
	}
	out := make(tuple.Tuple, len(it.exprs))
	for i, e := range it.exprs {
		v, err := e.Eval(it.schema, row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
