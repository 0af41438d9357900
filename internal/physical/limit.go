package physical

import (
	"io"

	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
)

// Limit skips Offset rows (if set) then takes at most Limit rows (if
// set) from its child, in order.
type Limit struct {
	Offset *int64
	Limit  *int64
	Input  Operator
}

func (l Limit) Child() Operator        { return l.Input }
func (l Limit) Name() string           { return "LimitExec" }
func (l Limit) Schema() catalog.Schema { return l.Input.Schema() }

func (l Limit) Execute(ctx *ExecContext) (RowIter, error) {
	childIter, err := l.Input.Execute(ctx)
	if err != nil {
		return nil, err
	}
	it := &limitIter{child: childIter}
	if l.Offset != nil {
		it.remainingOffset = *l.Offset
	}
	if l.Limit != nil {
		n := *l.Limit
		it.remainingLimit = &n
	}
	return it, nil
}

type limitIter struct {
	child           RowIter
	remainingOffset int64
	remainingLimit  *int64
}

func (it *limitIter) Next(ctx *ExecContext) (tuple.Tuple, error) {
	for it.remainingOffset > 0 {
		if _, err := it.child.Next(ctx); err != nil {
			return nil, err
		}
		it.remainingOffset--
	}
	if it.remainingLimit != nil {
		if *it.remainingLimit <= 0 {
			return nil, io.EOF
		}
		*it.remainingLimit--
	}
	return it.child.Next(ctx)
}
