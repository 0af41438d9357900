// Package expr implements vinyldb's expression language: column
// references, literals, and binary operators, with a total typing pass
// that runs ahead of evaluation (spec §4.C4). Grounded on
// original_source/src/expr.rs, re-expressed with typed errors in place
// of Rust's panic-on-invalid-input style.
package expr

import (
	"fmt"

	"vinyldb/internal/catalog"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// Operator enumerates the ten binary operators the language supports.
type Operator int

const (
	Gt Operator = iota
	GtEq
	Lt
	LtEq
	Eq
	NotEq
	Plus
	Minus
	And
	Or
)

func (op Operator) String() string {
	switch op {
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Eq:
		return "="
	case NotEq:
		return "!="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

func (op Operator) isComparison() bool {
	switch op {
	case Gt, GtEq, Lt, LtEq, Eq, NotEq:
		return true
	default:
		return false
	}
}

// Expr is the sum type over column references, literals, and binary
// operations.
type Expr interface {
	// Type resolves the expression's static datatype against schema,
	// failing if column references don't resolve or operand types
	// disagree with the operator's requirements.
	Type(schema catalog.Schema) (value.DataType, error)
	// IsConstant reports whether evaluating this expression depends on
	// no tuple or schema at all.
	IsConstant() bool
	// Eval evaluates the expression against a tuple conforming to
	// schema. Callers must have already type-checked via Type.
	Eval(schema catalog.Schema, row tuple.Tuple) (value.Value, error)
	// String renders the expression the way the planner derives
	// projection column names: the column name for a Column, the
	// literal's printed form for a Literal, "<left> <op> <right>" for a
	// Binary.
	String() string
}

// Column is a reference to a named column, resolved positionally
// against a schema at type-check and evaluation time.
type Column struct {
	Name string
}

func (c Column) Type(schema catalog.Schema) (value.DataType, error) {
	return schema.DataType(c.Name)
}

func (c Column) IsConstant() bool { return false }

func (c Column) Eval(schema catalog.Schema, row tuple.Tuple) (value.Value, error) {
	i, err := schema.Index(c.Name)
	if err != nil {
		return value.Value{}, err
	}
	return row[i], nil
}

func (c Column) String() string { return c.Name }

// Literal is a constant scalar.
type Literal struct {
	Value value.Value
}

func (l Literal) Type(catalog.Schema) (value.DataType, error) {
	return l.Value.Datatype(), nil
}

func (l Literal) IsConstant() bool { return true }

func (l Literal) Eval(catalog.Schema, tuple.Tuple) (value.Value, error) {
	return l.Value, nil
}

func (l Literal) String() string { return l.Value.String() }

// Binary is a binary operation over two sub-expressions.
type Binary struct {
	Left  Expr
	Op    Operator
	Right Expr
}

func (b Binary) Type(schema catalog.Schema) (value.DataType, error) {
	leftType, err := b.Left.Type(schema)
	if err != nil {
		return 0, err
	}
	rightType, err := b.Right.Type(schema)
	if err != nil {
		return 0, err
	}
	if leftType != rightType {
		return 0, vinylerr.ErrMixedTypes.New(leftType, rightType)
	}

	switch {
	case b.Op.isComparison():
		return value.Bool, nil
	case b.Op == Plus || b.Op == Minus:
		if leftType != value.Int64 && leftType != value.Float64 {
			return 0, vinylerr.ErrUnsupported.New(b.Op, leftType)
		}
		return leftType, nil
	case b.Op == And || b.Op == Or:
		if leftType != value.Bool {
			return 0, vinylerr.ErrUnsupported.New(b.Op, leftType)
		}
		return value.Bool, nil
	default:
		return 0, vinylerr.ErrUnsupported.New(b.Op, leftType)
	}
}

func (b Binary) IsConstant() bool {
	return b.Left.IsConstant() && b.Right.IsConstant()
}

func (b Binary) Eval(schema catalog.Schema, row tuple.Tuple) (value.Value, error) {
	left, err := b.Left.Eval(schema, row)
	if err != nil {
		return value.Value{}, err
	}
	right, err := b.Right.Eval(schema, row)
	if err != nil {
		return value.Value{}, err
	}
	return applyOperator(b.Op, left, right)
}

func (b Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op.String(), b.Right.String())
}

func applyOperator(op Operator, left, right value.Value) (value.Value, error) {
	if left.Datatype() != right.Datatype() {
		return value.Value{}, vinylerr.ErrMixedTypes.New(left.Datatype(), right.Datatype())
	}

	switch op {
	case Gt:
		return value.NewBool(value.Compare(left, right) > 0), nil
	case GtEq:
		return value.NewBool(value.Compare(left, right) >= 0), nil
	case Lt:
		return value.NewBool(value.Compare(left, right) < 0), nil
	case LtEq:
		return value.NewBool(value.Compare(left, right) <= 0), nil
	case Eq:
		return value.NewBool(value.Compare(left, right) == 0), nil
	case NotEq:
		return value.NewBool(value.Compare(left, right) != 0), nil
	case Plus:
		return value.Add(left, right)
	case Minus:
		return value.Sub(left, right)
	case And:
		if left.Datatype() != value.Bool {
			return value.Value{}, vinylerr.ErrUnsupported.New(op, left.Datatype())
		}
		return value.NewBool(left.Bool() && right.Bool()), nil
	case Or:
		if left.Datatype() != value.Bool {
			return value.Value{}, vinylerr.ErrUnsupported.New(op, left.Datatype())
		}
		return value.NewBool(left.Bool() || right.Bool()), nil
	default:
		return value.Value{}, vinylerr.ErrUnsupported.New(op, left.Datatype())
	}
}

// EvalConstant evaluates an expression that does not read any tuple or
// schema, failing with ErrNotConstant if it contains a column reference.
func EvalConstant(e Expr) (value.Value, error) {
	if !e.IsConstant() {
		return value.Value{}, vinylerr.ErrNotConstant.New(e.String())
	}
	return e.Eval(catalog.Schema{}, nil)
}
