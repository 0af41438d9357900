package planner

import (
	"strconv"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"vinyldb/internal/expr"
	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// tableName extracts a single-part table name from a range var,
// rejecting schema-qualified (multi-level) names as unimplemented, per
// spec §4.C6.
func tableName(rv *pgquery.RangeVar) (string, error) {
	if rv == nil {
		return "", vinylerr.ErrUnimplemented.New("missing table name")
	}
	if rv.GetSchemaname() != "" {
		return "", vinylerr.ErrUnimplemented.New("multi-level table name " + rv.GetSchemaname() + "." + rv.GetRelname())
	}
	return rv.GetRelname(), nil
}

// constToValue converts a parsed A_Const literal into a scalar. Only
// the four literal forms reachable through this SQL surface are
// handled: integer, float, string, and boolean; TIMESTAMP has no SQL
// literal syntax in this version (spec §9).
func constToValue(c *pgquery.A_Const) (value.Value, error) {
	if c == nil {
		return value.Value{}, vinylerr.ErrUnimplemented.New("expected a literal")
	}
	switch v := c.GetVal().(type) {
	case *pgquery.A_Const_Ival:
		return value.NewInt64(v.Ival.GetIval()), nil
	case *pgquery.A_Const_Fval:
		f, err := strconv.ParseFloat(v.Fval.GetFval(), 64)
		if err != nil {
			return value.Value{}, vinylerr.ErrConversion.New(v.Fval.GetFval(), value.Float64)
		}
		return value.NewFloat64(f), nil
	case *pgquery.A_Const_Sval:
		return value.NewString(v.Sval.GetSval()), nil
	case *pgquery.A_Const_Boolval:
		return value.NewBool(v.Boolval.GetBoolval()), nil
	default:
		return value.Value{}, vinylerr.ErrUnimplemented.New("unsupported literal")
	}
}

// exprFromNode converts a parsed scalar expression into vinyldb's
// expression tree: column references, literals, and binary operators,
// matching original_source/src/plan/mod.rs's convert_expr.
func exprFromNode(n *pgquery.Node) (expr.Expr, error) {
	switch e := n.GetNode().(type) {
	case *pgquery.Node_ColumnRef:
		fields := e.ColumnRef.GetFields()
		if len(fields) != 1 || fields[0].GetString_() == nil {
			return nil, vinylerr.ErrUnimplemented.New("qualified or wildcard column reference in expression")
		}
		return expr.Column{Name: fields[0].GetString_().GetSval()}, nil
	case *pgquery.Node_AConst:
		v, err := constToValue(e.AConst)
		if err != nil {
			return nil, err
		}
		return expr.Literal{Value: v}, nil
	case *pgquery.Node_AExpr:
		return binaryExprFromNode(e.AExpr)
	case *pgquery.Node_BoolExpr:
		return boolExprFromNode(e.BoolExpr)
	default:
		return nil, vinylerr.ErrUnimplemented.New("unsupported expression form")
	}
}

func binaryExprFromNode(a *pgquery.A_Expr) (expr.Expr, error) {
	if a.GetKind() != pgquery.A_Expr_Kind_AEXPR_OP || len(a.GetName()) != 1 {
		return nil, vinylerr.ErrUnimplemented.New("unsupported operator expression")
	}
	opName := a.GetName()[0].GetString_().GetSval()
	op, err := convertOperator(opName)
	if err != nil {
		return nil, err
	}
	left, err := exprFromNode(a.GetLexpr())
	if err != nil {
		return nil, err
	}
	right, err := exprFromNode(a.GetRexpr())
	if err != nil {
		return nil, err
	}
	return expr.Binary{Left: left, Op: op, Right: right}, nil
}

func boolExprFromNode(b *pgquery.BoolExpr) (expr.Expr, error) {
	args := b.GetArgs()
	if len(args) != 2 {
		return nil, vinylerr.ErrUnimplemented.New("boolean expression with != 2 operands")
	}
	var op expr.Operator
	switch b.GetBoolop() {
	case pgquery.BoolExprType_AND_EXPR:
		op = expr.And
	case pgquery.BoolExprType_OR_EXPR:
		op = expr.Or
	default:
		return nil, vinylerr.ErrUnimplemented.New("unsupported boolean operator")
	}
	left, err := exprFromNode(args[0])
	if err != nil {
		return nil, err
	}
	right, err := exprFromNode(args[1])
	if err != nil {
		return nil, err
	}
	return expr.Binary{Left: left, Op: op, Right: right}, nil
}

func convertOperator(name string) (expr.Operator, error) {
	switch name {
	case ">":
		return expr.Gt, nil
	case ">=":
		return expr.GtEq, nil
	case "<":
		return expr.Lt, nil
	case "<=":
		return expr.LtEq, nil
	case "=":
		return expr.Eq, nil
	case "!=", "<>":
		return expr.NotEq, nil
	case "+":
		return expr.Plus, nil
	case "-":
		return expr.Minus, nil
	default:
		return 0, vinylerr.ErrUnimplemented.New("operator " + name)
	}
}
