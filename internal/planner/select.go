package planner

import (
	pgquery "github.com/pganalyze/pg_query_go/v5"

	"vinyldb/internal/catalog"
	"vinyldb/internal/expr"
	"vinyldb/internal/logicalplan"
	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// planSelect handles both shapes spec §4.C6 describes: no FROM (base is
// OneRowPlaceholder, everything must be constant) and exactly one FROM
// table (base is TableScan). More than one FROM table is unimplemented.
func planSelect(cat *catalog.Catalog, sel *pgquery.SelectStmt) (logicalplan.Node, error) {
	from := sel.GetFromClause()
	switch len(from) {
	case 0:
		return planSelectNoFrom(sel)
	case 1:
		return planSelectOneFrom(cat, sel, from[0])
	default:
		return nil, vinylerr.ErrUnimplemented.New("SELECT with more than one FROM table")
	}
}

func planSelectNoFrom(sel *pgquery.SelectStmt) (logicalplan.Node, error) {
	var base logicalplan.Node = logicalplan.OneRowPlaceholder{}

	if w := sel.GetWhereClause(); w != nil {
		e, err := exprFromNode(w)
		if err != nil {
			return nil, err
		}
		if !e.IsConstant() {
			return nil, vinylerr.ErrNonConstant.New(e.String())
		}
		base = logicalplan.Filter{Predicate: e, Input: base}
	}

	base, err := applyLimitOffset(sel, base)
	if err != nil {
		return nil, err
	}

	exprs, schema, err := buildConstantProjection(sel.GetTargetList())
	if err != nil {
		return nil, err
	}
	return logicalplan.Projection{Exprs: exprs, Schema: schema, Input: base}, nil
}

func planSelectOneFrom(cat *catalog.Catalog, sel *pgquery.SelectStmt, fromNode *pgquery.Node) (logicalplan.Node, error) {
	rv := fromNode.GetRangeVar()
	if rv == nil {
		return nil, vinylerr.ErrUnimplemented.New("FROM clause is not a plain table reference (joins/subqueries unimplemented)")
	}
	name, err := tableName(rv)
	if err != nil {
		return nil, err
	}
	table, err := cat.Get(name)
	if err != nil {
		return nil, err
	}
	schema := table.Schema

	var base logicalplan.Node = logicalplan.TableScan{Name: name}

	if w := sel.GetWhereClause(); w != nil {
		e, err := exprFromNode(w)
		if err != nil {
			return nil, err
		}
		if _, err := e.Type(schema); err != nil {
			return nil, err
		}
		base = logicalplan.Filter{Predicate: e, Input: base}
	}

	base, err = applyLimitOffset(sel, base)
	if err != nil {
		return nil, err
	}

	exprs, outSchema, skip, err := buildTableProjection(schema, sel.GetTargetList())
	if err != nil {
		return nil, err
	}
	if skip {
		return base, nil
	}
	return logicalplan.Projection{Exprs: exprs, Schema: outSchema, Input: base}, nil
}

// applyLimitOffset evaluates LIMIT/OFFSET as constants and wraps base in
// a Limit node only when at least one is present and effective — an
// offset of exactly zero is treated as absent (spec §4.C6).
func applyLimitOffset(sel *pgquery.SelectStmt, base logicalplan.Node) (logicalplan.Node, error) {
	limit, err := evalLimitOffset(sel.GetLimitCount())
	if err != nil {
		return nil, err
	}
	offset, err := evalLimitOffset(sel.GetLimitOffset())
	if err != nil {
		return nil, err
	}
	if offset != nil && *offset == 0 {
		offset = nil
	}
	if limit == nil && offset == nil {
		return base, nil
	}
	return logicalplan.Limit{Offset: offset, Limit: limit, Input: base}, nil
}

func evalLimitOffset(n *pgquery.Node) (*int64, error) {
	if n == nil {
		return nil, nil
	}
	e, err := exprFromNode(n)
	if err != nil {
		return nil, err
	}
	v, err := expr.EvalConstant(e)
	if err != nil {
		return nil, err
	}
	if v.Datatype() != value.Int64 {
		return nil, vinylerr.ErrNonUintLimit.New(v.String())
	}
	n64 := v.Int64()
	if n64 < 0 {
		return nil, vinylerr.ErrNonUintLimit.New(n64)
	}
	return &n64, nil
}

// buildConstantProjection builds the projection for a FROM-less SELECT:
// every item must be UnnamedExpr or ExprWithAlias and constant; '*' is
// rejected outright since there is no schema to expand it against.
func buildConstantProjection(targets []*pgquery.Node) ([]expr.Expr, catalog.Schema, error) {
	var exprs []expr.Expr
	var columns []catalog.Column

	for _, t := range targets {
		rt := t.GetResTarget()
		if rt == nil {
			continue
		}
		val := rt.GetVal()
		if isWildcard(val) {
			return nil, catalog.Schema{}, vinylerr.ErrWildcardNoFrom.New()
		}

		e, err := exprFromNode(val)
		if err != nil {
			return nil, catalog.Schema{}, err
		}
		if !e.IsConstant() {
			return nil, catalog.Schema{}, vinylerr.ErrNonConstant.New(e.String())
		}
		ty, err := e.Type(catalog.Schema{})
		if err != nil {
			return nil, catalog.Schema{}, err
		}

		name := rt.GetName()
		if name == "" {
			name = e.String()
		}
		columns = append(columns, catalog.Column{Name: name, Type: ty})
		exprs = append(exprs, e)
	}

	schema, err := catalog.NewSchema(columns)
	if err != nil {
		return nil, catalog.Schema{}, err
	}
	return exprs, schema, nil
}

// buildTableProjection builds the projection for a single-table SELECT.
// skip is true when the projection is exactly a bare '*' with no alias
// and no other items — in that case the operator tree needs no
// Projection node at all, matching the planner's own schema.
func buildTableProjection(schema catalog.Schema, targets []*pgquery.Node) (exprs []expr.Expr, outSchema catalog.Schema, skip bool, err error) {
	if len(targets) == 1 {
		if rt := targets[0].GetResTarget(); rt != nil && rt.GetName() == "" && isWildcard(rt.GetVal()) {
			return nil, catalog.Schema{}, true, nil
		}
	}

	var columns []catalog.Column
	for _, t := range targets {
		rt := t.GetResTarget()
		if rt == nil {
			continue
		}
		val := rt.GetVal()

		if isQualifiedWildcard(val) {
			return nil, catalog.Schema{}, false, vinylerr.ErrUnimplemented.New("qualified wildcard projection")
		}
		if isWildcard(val) {
			if rt.GetName() != "" {
				return nil, catalog.Schema{}, false, vinylerr.ErrUnimplemented.New("aliased wildcard projection")
			}
			for _, c := range schema.Columns() {
				columns = append(columns, c)
				exprs = append(exprs, expr.Column{Name: c.Name})
			}
			continue
		}

		e, convErr := exprFromNode(val)
		if convErr != nil {
			return nil, catalog.Schema{}, false, convErr
		}
		ty, typeErr := e.Type(schema)
		if typeErr != nil {
			return nil, catalog.Schema{}, false, typeErr
		}

		name := rt.GetName()
		if name == "" {
			name = e.String()
		}
		columns = append(columns, catalog.Column{Name: name, Type: ty})
		exprs = append(exprs, e)
	}

	outSchema, err = catalog.NewSchema(columns)
	if err != nil {
		return nil, catalog.Schema{}, false, err
	}
	return exprs, outSchema, false, nil
}

func isWildcard(n *pgquery.Node) bool {
	cr := n.GetColumnRef()
	if cr == nil {
		return false
	}
	fields := cr.GetFields()
	return len(fields) == 1 && fields[0].GetAStar() != nil
}

func isQualifiedWildcard(n *pgquery.Node) bool {
	cr := n.GetColumnRef()
	if cr == nil {
		return false
	}
	fields := cr.GetFields()
	return len(fields) > 1 && fields[len(fields)-1].GetAStar() != nil
}
