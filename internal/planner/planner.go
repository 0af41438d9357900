// Package planner lowers a parsed SQL statement into a logical plan
// (spec §4.C6), dispatching on the statement's AST shape from
// internal/sqlparse and checking names and types against the catalog
// along the way.
package planner

import (
	"strings"

	pgquery "github.com/pganalyze/pg_query_go/v5"

	"vinyldb/internal/catalog"
	"vinyldb/internal/logicalplan"
	"vinyldb/internal/sqlparse"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
	"vinyldb/internal/vinylerr"
)

// Plan is the single entry point: statement_to_logical_plan from
// spec §4.C6. sql is the original statement text, needed verbatim for
// CreateTable's persisted SQL field.
func Plan(cat *catalog.Catalog, sql string) (logicalplan.Node, error) {
	if ident, ok := sqlparse.IsExplainTable(sql); ok {
		return logicalplan.DescribeTable{Name: ident}, nil
	}

	stmt, err := sqlparse.ParseOne(sql)
	if err != nil {
		return nil, err
	}
	return planStmtNode(cat, stmt.GetStmt(), sql)
}

func planStmtNode(cat *catalog.Catalog, n *pgquery.Node, sql string) (logicalplan.Node, error) {
	switch s := n.GetNode().(type) {
	case *pgquery.Node_CreateStmt:
		return planCreateTable(cat, s.CreateStmt, sql)
	case *pgquery.Node_InsertStmt:
		return planInsert(cat, s.InsertStmt)
	case *pgquery.Node_SelectStmt:
		return planSelect(cat, s.SelectStmt)
	case *pgquery.Node_VariableShowStmt:
		if strings.EqualFold(s.VariableShowStmt.GetName(), "tables") {
			return logicalplan.ShowTables{}, nil
		}
		return nil, vinylerr.ErrUnimplemented.New("SHOW " + s.VariableShowStmt.GetName())
	case *pgquery.Node_ExplainStmt:
		inner, err := planStmtNode(cat, s.ExplainStmt.GetQuery(), "")
		if err != nil {
			return nil, err
		}
		return logicalplan.Explain{Plan: inner}, nil
	default:
		return nil, vinylerr.ErrUnimplemented.New("unsupported SQL statement")
	}
}

// ParseCreateTable reparses a stored CREATE TABLE statement back into a
// table descriptor, used only by catalog.Bootstrap (spec §9's "bootstrap
// loop": the one place the parser runs outside the normal request path).
func ParseCreateTable(sql string) (catalog.Table, error) {
	stmt, err := sqlparse.ParseOne(sql)
	if err != nil {
		return catalog.Table{}, err
	}
	cs := stmt.GetStmt().GetCreateStmt()
	if cs == nil {
		return catalog.Table{}, vinylerr.ErrUnimplemented.New("expected CREATE TABLE while rebuilding the catalog")
	}
	name, schema, err := createTableNameAndSchema(cs)
	if err != nil {
		return catalog.Table{}, err
	}
	return catalog.Table{Name: name, Schema: schema, PK: 0, SQL: sql}, nil
}

func createTableNameAndSchema(cs *pgquery.CreateStmt) (string, catalog.Schema, error) {
	name, err := tableName(cs.GetRelation())
	if err != nil {
		return "", catalog.Schema{}, err
	}

	var columns []catalog.Column
	for _, elt := range cs.GetTableElts() {
		colDef := elt.GetColumnDef()
		if colDef == nil {
			return "", catalog.Schema{}, vinylerr.ErrUnimplemented.New("non-column table element in CREATE TABLE")
		}
		dt, err := convertDataType(colDef.GetTypeName())
		if err != nil {
			return "", catalog.Schema{}, err
		}
		columns = append(columns, catalog.Column{Name: colDef.GetColname(), Type: dt})
	}

	schema, err := catalog.NewSchema(columns)
	if err != nil {
		return "", catalog.Schema{}, err
	}
	return name, schema, nil
}

func planCreateTable(cat *catalog.Catalog, cs *pgquery.CreateStmt, sql string) (logicalplan.Node, error) {
	name, schema, err := createTableNameAndSchema(cs)
	if err != nil {
		return nil, err
	}
	if _, err := cat.Get(name); err == nil {
		return nil, vinylerr.ErrTableExists.New(name)
	}
	return logicalplan.CreateTable{Name: name, Schema: schema, PK: 0, SQL: sql}, nil
}

func planInsert(cat *catalog.Catalog, ins *pgquery.InsertStmt) (logicalplan.Node, error) {
	name, err := tableName(ins.GetRelation())
	if err != nil {
		return nil, err
	}
	table, err := cat.Get(name)
	if err != nil {
		return nil, err
	}

	sel := ins.GetSelectStmt().GetSelectStmt()
	if sel == nil || len(sel.GetValuesLists()) == 0 {
		return nil, vinylerr.ErrUnimplemented.New("INSERT requires a VALUES source")
	}

	nCols := table.Schema.NumColumns()
	rows := make([]tuple.Tuple, 0, len(sel.GetValuesLists()))
	for _, rowNode := range sel.GetValuesLists() {
		items := rowNode.GetList().GetItems()
		if len(items) != nCols {
			return nil, vinylerr.ErrMismatchedArity.New(name, nCols, len(items))
		}
		row := make(tuple.Tuple, nCols)
		for i, item := range items {
			col := table.Schema.ColumnAt(i)
			v, err := valueForColumn(item, col.Type, name, i)
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return logicalplan.Insert{Table: name, Rows: rows}, nil
}

func valueForColumn(n *pgquery.Node, want value.DataType, table string, idx int) (value.Value, error) {
	aconst := n.GetAConst()
	if aconst == nil {
		return value.Value{}, vinylerr.ErrUnimplemented.New("INSERT values must be literals")
	}
	v, err := constToValue(aconst)
	if err != nil {
		return value.Value{}, err
	}
	if v.Datatype() != want {
		return value.Value{}, vinylerr.ErrMismatchedType.New(idx, table, want, v.Datatype())
	}
	return v, nil
}
