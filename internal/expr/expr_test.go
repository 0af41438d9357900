package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinyldb/internal/catalog"
	"vinyldb/internal/expr"
	"vinyldb/internal/tuple"
	"vinyldb/internal/value"
)

func testSchema(t *testing.T) catalog.Schema {
	t.Helper()
	s, err := catalog.NewSchema([]catalog.Column{
		{Name: "id", Type: value.Int64},
		{Name: "ok", Type: value.Bool},
	})
	require.NoError(t, err)
	return s
}

func TestColumnTypeAndEval(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)
	row := tuple.Tuple{value.NewInt64(7), value.NewBool(true)}

	col := expr.Column{Name: "id"}
	ty, err := col.Type(schema)
	require.NoError(err)
	require.Equal(value.Int64, ty)

	got, err := col.Eval(schema, row)
	require.NoError(err)
	require.Equal(value.NewInt64(7), got)
}

func TestBinaryComparisonYieldsBool(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)
	row := tuple.Tuple{value.NewInt64(7), value.NewBool(true)}

	e := expr.Binary{Left: expr.Column{Name: "id"}, Op: expr.Gt, Right: expr.Literal{Value: value.NewInt64(0)}}
	ty, err := e.Type(schema)
	require.NoError(err)
	require.Equal(value.Bool, ty)

	got, err := e.Eval(schema, row)
	require.NoError(err)
	require.Equal(value.NewBool(true), got)
}

func TestBinaryMismatchedTypesIsTypingError(t *testing.T) {
	schema := testSchema(t)
	e := expr.Binary{Left: expr.Column{Name: "id"}, Op: expr.Gt, Right: expr.Literal{Value: value.NewString("x")}}
	_, err := e.Type(schema)
	require.Error(t, err)
}

func TestAndOrRequireBoolOperands(t *testing.T) {
	schema := testSchema(t)
	e := expr.Binary{Left: expr.Column{Name: "id"}, Op: expr.And, Right: expr.Literal{Value: value.NewInt64(1)}}
	_, err := e.Type(schema)
	require.Error(t, err)
}

func TestPlusMinusOnBoolsIsUnsupported(t *testing.T) {
	schema := testSchema(t)
	e := expr.Binary{Left: expr.Column{Name: "ok"}, Op: expr.Plus, Right: expr.Literal{Value: value.NewBool(true)}}
	_, err := e.Type(schema)
	require.Error(t, err)
}

func TestIsConstant(t *testing.T) {
	require := require.New(t)

	lit := expr.Binary{Left: expr.Literal{Value: value.NewInt64(1)}, Op: expr.Plus, Right: expr.Literal{Value: value.NewInt64(2)}}
	require.True(lit.IsConstant())

	withCol := expr.Binary{Left: expr.Column{Name: "id"}, Op: expr.Plus, Right: expr.Literal{Value: value.NewInt64(2)}}
	require.False(withCol.IsConstant())
}

func TestEvalConstant(t *testing.T) {
	require := require.New(t)

	sum := expr.Binary{Left: expr.Literal{Value: value.NewInt64(1)}, Op: expr.Plus, Right: expr.Literal{Value: value.NewInt64(2)}}
	got, err := expr.EvalConstant(sum)
	require.NoError(err)
	require.Equal(value.NewInt64(3), got)

	_, err = expr.EvalConstant(expr.Column{Name: "id"})
	require.Error(err)
}

func TestBinaryStringPrettyPrint(t *testing.T) {
	e := expr.Binary{Left: expr.Column{Name: "id"}, Op: expr.Plus, Right: expr.Literal{Value: value.NewInt64(2)}}
	require.Equal(t, "id + 2", e.String())
}
