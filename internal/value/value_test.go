package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinyldb/internal/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	cases := []value.Value{
		value.NewBool(true),
		value.NewBool(false),
		value.NewInt64(-42),
		value.NewInt64(0),
		value.NewFloat64(3.14159),
		value.NewTimestamp(1_700_000_000),
		value.NewString(""),
		value.NewString("hello, vinyldb"),
	}

	for _, v := range cases {
		encoded := v.Encode()
		require.Len(encoded, v.EncodedSize())
		decoded := value.Decode(encoded, v.Type)
		require.Equal(v, decoded, "round trip for %v", v)
	}
}

func TestEncodedSizeMatchesEncodeLength(t *testing.T) {
	require := require.New(t)

	v := value.NewString("abcdef")
	require.Equal(8+6, v.EncodedSize())
	require.Len(v.Encode(), v.EncodedSize())
}

func TestCompareWithinCase(t *testing.T) {
	require := require.New(t)

	require.Equal(-1, value.Compare(value.NewBool(false), value.NewBool(true)))
	require.Equal(0, value.Compare(value.NewInt64(5), value.NewInt64(5)))
	require.Equal(1, value.Compare(value.NewInt64(6), value.NewInt64(5)))
	require.Equal(-1, value.Compare(value.NewString("a"), value.NewString("b")))
}

func TestCompareAcrossCasesPanics(t *testing.T) {
	require.Panics(t, func() {
		value.Compare(value.NewInt64(1), value.NewString("1"))
	})
}

func TestAddSubNumericOnly(t *testing.T) {
	require := require.New(t)

	sum, err := value.Add(value.NewInt64(2), value.NewInt64(3))
	require.NoError(err)
	require.Equal(value.NewInt64(5), sum)

	diff, err := value.Sub(value.NewFloat64(5.5), value.NewFloat64(1.5))
	require.NoError(err)
	require.Equal(value.NewFloat64(4.0), diff)

	_, err = value.Add(value.NewBool(true), value.NewBool(true))
	require.Error(err)

	_, err = value.Add(value.NewInt64(1), value.NewFloat64(1))
	require.Error(err)
}

func TestDecodeSequentialAdvance(t *testing.T) {
	require := require.New(t)

	a := value.NewInt64(7)
	b := value.NewString("xyz")
	buf := append(a.Encode(), b.Encode()...)

	gotA := value.Decode(buf, value.Int64)
	buf = buf[gotA.EncodedSize():]
	gotB := value.Decode(buf, value.String)

	require.Equal(a, gotA)
	require.Equal(b, gotB)
}
