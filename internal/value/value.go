// Package value implements vinyldb's scalar value model: the five
// datatypes the engine understands, their byte encoding, and the
// ordering/arithmetic rules the expression evaluator relies on.
package value

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// DataType tags the five scalar cases vinyldb supports.
type DataType int

const (
	Bool DataType = iota
	Int64
	Float64
	Timestamp
	String
)

// String renders the datatype the way DescribeTable and error messages
// expect: upper-case, matching the SQL type keywords.
func (t DataType) String() string {
	switch t {
	case Bool:
		return "BOOL"
	case Int64:
		return "INT64"
	case Float64:
		return "FLOAT64"
	case Timestamp:
		return "TIMESTAMP"
	case String:
		return "STRING"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// Value is a tagged scalar. Only the field matching Type is meaningful.
type Value struct {
	Type DataType

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
}

func NewBool(b bool) Value      { return Value{Type: Bool, boolVal: b} }
func NewInt64(n int64) Value    { return Value{Type: Int64, intVal: n} }
func NewFloat64(f float64) Value { return Value{Type: Float64, floatVal: f} }
func NewTimestamp(t int64) Value { return Value{Type: Timestamp, intVal: t} }
func NewString(s string) Value  { return Value{Type: String, strVal: s} }

func (v Value) Bool() bool      { return v.boolVal }
func (v Value) Int64() int64    { return v.intVal }
func (v Value) Float64() float64 { return v.floatVal }
func (v Value) Timestamp() int64 { return v.intVal }
func (v Value) String() string {
	switch v.Type {
	case Bool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case Int64, Timestamp:
		return fmt.Sprintf("%d", v.intVal)
	case Float64:
		return fmt.Sprintf("%g", v.floatVal)
	case String:
		return v.strVal
	default:
		return fmt.Sprintf("<invalid value, type %v>", v.Type)
	}
}

// Datatype reports the value's tag, per spec §4.C1.
func (v Value) Datatype() DataType { return v.Type }

// EncodedSize reports the exact number of bytes Encode writes, used by
// the tuple decoder to advance without a length scan.
func (v Value) EncodedSize() int {
	switch v.Type {
	case Bool:
		return 1
	case Int64, Float64, Timestamp:
		return 8
	case String:
		return 8 + len(v.strVal)
	default:
		panic(fmt.Sprintf("vinyldb: EncodedSize of invalid value type %v", v.Type))
	}
}

// Encode writes the value's fixed-width little-endian byte layout:
// 1 byte for booleans, 8 bytes for int64/float64/timestamp, and an
// 8-byte length prefix followed by the UTF-8 payload for strings.
//
// Host-endian portability is not required by this format (spec §9); we
// pick little-endian unconditionally for determinism across builds.
func (v Value) Encode() []byte {
	buf := make([]byte, v.EncodedSize())
	switch v.Type {
	case Bool:
		if v.boolVal {
			buf[0] = 1
		}
	case Int64, Timestamp:
		binary.LittleEndian.PutUint64(buf, uint64(v.intVal))
	case Float64:
		binary.LittleEndian.PutUint64(buf, floatBits(v.floatVal))
	case String:
		binary.LittleEndian.PutUint64(buf[:8], uint64(len(v.strVal)))
		copy(buf[8:], v.strVal)
	default:
		panic(fmt.Sprintf("vinyldb: Encode of invalid value type %v", v.Type))
	}
	return buf
}

// Decode is the inverse of Encode for the given type. It reads exactly
// EncodedSize bytes; a short buffer is a programmer error (spec §4.C1),
// not a recoverable error, since callers always know the type up front
// and storage never truncates a value it wrote itself.
func Decode(buf []byte, ty DataType) Value {
	switch ty {
	case Bool:
		return NewBool(buf[0] != 0)
	case Int64:
		return NewInt64(int64(binary.LittleEndian.Uint64(buf[:8])))
	case Timestamp:
		return NewTimestamp(int64(binary.LittleEndian.Uint64(buf[:8])))
	case Float64:
		return NewFloat64(floatFromBits(binary.LittleEndian.Uint64(buf[:8])))
	case String:
		n := binary.LittleEndian.Uint64(buf[:8])
		return NewString(string(buf[8 : 8+n]))
	default:
		panic(fmt.Sprintf("vinyldb: Decode of invalid datatype %v", ty))
	}
}

// Compare orders two values of the same datatype: numeric order for
// numbers and timestamps, false < true for booleans, lexicographic byte
// order for strings. Comparing across cases is a programmer error — the
// expression evaluator screens types before this is ever called.
func Compare(a, b Value) int {
	if a.Type != b.Type {
		panic(fmt.Sprintf("vinyldb: Compare across datatypes %v and %v", a.Type, b.Type))
	}
	switch a.Type {
	case Bool:
		if a.boolVal == b.boolVal {
			return 0
		}
		if !a.boolVal {
			return -1
		}
		return 1
	case Int64, Timestamp:
		switch {
		case a.intVal < b.intVal:
			return -1
		case a.intVal > b.intVal:
			return 1
		default:
			return 0
		}
	case Float64:
		switch {
		case a.floatVal < b.floatVal:
			return -1
		case a.floatVal > b.floatVal:
			return 1
		default:
			return 0
		}
	case String:
		switch {
		case a.strVal < b.strVal:
			return -1
		case a.strVal > b.strVal:
			return 1
		default:
			return 0
		}
	default:
		panic(fmt.Sprintf("vinyldb: Compare of invalid datatype %v", a.Type))
	}
}

// ErrNotNumeric is returned by Add/Sub when given a non-numeric or
// mismatched-type operand pair; callers in internal/expr translate this
// into a typing error before it would ever reach here in practice, since
// typing runs ahead of evaluation (spec §4.C4).
var ErrNotNumeric = errors.New("vinyldb: arithmetic requires two operands of the same numeric datatype")

// Add implements the numeric '+' operator: defined for (Int64, Int64)
// and (Float64, Float64) only.
func Add(a, b Value) (Value, error) {
	if a.Type != b.Type {
		return Value{}, errors.Wrapf(ErrNotNumeric, "%v + %v", a.Type, b.Type)
	}
	switch a.Type {
	case Int64:
		return NewInt64(a.intVal + b.intVal), nil
	case Float64:
		return NewFloat64(a.floatVal + b.floatVal), nil
	default:
		return Value{}, errors.Wrapf(ErrNotNumeric, "%v + %v", a.Type, b.Type)
	}
}

// Sub implements the numeric '-' operator, same domain as Add.
func Sub(a, b Value) (Value, error) {
	if a.Type != b.Type {
		return Value{}, errors.Wrapf(ErrNotNumeric, "%v - %v", a.Type, b.Type)
	}
	switch a.Type {
	case Int64:
		return NewInt64(a.intVal - b.intVal), nil
	case Float64:
		return NewFloat64(a.floatVal - b.floatVal), nil
	default:
		return Value{}, errors.Wrapf(ErrNotNumeric, "%v - %v", a.Type, b.Type)
	}
}
