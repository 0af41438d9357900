// Package tuple implements the fixed-order row codec shared by the
// planner, the physical operators, and storage: a Tuple has no header
// of its own, so a schema is required to decode one back from bytes.
package tuple

import "vinyldb/internal/value"

// Tuple is an ordered sequence of scalars, implicitly associated with a
// schema that is never stored alongside it.
type Tuple []value.Value

// Encode concatenates each column's encoding in order.
func (t Tuple) Encode() []byte {
	size := 0
	for _, v := range t {
		size += v.EncodedSize()
	}
	buf := make([]byte, 0, size)
	for _, v := range t {
		buf = append(buf, v.Encode()...)
	}
	return buf
}

// Datatypes reports the datatype tag for each column of the tuple, in
// order.
func (t Tuple) Datatypes() []value.DataType {
	out := make([]value.DataType, len(t))
	for i, v := range t {
		out[i] = v.Datatype()
	}
	return out
}

// Decode reconstructs a Tuple from bytes given the column datatypes in
// schema order, advancing through buf by each column's encoded size.
func Decode(buf []byte, datatypes []value.DataType) Tuple {
	out := make(Tuple, len(datatypes))
	offset := 0
	for i, ty := range datatypes {
		v := value.Decode(buf[offset:], ty)
		out[i] = v
		offset += v.EncodedSize()
	}
	return out
}
