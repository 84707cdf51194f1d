// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonw

import (
	"math"

	"github.com/textenc/jsonw/internal/jsonwire"
)

// WriteNull appends the JSON null literal.
func (w *Writer) WriteNull() {
	w.ensure(len("null"))
	w.buf = append(w.buf, "null"...)
}

// WriteBool appends v as the JSON true or false literal.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.ensure(len("true"))
		w.buf = append(w.buf, "true"...)
	} else {
		w.ensure(len("false"))
		w.buf = append(w.buf, "false"...)
	}
}

// writeByte appends a single structural character.
// Even a one-byte write proves capacity first, since callers intermix
// structural tokens with arbitrary variable-length writes.
func (w *Writer) writeByte(c byte) {
	w.ensure(1)
	w.buf = append(w.buf, c)
}

// WriteObjectStart appends '{'.
func (w *Writer) WriteObjectStart() { w.writeByte('{') }

// WriteObjectEnd appends '}'.
func (w *Writer) WriteObjectEnd() { w.writeByte('}') }

// WriteArrayStart appends '['.
func (w *Writer) WriteArrayStart() { w.writeByte('[') }

// WriteArrayEnd appends ']'.
func (w *Writer) WriteArrayEnd() { w.writeByte(']') }

// WriteMore appends the ',' separating object members or array elements.
func (w *Writer) WriteMore() { w.writeByte(',') }

// WriteColon appends the ':' separating a member name from its value.
func (w *Writer) WriteColon() { w.writeByte(':') }

// WriteQuote appends a bare '"', for callers composing a string token
// out of fragments they have already escaped themselves.
func (w *Writer) WriteQuote() { w.writeByte('"') }

// WriteInt appends v as a JSON number.
func (w *Writer) WriteInt(v int) { w.WriteInt64(int64(v)) }

// WriteInt8 appends v as a JSON number.
func (w *Writer) WriteInt8(v int8) { w.WriteInt64(int64(v)) }

// WriteInt16 appends v as a JSON number.
func (w *Writer) WriteInt16(v int16) { w.WriteInt64(int64(v)) }

// WriteInt32 appends v as a JSON number.
func (w *Writer) WriteInt32(v int32) { w.WriteInt64(int64(v)) }

// WriteInt64 appends v as a JSON number.
func (w *Writer) WriteInt64(v int64) {
	if v >= 0 {
		w.WriteUint64(uint64(v))
		return
	}
	if v == math.MinInt64 {
		// Negating MinInt64 overflows; write the literal digits.
		w.ensure(len(jsonwire.MinInt64Digits))
		w.buf = append(w.buf, jsonwire.MinInt64Digits...)
		return
	}
	u := uint64(-v)
	w.ensure(len("-") + jsonwire.DecimalLen(u))
	w.buf = append(w.buf, '-')
	w.buf = jsonwire.AppendDecimal(w.buf, u)
}

// WriteUint appends v as a JSON number.
func (w *Writer) WriteUint(v uint) { w.WriteUint64(uint64(v)) }

// WriteUint8 appends v as a JSON number.
func (w *Writer) WriteUint8(v uint8) { w.WriteUint64(uint64(v)) }

// WriteUint16 appends v as a JSON number.
func (w *Writer) WriteUint16(v uint16) { w.WriteUint64(uint64(v)) }

// WriteUint32 appends v as a JSON number.
func (w *Writer) WriteUint32(v uint32) { w.WriteUint64(uint64(v)) }

// WriteUint64 appends v as a JSON number.
func (w *Writer) WriteUint64(v uint64) {
	w.ensure(jsonwire.DecimalLen(v))
	w.buf = jsonwire.AppendDecimal(w.buf, v)
}

// WriteFloat64 appends v as a JSON number in the shortest decimal form
// that parses back to the same value. Non-finite values are appended as
// the quoted strings "NaN", "Infinity", and "-Infinity".
func (w *Writer) WriteFloat64(v float64) {
	w.ensure(jsonwire.MaxFloat64Len)
	w.buf = jsonwire.AppendFloat(w.buf, v, 64)
}

// WriteFloat32 is the 32-bit equivalent of [Writer.WriteFloat64].
func (w *Writer) WriteFloat32(v float32) {
	w.ensure(jsonwire.MaxFloat32Len)
	w.buf = jsonwire.AppendFloat(w.buf, float64(v), 32)
}
