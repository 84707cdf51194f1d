// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonw implements a single-pass, append-only writer that encodes
// primitive values directly as JSON text in a growable pooled buffer.
//
// A Writer produces exactly one in-memory JSON text per use.
// The caller issues write calls in the order of the document being
// produced and finishes with [Writer.String], which extracts the text
// and releases the buffer. For example, the JSON value:
//
//	{"id":1024,"tags":["a","b"]}
//
// can be composed with the following calls:
//
//	w := jsonw.NewWriter(64)
//	w.WriteObjectStart()    // {
//	w.WriteName("id")       // "id":
//	w.WriteUint64(1024)     // 1024
//	w.WriteMore()           // ,
//	w.WriteName("tags")     // "tags":
//	w.WriteArrayStart()     // [
//	w.WriteString("a")      // "a"
//	w.WriteMore()           // ,
//	w.WriteString("b")      // "b"
//	w.WriteArrayEnd()       // ]
//	w.WriteObjectEnd()      // }
//	s := w.String()
//
// Nesting of objects and arrays is the caller's responsibility,
// expressed purely as a sequence of structural token writes;
// the Writer keeps no document state and performs no validation.
package jsonw

import (
	"github.com/textenc/jsonw/internal/bufpools"
)

// A Writer appends JSON text to an in-memory byte buffer,
// growing it on demand from a buffer pool.
//
// The zero Writer is not usable; construct one with [NewWriter],
// [NewWriterPool], or [NewWriterBuffer]. A Writer must not be used
// concurrently, and must not be used after [Writer.String] or
// [Writer.Release]: disposal resets the writer precisely so that stale
// use fails fast instead of silently corrupting a buffer that the pool
// may have re-issued to another owner.
type Writer struct {
	// buf holds the written JSON text.
	// len(buf) is the write cursor and cap(buf) the current capacity;
	// buf[:len(buf)] is always valid, already-emitted JSON text.
	buf []byte

	// pool supplies replacement buffers during growth.
	// It is nil once the writer has been disposed.
	pool bufpools.Pool

	// owned reports whether buf came from pool and must be returned
	// to it. A caller-supplied buffer is grown past but never released.
	owned bool
}

// NewWriter returns a Writer backed by a pooled buffer with capacity
// for at least n bytes. It panics if n is not positive.
func NewWriter(n int) *Writer {
	return NewWriterPool(n, bufpools.Shared)
}

// NewWriterPool is like [NewWriter] but acquires buffers from pool
// instead of the shared size-class pool. Tests may pass an instrumented
// pool to observe buffer acquisition and release.
func NewWriterPool(n int, pool bufpools.Pool) *Writer {
	if n <= 0 {
		panic("jsonw: non-positive initial capacity")
	}
	w := getWriter()
	w.buf = pool.Get(n)
	w.pool = pool
	w.owned = true
	return w
}

// NewWriterBuffer returns a Writer that starts writing into buf,
// which remains owned by the caller. The Writer replaces buf with a
// pooled buffer if it outgrows it, but never releases buf to the pool.
func NewWriterBuffer(buf []byte) *Writer {
	return NewWriterBufferPool(buf, bufpools.Shared)
}

// NewWriterBufferPool is like [NewWriterBuffer] but acquires any
// replacement buffers from pool instead of the shared size-class pool.
func NewWriterBufferPool(buf []byte, pool bufpools.Pool) *Writer {
	w := getWriter()
	w.buf = buf[:0]
	w.pool = pool
	w.owned = false
	return w
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// ensure guarantees that at least n more bytes can be appended to buf
// without reallocation. Every write operation calls it with the
// worst-case size of the pending write before touching buf, so the
// appends that follow can never grow the buffer behind the pool's back.
func (w *Writer) ensure(n int) {
	if cap(w.buf)-len(w.buf) < n {
		w.grow(n)
	}
}

// grow replaces buf with a pooled buffer of capacity at least
// max(len(buf)+n, 2*cap(buf)), copies the written region forward, and
// releases the superseded buffer if the writer owned it. Doubling keeps
// total copying amortized linear in the final output size.
func (w *Writer) grow(n int) {
	need := len(w.buf) + n
	if min := 2 * cap(w.buf); need < min {
		need = min
	}
	b := w.pool.Get(need)
	b = append(b, w.buf...)
	if w.owned {
		w.pool.Put(w.buf)
	}
	w.buf = b
	w.owned = true
}

// String copies the written region into an immutable string,
// then releases the writer as if by [Writer.Release].
func (w *Writer) String() string {
	s := string(w.buf)
	w.Release()
	return s
}

// Release returns the writer's buffer to its pool without extracting
// the written text, for abandoned or error paths. Releasing an already
// released writer is a no-op; any write after Release violates the
// usage contract and fails fast on the writer's reset state.
func (w *Writer) Release() {
	if w.pool == nil {
		return
	}
	if w.owned {
		w.pool.Put(w.buf)
	}
	w.buf = nil
	w.pool = nil
	w.owned = false
	putWriter(w)
}
