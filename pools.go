// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonw

import "sync"

// TODO(https://go.dev/issue/47657): Use sync.PoolOf.

// writerPool recycles Writer structs so that callers creating one
// writer per document do not allocate the struct each time.
// Backing buffers are pooled separately by the bufpools package;
// a Writer enters this pool only after disposal, holding none.
var writerPool = &sync.Pool{New: func() any { return new(Writer) }}

func getWriter() *Writer {
	return writerPool.Get().(*Writer)
}

func putWriter(w *Writer) {
	writerPool.Put(w)
}
