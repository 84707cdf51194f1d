// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bufpools implements pooling of byte buffers in power-of-two
// size classes and defines the Pool interface through which a writer
// acquires and releases its backing storage.
package bufpools

import (
	"math/bits"
	"sync"
)

const (
	// minPooledShift is the minimum shift size of buffer to pool.
	minPooledShift = 9 // 512B
	numPools       = bits.UintSize - minPooledShift
)

// Pool supplies backing storage for writers.
// Get returns an empty buffer with capacity for at least n bytes;
// Put relinquishes ownership of a buffer for later reuse.
// Implementations must be safe for concurrent use: many writers share
// one pool even though each buffer has a single owner at any instant.
type Pool interface {
	Get(n int) []byte
	Put(p []byte)
}

// Shared is the process-wide size-class pool used by default.
var Shared Pool = sharedPool{}

type sharedPool struct{}

func (sharedPool) Get(n int) []byte { return Get(n) }
func (sharedPool) Put(p []byte)     { Put(p) }

// TODO(https://go.dev/issue/47657): Use sync.PoolOf.
// You cannot put a []byte into a pool without it allocating every time
// just to store the slice header. Thus, we have a second pool
// just to cache the use of slice headers.
var sliceHeaderPool = sync.Pool{New: func() any { return new([]byte) }}

// bufferPools is a list of buffer pools.
// Each pool manages buffers of capacity within [1<<shift : 2<<shift),
// where shift is (minPooledShift+index), so that any buffer taken from
// a class is at least as large as any request routed to that class.
var bufferPools [numPools]sync.Pool

// Get acquires an empty buffer with enough capacity to hold n bytes.
// The unused buffer content is not guaranteed to be zeroed.
func Get(n int) []byte {
	if n < 1<<minPooledShift {
		n = 1 << minPooledShift
	}
	shift := bits.Len(uint(n - 1))
	if p, _ := bufferPools[shift-minPooledShift].Get().(*[]byte); p != nil {
		b := (*p)[:0]
		*p = nil
		sliceHeaderPool.Put(p)
		return b
	}
	return make([]byte, 0, 1<<shift)
}

// Put releases a buffer back to the pools.
// The slice need not be originally retrieved by [Get],
// but the caller must relinquish ownership of the slice.
func Put(b []byte) {
	if cap(b) < 1<<minPooledShift {
		return
	}
	// Classify by the largest power of two not exceeding the capacity,
	// so a later Get from the same class never receives an undersized
	// buffer even when b did not originate from Get.
	shift := bits.Len(uint(cap(b))) - 1
	p := sliceHeaderPool.Get().(*[]byte)
	*p = b
	bufferPools[shift-minPooledShift].Put(p)
}
