// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scratch provides bucketed sync.Pool instances of slices for
// short-lived per-call buffers. Buffers are organized by size class to
// minimize waste.
package scratch

import "sync"

// Size classes, in elements.
const (
	Size256 = 256
	Size1K  = 1024
	Size4K  = 4096
	Size16K = 16384
	Size64K = 65536
)

var sizes = [...]int{Size256, Size1K, Size4K, Size16K, Size64K}

// bucketIndex returns the pool index for n elements, or -1 when n is larger
// than the largest size class.
func bucketIndex(n int) int {
	for i, sz := range sizes {
		if n <= sz {
			return i
		}
	}
	return -1
}

// Pool hands out []T buffers. The zero value is ready to use.
type Pool[T any] struct {
	buckets [len(sizes)]sync.Pool
}

// Get returns a slice of length n. Its contents are unspecified.
// The caller should call Put when done.
func (p *Pool[T]) Get(n int) []T {
	idx := bucketIndex(n)
	if idx < 0 {
		return make([]T, n)
	}
	if v := p.buckets[idx].Get(); v != nil {
		b := *v.(*[]T)
		return b[:n]
	}
	return make([]T, n, sizes[idx])
}

// Put returns b to the pool. Slices not obtained from Get with a pooled
// size class are dropped.
func (p *Pool[T]) Put(b []T) {
	c := cap(b)
	idx := bucketIndex(c)
	if idx < 0 || sizes[idx] != c {
		return
	}
	b = b[:c]
	p.buckets[idx].Put(&b)
}
