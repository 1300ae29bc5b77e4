// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scratch

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPut_ExactSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
		{"16K", 16384},
		{"64K", 65536},
		{"500", 500},
		{"3000", 3000},
		{"oversize", 100000},
	}
	var p Pool[uint8]
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := p.Get(tt.n)
			assert.Len(t, b, tt.n)
			p.Put(b)
		})
	}
}

func TestGet_CapacityIsSizeClass(t *testing.T) {
	tests := []struct {
		n      int
		minCap int
	}{
		{1, 256},
		{256, 256},
		{257, 1024},
		{2048, 4096},
		{65536, 65536},
	}
	var p Pool[uint16]
	for _, tt := range tests {
		b := p.Get(tt.n)
		assert.GreaterOrEqual(t, cap(b), tt.minCap, "Get(%d)", tt.n)
		p.Put(b)
	}
}

func TestPut_ForeignSliceIgnored(t *testing.T) {
	var p Pool[uint8]
	// Capacity between classes: must not be pooled.
	p.Put(make([]uint8, 300))
	b := p.Get(300)
	require.Len(t, b, 300)
	assert.Equal(t, 1024, cap(b))
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 0, bucketIndex(0))
	assert.Equal(t, 0, bucketIndex(Size256))
	assert.Equal(t, 1, bucketIndex(Size256+1))
	assert.Equal(t, len(sizes)-1, bucketIndex(Size64K))
	assert.Equal(t, -1, bucketIndex(Size64K+1))
}

func TestConcurrentAccess(t *testing.T) {
	var p Pool[uint16]
	var wg sync.WaitGroup
	for g := 0; g < runtime.GOMAXPROCS(0)*2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				n := 1 + (g*131+i*17)%5000
				b := p.Get(n)
				if len(b) != n {
					t.Errorf("Get(%d): len = %d", n, len(b))
					return
				}
				for j := range b {
					b[j] = uint16(g)
				}
				for j := range b {
					if b[j] != uint16(g) {
						t.Errorf("buffer shared between goroutines")
						return
					}
				}
				p.Put(b)
			}
		}(g)
	}
	wg.Wait()
}
