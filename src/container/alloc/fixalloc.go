// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fixed-size object allocator.
// 固定大小的对象分配器。

package alloc

// FixAlloc is a simple free-list allocator for fixed size objects.
// Objects are carved out of chunks of ChunkSize objects; freed objects
// go onto a free list and are handed out again before a new chunk is
// made. The chunks are owned by the allocator, so objects stay valid
// until they are deallocated, whatever happens to their neighbours.
// FixAlloc 是固定大小对象的自由列表分配器。对象从块中切分，释放后放入空闲列表，
// 下次申请的时候优先使用空闲列表。
//
// The caller is responsible for locking around FixAlloc calls.
// 调用方负责加锁。
type FixAlloc[E any] struct {
	first     func(p *E) // called first time p is returned
	list      []*E       // 空闲列表，释放后放到这里
	chunk     []E        // 当前块中尚未分配的对象
	chunks    [][]E      // 所有已申请的块
	nchunk    int        // objects per chunk // 每个块的对象个数
	maxChunks int        // 0 means unlimited // 块数量上限，0 表示不限
	inuse     int        // objects handed out and not yet freed
}

// DefaultChunkSize is the number of objects per chunk used by
// NewFixAlloc when it is given a non-positive size.
const DefaultChunkSize = 64

// NewFixAlloc returns an initialized FixAlloc.
func NewFixAlloc[E any](nchunk int, first func(p *E)) *FixAlloc[E] {
	f := new(FixAlloc[E])
	f.Init(nchunk, first)
	return f
}

// Init initializes f to allocate objects in chunks of nchunk objects.
// first, if not nil, is called the first time each object is handed out.
// Init drops any chunks f already had.
// 初始化 f
func (f *FixAlloc[E]) Init(nchunk int, first func(p *E)) {
	if nchunk <= 0 {
		nchunk = DefaultChunkSize
	}
	f.first = first
	f.list = nil
	f.chunk = nil
	f.chunks = nil
	f.nchunk = nchunk
	f.maxChunks = 0
	f.inuse = 0
}

// SetMaxChunks caps the number of chunks f may create. Once the cap is
// reached Allocate only succeeds while freed objects are available.
// A value <= 0 removes the cap.
func (f *FixAlloc[E]) SetMaxChunks(n int) {
	if n < 0 {
		n = 0
	}
	f.maxChunks = n
}

// Allocate returns storage for one object.
// 分配内存
func (f *FixAlloc[E]) Allocate() (*E, error) {
	if f.nchunk == 0 {
		panic("alloc: use of FixAlloc before Init")
	}

	// 如果空闲列表中有，则直接使用
	if n := len(f.list); n > 0 {
		p := f.list[n-1]
		f.list[n-1] = nil
		f.list = f.list[:n-1]
		f.inuse++
		return p, nil
	}
	// 当前块用完了，重新申请一个块
	if len(f.chunk) == 0 {
		if f.maxChunks > 0 && len(f.chunks) >= f.maxChunks {
			return nil, ErrExhausted
		}
		f.chunk = make([]E, f.nchunk)
		f.chunks = append(f.chunks, f.chunk)
	}
	p := &f.chunk[0]
	f.chunk = f.chunk[1:]
	// 第一次分配的时候执行的函数，类似于构造函数
	if f.first != nil {
		f.first(p)
	}
	f.inuse++
	return p, nil
}

// Deallocate puts p on the free list.
// 释放内存，放到空闲列表中，供下次使用
func (f *FixAlloc[E]) Deallocate(p *E) {
	f.inuse--
	f.list = append(f.list, p)
}

// Construct stores v in p.
func (f *FixAlloc[E]) Construct(p *E, v E) { *p = v }

// Destroy zeroes p.
func (f *FixAlloc[E]) Destroy(p *E) {
	var zero E
	*p = zero
}

// InUse returns the number of objects handed out and not yet freed.
func (f *FixAlloc[E]) InUse() int { return f.inuse }

// Chunks returns the number of chunks created so far.
func (f *FixAlloc[E]) Chunks() int { return len(f.chunks) }

// Free returns the number of objects on the free list.
func (f *FixAlloc[E]) Free() int { return len(f.list) }
