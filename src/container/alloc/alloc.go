// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alloc provides the allocation capability used by node based
// containers, together with a few concrete allocators.
//
// An Allocator separates obtaining storage from placing a value in it,
// so a container drives every object through the same four steps:
//
//	p, err := a.Allocate()
//	a.Construct(p, v)
//	...
//	a.Destroy(p)
//	a.Deallocate(p)
//
// 分配器：把"获取存储"与"构造对象"分开，容器对每个对象依次调用
// Allocate -> Construct -> Destroy -> Deallocate 。
package alloc

import "errors"

var (
	// ErrOutOfMemory is returned by Allocate when an allocator has no
	// budget left for another object.
	// 没有可用的配额
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrExhausted is returned by a FixAlloc that reached its chunk limit
	// and has no freed objects to reuse.
	// 块数量达到上限，且空闲列表为空
	ErrExhausted = errors.New("alloc: chunk limit reached")
)

// Allocator hands out storage for objects of type E.
//
// Allocate returns storage that has not been constructed yet; the caller
// must Construct before use, Destroy when done, and finally Deallocate.
// Deallocate must only be given pointers obtained from the same
// allocator's Allocate.
// 分配器接口
type Allocator[E any] interface {
	Allocate() (*E, error) // obtain storage for one E
	Deallocate(p *E)       // give storage back
	Construct(p *E, v E)   // place v into storage
	Destroy(p *E)          // end the lifetime of *p
}

// Heap delegates to the Go runtime. Allocate never fails and
// Deallocate leaves the object to the garbage collector.
// Heap 直接使用 Go 运行时分配，Deallocate 交给 GC
type Heap[E any] struct{}

// Allocate returns a new zeroed E.
func (Heap[E]) Allocate() (*E, error) { return new(E), nil }

// Deallocate is a no-op.
func (Heap[E]) Deallocate(*E) {}

// Construct stores v in p.
func (Heap[E]) Construct(p *E, v E) { *p = v }

// Destroy clears p so that it no longer keeps anything reachable.
func (Heap[E]) Destroy(p *E) {
	var zero E
	*p = zero
}
