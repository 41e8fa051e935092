// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

// Limited wraps an Allocator and fails once Budget successful
// allocations have been made. Deallocating does not restore budget.
// Limited 在配额用完后返回 ErrOutOfMemory ，用于注入分配失败
type Limited[E any] struct {
	A      Allocator[E]
	Budget int // remaining successful allocations
}

// NewLimited returns a Limited allocator over a with the given budget.
// A nil a means Heap[E].
func NewLimited[E any](a Allocator[E], budget int) *Limited[E] {
	if a == nil {
		a = Heap[E]{}
	}
	return &Limited[E]{A: a, Budget: budget}
}

func (l *Limited[E]) Allocate() (*E, error) {
	if l.Budget <= 0 {
		return nil, ErrOutOfMemory
	}
	p, err := l.A.Allocate()
	if err != nil {
		return nil, err
	}
	l.Budget--
	return p, nil
}

func (l *Limited[E]) Deallocate(p *E)     { l.A.Deallocate(p) }
func (l *Limited[E]) Construct(p *E, v E) { l.A.Construct(p, v) }
func (l *Limited[E]) Destroy(p *E)        { l.A.Destroy(p) }

// object states tracked by Counting
const (
	stateAllocated = iota + 1
	stateConstructed
)

// Counting wraps an Allocator and records how it is driven.
//
// Besides plain counters it tracks the state of every live object and
// counts a violation whenever the Allocate, Construct, Destroy,
// Deallocate order is broken for an object: constructing twice,
// destroying unconstructed storage, deallocating a constructed object or
// touching a pointer it never handed out.
// Counting 统计各个操作的调用次数，并检查每个对象的调用顺序
type Counting[E any] struct {
	A Allocator[E]

	Allocs      int
	Deallocs    int
	Constructs  int
	Destroys    int
	Violations  int
	state       map[*E]int
	failedAlloc int
}

// NewCounting returns a Counting allocator over a. A nil a means Heap[E].
func NewCounting[E any](a Allocator[E]) *Counting[E] {
	if a == nil {
		a = Heap[E]{}
	}
	return &Counting[E]{A: a, state: make(map[*E]int)}
}

func (c *Counting[E]) Allocate() (*E, error) {
	p, err := c.A.Allocate()
	if err != nil {
		c.failedAlloc++
		return nil, err
	}
	c.Allocs++
	if c.state == nil {
		c.state = make(map[*E]int)
	}
	if _, ok := c.state[p]; ok {
		// handed out twice without being freed
		c.Violations++
	}
	c.state[p] = stateAllocated
	return p, nil
}

func (c *Counting[E]) Construct(p *E, v E) {
	c.Constructs++
	if c.state[p] != stateAllocated {
		c.Violations++
	}
	c.state[p] = stateConstructed
	c.A.Construct(p, v)
}

func (c *Counting[E]) Destroy(p *E) {
	c.Destroys++
	if c.state[p] != stateConstructed {
		c.Violations++
	}
	c.state[p] = stateAllocated
	c.A.Destroy(p)
}

func (c *Counting[E]) Deallocate(p *E) {
	c.Deallocs++
	if c.state[p] != stateAllocated {
		c.Violations++
	}
	delete(c.state, p)
	c.A.Deallocate(p)
}

// Live returns the number of objects allocated and not yet deallocated.
func (c *Counting[E]) Live() int { return len(c.state) }

// Constructed returns the number of live objects currently constructed.
func (c *Counting[E]) Constructed() int {
	n := 0
	for _, s := range c.state {
		if s == stateConstructed {
			n++
		}
	}
	return n
}

// FailedAllocs returns the number of Allocate calls that returned an error.
func (c *Counting[E]) FailedAllocs() int { return c.failedAlloc }
