// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"errors"
	"slices"
	"testing"

	"github.com/veezhang/nodelist/src/container/alloc"
)

// allocators returns a fresh allocator of each kind, keyed by name.
func allocators() map[string]func() alloc.Allocator[Element[int]] {
	return map[string]func() alloc.Allocator[Element[int]]{
		"heap": func() alloc.Allocator[Element[int]] { return alloc.Heap[Element[int]]{} },
		"fixalloc": func() alloc.Allocator[Element[int]] {
			return alloc.NewFixAlloc[Element[int]](2, nil)
		},
	}
}

func TestEraseRange(t *testing.T) {
	a1 := []int{1, 2, 3}
	tests := []struct {
		n    int // elements erased from the front
		want []int
	}{
		{0, []int{1, 2, 3}},
		{1, []int{2, 3}},
		{2, []int{3}},
		{3, nil},
	}
	for name, newAlloc := range allocators() {
		for _, tt := range tests {
			l, err := FromSlice(a1, newAlloc())
			if err != nil {
				t.Fatalf("%s: FromSlice: %v", name, err)
			}
			i := l.Erase(l.Begin(), Advance(l.Begin(), tt.n))
			if l.Len() != len(a1)-tt.n {
				t.Errorf("%s: erase %d: Len() = %d, want %d", name, tt.n, l.Len(), len(a1)-tt.n)
			}
			if d := Distance(l.Begin(), l.End()); d != len(tt.want) {
				t.Errorf("%s: erase %d: Distance() = %d, want %d", name, tt.n, d, len(tt.want))
			}
			if i != l.Begin() {
				t.Errorf("%s: erase %d: returned iterator is not Begin()", name, tt.n)
			}
			checkList(t, l, tt.want)
		}
	}
}

func TestEraseEmptyRange(t *testing.T) {
	l := Of(1, 2, 3)
	for it := l.Begin(); ; it = it.Next() {
		if got := l.Erase(it, it); got != it {
			t.Fatalf("Erase(it, it) returned a different position")
		}
		checkList(t, l, []int{1, 2, 3})
		if it == l.End() {
			break
		}
	}
}

func TestEraseAll(t *testing.T) {
	c := alloc.NewCounting[Element[int]](nil)
	l, err := FromSlice([]int{1, 2, 3, 4, 5}, c)
	if err != nil {
		t.Fatal(err)
	}
	if i := l.Erase(l.Begin(), l.End()); i != l.End() {
		t.Errorf("Erase(Begin, End) did not return End")
	}
	if !l.Empty() || l.Begin() != l.End() {
		t.Errorf("list not empty after Erase(Begin, End)")
	}
	if l.root.next != &l.root || l.root.prev != &l.root {
		t.Errorf("sentinel does not link to itself")
	}
	if c.Live() != 0 || c.Destroys != 5 || c.Deallocs != 5 || c.Violations != 0 {
		t.Errorf("Live() = %d, Destroys = %d, Deallocs = %d, Violations = %d",
			c.Live(), c.Destroys, c.Deallocs, c.Violations)
	}
}

// Erasing a middle range must leave every other element where it was.
func TestEraseKeepsOtherElements(t *testing.T) {
	for name, newAlloc := range allocators() {
		src := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		for first := 0; first <= len(src); first++ {
			for last := first; last <= len(src); last++ {
				l, _ := FromSlice(src, newAlloc())
				var its []Iterator[int]
				var es []*Element[int]
				for it := l.Begin(); it != l.End(); it = it.Next() {
					its = append(its, it)
					es = append(es, it.Element())
				}
				its = append(its, l.End())

				got := l.Erase(its[first], its[last])
				if got != its[last] {
					t.Fatalf("%s: Erase(%d, %d) did not return last", name, first, last)
				}
				if last < len(src) && got.Value() != src[last] {
					t.Errorf("%s: Erase(%d, %d) returned %d, want %d", name, first, last, got.Value(), src[last])
				}

				want := slices.Concat(src[:first], src[last:])
				checkList(t, l, want)

				kept := slices.Concat(es[:first], es[last:])
				checkListPointers(t, l, kept)
				for i, e := range kept {
					if e.Value != want[i] {
						t.Errorf("%s: Erase(%d, %d): element %d holds %d, want %d", name, first, last, i, e.Value, want[i])
					}
				}
			}
		}
	}
}

func TestEraseReleasesNodes(t *testing.T) {
	f := alloc.NewFixAlloc[Element[int]](4, nil)
	c := alloc.NewCounting[Element[int]](f)
	l, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, c)
	if err != nil {
		t.Fatal(err)
	}
	first := Advance(l.Begin(), 1)
	last := Advance(first, 3)
	l.Erase(first, last)
	checkList(t, l, []int{1, 5, 6})
	if f.InUse() != 3 || f.Free() != 3 {
		t.Errorf("InUse() = %d, Free() = %d, want 3, 3", f.InUse(), f.Free())
	}
	if c.Destroys != 3 || c.Deallocs != 3 || c.Violations != 0 {
		t.Errorf("Destroys = %d, Deallocs = %d, Violations = %d", c.Destroys, c.Deallocs, c.Violations)
	}

	// freed nodes are reused before a new chunk is made
	chunks := f.Chunks()
	for i := 0; i < 3; i++ {
		l.PushBack(10 + i)
	}
	if f.Chunks() != chunks {
		t.Errorf("Chunks() = %d, want %d", f.Chunks(), chunks)
	}
	checkList(t, l, []int{1, 5, 6, 10, 11, 12})
}

func TestEraseAt(t *testing.T) {
	l := Of(1, 2, 3)
	it := l.EraseAt(l.Begin().Next())
	if it.Value() != 3 {
		t.Errorf("EraseAt returned %d, want 3", it.Value())
	}
	checkList(t, l, []int{1, 3})
	if it = l.EraseAt(it); it != l.End() {
		t.Errorf("EraseAt(last) did not return End")
	}
	checkList(t, l, []int{1})
}

func TestIteratorTraversal(t *testing.T) {
	l := Of(1, 2, 3)
	b, e := l.Begin(), l.End()
	if b.Prev() != e || e.Next() != b {
		t.Errorf("Begin and End are not neighbours in the ring")
	}
	if e.Element() != nil {
		t.Errorf("End().Element() = %p, want nil", e.Element())
	}
	if b.Element() != l.Front() {
		t.Errorf("Begin().Element() != Front()")
	}
	if Advance(e, -1).Value() != 3 || Advance(b, 2).Value() != 3 {
		t.Errorf("Advance reached the wrong element")
	}
	if Advance(b, 0) != b {
		t.Errorf("Advance(b, 0) moved")
	}
	if Distance(b, e) != 3 || Distance(e, e) != 0 {
		t.Errorf("Distance = %d, %d", Distance(b, e), Distance(e, e))
	}
	if l.Iter(l.Back()) != e.Prev() || l.Iter(nil) != e {
		t.Errorf("Iter returned the wrong position")
	}

	*b.Next().Ptr() = 20
	checkList(t, l, []int{1, 20, 3})

	// equality is by node, not by value
	l2 := Of(1)
	if l2.Begin() == b {
		t.Errorf("iterators into different lists compare equal")
	}
}

func TestIteratorsSurviveInsert(t *testing.T) {
	l := Of(1, 3)
	one, three := l.Begin(), l.Begin().Next()
	two, err := l.Insert(three, 2)
	if err != nil {
		t.Fatal(err)
	}
	if two.Value() != 2 || one.Next() != two || two.Next() != three {
		t.Errorf("Insert linked the element in the wrong place")
	}
	if _, err := l.Insert(l.End(), 4); err != nil {
		t.Fatal(err)
	}
	checkList(t, l, []int{1, 2, 3, 4})
	if one.Value() != 1 || three.Value() != 3 {
		t.Errorf("existing iterators changed")
	}
}

func TestInsertSeq(t *testing.T) {
	l := Of(1, 5)
	pos := l.Begin().Next()
	it, err := l.InsertSeq(pos, slices.Values([]int{2, 3, 4}))
	if err != nil {
		t.Fatal(err)
	}
	if it.Value() != 2 {
		t.Errorf("InsertSeq returned %d, want 2", it.Value())
	}
	checkList(t, l, []int{1, 2, 3, 4, 5})

	it, err = l.InsertSeq(pos, slices.Values([]int(nil)))
	if err != nil || it != pos {
		t.Errorf("empty InsertSeq = %v, %v", it, err)
	}
	checkList(t, l, []int{1, 2, 3, 4, 5})
}

func TestInsertAllocFailure(t *testing.T) {
	c := alloc.NewCounting[Element[int]](nil)
	lim := alloc.NewLimited[Element[int]](c, 5)
	l, err := FromSlice([]int{1, 2, 3}, lim)
	if err != nil {
		t.Fatal(err)
	}
	pos := l.Begin().Next()

	it, err := l.InsertSeq(pos, slices.Values([]int{7, 8, 9}))
	if !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("InsertSeq error = %v, want ErrOutOfMemory", err)
	}
	if it != pos {
		t.Errorf("InsertSeq did not return pos on failure")
	}
	checkList(t, l, []int{1, 2, 3})
	if c.Live() != 3 || c.Violations != 0 {
		t.Errorf("Live() = %d, Violations = %d", c.Live(), c.Violations)
	}

	if _, err := l.Insert(pos, 7); !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("Insert error = %v, want ErrOutOfMemory", err)
	}
	checkList(t, l, []int{1, 2, 3})
}

func TestCollectAllocFailure(t *testing.T) {
	for budget := 0; budget < 4; budget++ {
		c := alloc.NewCounting[Element[int]](nil)
		l, err := FromSlice([]int{1, 2, 3, 4}, alloc.NewLimited[Element[int]](c, budget))
		if !errors.Is(err, alloc.ErrOutOfMemory) {
			t.Fatalf("budget %d: error = %v, want ErrOutOfMemory", budget, err)
		}
		if l != nil {
			t.Errorf("budget %d: got a list on failure", budget)
		}
		if c.Allocs != budget || c.Live() != 0 || c.Destroys != budget || c.Violations != 0 {
			t.Errorf("budget %d: Allocs = %d, Live() = %d, Destroys = %d, Violations = %d",
				budget, c.Allocs, c.Live(), c.Destroys, c.Violations)
		}
	}
}

func TestCollectFixAllocExhausted(t *testing.T) {
	f := alloc.NewFixAlloc[Element[int]](2, nil)
	f.SetMaxChunks(1)
	if _, err := FromSlice([]int{1, 2, 3}, f); !errors.Is(err, alloc.ErrExhausted) {
		t.Fatalf("error = %v, want ErrExhausted", err)
	}
	if f.InUse() != 0 {
		t.Errorf("InUse() = %d after failed construction", f.InUse())
	}
}

func TestCollect(t *testing.T) {
	c := alloc.NewCounting[Element[string]](nil)
	l, err := Collect(slices.Values([]string{"a", "b", "c"}), c)
	if err != nil {
		t.Fatal(err)
	}
	checkList(t, l, []string{"a", "b", "c"})
	if c.Allocs != 3 || c.Constructs != 3 || c.Constructed() != 3 {
		t.Errorf("Allocs = %d, Constructs = %d", c.Allocs, c.Constructs)
	}
}
