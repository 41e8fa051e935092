// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import "iter"

// Iterator is a position in a list: either an element or the end of
// the list. Iterators are small values that do not own anything; two
// iterators are equal (==) when they refer to the same position.
//
// An iterator stays valid until the element it refers to is removed
// from the list. Inserting or removing other elements does not affect
// it. Using an invalid iterator, or the zero Iterator, is a programming
// error and is not detected.
// Iterator 指向链表中的一个元素或者哨兵（结尾），按元素地址比较
type Iterator[T any] struct {
	e *Element[T]
}

// Next returns the position after it. The position after the last
// element is the end, and the position after the end is the first
// element, following the ring.
// Next 返回下一个位置，沿着环走
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.e.next} }

// Prev returns the position before it.
// Prev 返回上一个位置
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.e.prev} }

// Value returns the value at it. it must not be the end iterator.
func (it Iterator[T]) Value() T { return it.e.Value }

// Ptr returns a pointer to the value at it, for updating it in place.
// it must not be the end iterator.
func (it Iterator[T]) Ptr() *T { return &it.e.Value }

// Element returns the element at it, or nil if it is the end iterator.
func (it Iterator[T]) Element() *Element[T] {
	// 哨兵元素的 list 为 nil
	if it.e == nil || it.e.list == nil {
		return nil
	}
	return it.e
}

// Advance moves it n positions forward, or -n positions backward when
// n is negative.
func Advance[T any](it Iterator[T], n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance returns the number of Next steps from first to last.
// last must be reachable from first.
func Distance[T any](first, last Iterator[T]) int {
	n := 0
	for ; first != last; first = first.Next() {
		n++
	}
	return n
}

// Begin returns the position of the first element, which is End if l
// is empty.
// Begin 返回第一个元素的位置，即 root.next
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{l.root.next}
}

// End returns the position after the last element.
// End 返回哨兵元素的位置
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{&l.root}
}

// Iter returns the position of e, or End if e is nil.
// e must be an element of l.
func (l *List[T]) Iter(e *Element[T]) Iterator[T] {
	if e == nil {
		return l.End()
	}
	return Iterator[T]{e}
}

// Erase removes the elements in [first, last) from l and returns last.
//
// first and last must be positions in l, and last must be reachable
// from first by calling Next zero or more times; last may be End. These
// requirements are not checked. Each removed element is destroyed and
// given back to the allocator; iterators to removed elements become
// invalid, all others stay valid.
//
// The complexity is linear in the number of removed elements.
// Erase 删除 [first, last) 区间内的元素，返回 last
func (l *List[T]) Erase(first, last Iterator[T]) Iterator[T] {
	for e := first.e; e != last.e; {
		next := e.next
		// 把 e 从环上摘下，前后元素直接相连
		l.remove(e)
		l.freeElement(e)
		e = next
	}
	return last
}

// EraseAt removes the element at pos and returns the position that
// followed it. pos must not be End.
func (l *List[T]) EraseAt(pos Iterator[T]) Iterator[T] {
	return l.Erase(pos, pos.Next())
}

// Insert inserts v immediately before pos and returns its position.
// On allocation failure l is not modified.
// Insert 在 pos 前面插入 v
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	e, err := l.insertValue(v, pos.e.prev)
	if err != nil {
		return pos, err
	}
	return Iterator[T]{e}, nil
}

// InsertSeq inserts the values of seq, in order, immediately before pos
// and returns the position of the first inserted value, or pos if seq
// was empty.
//
// The new elements are built off the list and linked in at the end, so
// if the allocator fails, the elements built so far are given back and
// l is left unchanged.
// InsertSeq 先在链表外构造好一段元素，再整体接到 pos 前面
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	l.lazyInit()
	var head, tail *Element[T]
	n := 0
	for v := range seq {
		e, err := l.newElement(v)
		if err != nil {
			for e := head; e != nil; {
				next := e.next
				l.freeElement(e)
				e = next
			}
			return pos, err
		}
		e.list = l
		if head == nil {
			head = e
		} else {
			tail.next = e
			e.prev = tail
		}
		tail = e
		n++
	}
	if head == nil {
		return pos, nil
	}

	at := pos.e.prev
	at.next = head
	head.prev = at
	tail.next = pos.e
	pos.e.prev = tail
	l.len += n
	return Iterator[T]{head}, nil
}
