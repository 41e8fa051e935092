// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list implements an allocator-aware doubly linked list.
//
// To iterate over a list (where l is a *List[T]):
//	for e := l.Front(); e != nil; e = e.Next() {
//		// do something with e.Value
//	}
//
// or, with iterators:
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		// do something with it.Value()
//	}
//
// Every element is obtained from the list's allocator and is given back
// to it when the element is removed. Removing elements never moves the
// remaining ones, so elements and iterators stay valid until the element
// they refer to is removed.
//
// A List is not safe for concurrent use.
package list

import (
	"fmt"
	"iter"
	"slices"

	"github.com/veezhang/nodelist/src/container/alloc"
)

// 双向链表

// Element is an element of a linked list.
// Element 这是一个 list 中存储的元素
type Element[T any] struct {
	// Next and previous pointers in the doubly-linked list of elements.
	// To simplify the implementation, internally a list l is implemented
	// as a ring, such that &l.root is both the next element of the last
	// list element (l.Back()) and the previous element of the first list
	// element (l.Front()).
	// 包含一个指向下一个和上一个元素的指针，内部实现为环
	next, prev *Element[T]

	// The list to which this element belongs.
	list *List[T] // 元素当前的 list ，哨兵元素为 nil

	// The value stored with this element.
	Value T // 存储的值
}

// Next returns the next list element or nil.
// Next 返回下一个元素
func (e *Element[T]) Next() *Element[T] {
	// e.next 不为 e.list.root （这样就循环了）
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
// Prev 返回上一个元素
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List represents a doubly linked list.
// The zero value for List is an empty list ready to use; it allocates
// elements from the Go heap.
// List 表示一个双向链表
type List[T any] struct {
	// 哨兵元素，只使用： &root, root.prev, root.next
	root  Element[T] // sentinel list element, only &root, root.prev, and root.next are used
	len   int        // current list length excluding (this) sentinel element // 元素的长度，不包含哨兵元素 root
	alloc alloc.Allocator[Element[T]]
}

// New returns an initialized list.
// New 返回一个初始化好的链表
func New[T any]() *List[T] { return new(List[T]).Init() }

// NewWithAllocator returns an initialized list whose elements come from a.
// A nil a means the Go heap.
func NewWithAllocator[T any](a alloc.Allocator[Element[T]]) *List[T] {
	l := &List[T]{alloc: a}
	return l.Init()
}

// Collect builds a list holding the values of seq, in order, with
// elements from a (nil means the Go heap). seq is consumed once.
//
// If a fails to supply an element, every element created so far is
// destroyed and given back to a, and the error is returned.
// Collect 依次追加 seq 中的值，分配失败时释放已经分配的元素
func Collect[T any](seq iter.Seq[T], a alloc.Allocator[Element[T]]) (*List[T], error) {
	l := NewWithAllocator[T](a)
	for v := range seq {
		if _, err := l.pushBack(v); err != nil {
			l.Init()
			return nil, err
		}
	}
	return l, nil
}

// FromSlice is like Collect for the values of s.
func FromSlice[T any](s []T, a alloc.Allocator[Element[T]]) (*List[T], error) {
	return Collect(slices.Values(s), a)
}

// Of returns a list holding vs, allocated from the Go heap.
func Of[T any](vs ...T) *List[T] {
	l, err := FromSlice(vs, nil)
	if err != nil {
		panic(err)
	}
	return l
}

// Init initializes or clears list l.
// Elements already in l are destroyed and given back to the allocator.
// Init 初始化或清空列表
func (l *List[T]) Init() *List[T] {
	if l.root.next != nil {
		l.release()
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// Clear removes all elements from l.
// The complexity is O(l.Len()).
func (l *List[T]) Clear() { l.Init() }

// release gives every element back to the allocator, front to back.
// It leaves the ring broken; the caller resets root.
// release 逐个释放元素，不使用递归
func (l *List[T]) release() {
	for e := l.root.next; e != &l.root; {
		next := e.next
		l.freeElement(e)
		e = next
	}
}

// Len returns the number of elements of list l.
// The complexity is O(1).
// Len 返回链表长度
func (l *List[T]) Len() int { return l.len }

// Empty reports whether l has no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Front returns the first element of list l or nil if the list is empty.
// Front 返回第一个元素
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of list l or nil if the list is empty.
// Back 返回最后一个元素
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// lazyInit lazily initializes a zero List value.
// lazyInit 延迟初始化
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

func (l *List[T]) allocator() alloc.Allocator[Element[T]] {
	if l.alloc == nil {
		l.alloc = alloc.Heap[Element[T]]{}
	}
	return l.alloc
}

// newElement allocates and constructs a detached element holding v.
// newElement 分配并构造一个元素
func (l *List[T]) newElement(v T) (*Element[T], error) {
	a := l.allocator()
	e, err := a.Allocate()
	if err != nil {
		return nil, fmt.Errorf("list: allocate element: %w", err)
	}
	a.Construct(e, Element[T]{Value: v})
	return e, nil
}

// freeElement destroys e and gives it back to the allocator.
// e must already be unlinked.
// freeElement 析构并释放元素
func (l *List[T]) freeElement(e *Element[T]) {
	a := l.allocator()
	a.Destroy(e)
	a.Deallocate(e)
}

// insert inserts e after at, increments l.len, and returns e.
// insert 在 at 后面插入元素 e
func (l *List[T]) insert(e, at *Element[T]) *Element[T] {
	n := at.next
	at.next = e
	e.prev = at
	e.next = n
	n.prev = e
	e.list = l
	l.len++
	return e
}

// insertValue allocates an element holding v and inserts it after at.
// insertValue 在 at 后面插入值为 v 的元素
func (l *List[T]) insertValue(v T, at *Element[T]) (*Element[T], error) {
	e, err := l.newElement(v)
	if err != nil {
		return nil, err
	}
	return l.insert(e, at), nil
}

func (l *List[T]) pushBack(v T) (*Element[T], error) {
	l.lazyInit()
	return l.insertValue(v, l.root.prev)
}

// remove unlinks e from its list and decrements l.len.
// The element is not freed.
// remove 将元素 e 从环上摘下
func (l *List[T]) remove(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// move moves e to next to at and returns e.
// move 将 e 移到 at 的后面
func (l *List[T]) move(e, at *Element[T]) *Element[T] {
	if e == at {
		return e
	}
	// 移走 e
	e.prev.next = e.next
	e.next.prev = e.prev

	// 插入到 at 后
	n := at.next
	at.next = e
	e.prev = at
	e.next = n
	n.prev = e

	return e
}

// Remove removes e from l if e is an element of list l.
// It returns the element value e.Value. When e was in l it is destroyed
// and given back to the allocator, so e must not be used afterwards.
// The element must not be nil.
// Remove 移除链表 l 中的元素 e
func (l *List[T]) Remove(e *Element[T]) T {
	v := e.Value
	if e.list == l {
		// if e.list == l, l must have been initialized when e was inserted
		// 如果 e.list == l ，则 l 肯定在 e 插入到 l 的时候已经初始化了
		l.remove(e)
		l.freeElement(e)
	}
	return v
}

// PushFront inserts a new element e with value v at the front of list l and returns e.
// It returns nil if the allocator cannot supply an element.
// PushFront 在列表前面插入
func (l *List[T]) PushFront(v T) *Element[T] {
	l.lazyInit()
	e, _ := l.insertValue(v, &l.root)
	return e
}

// PushBack inserts a new element e with value v at the back of list l and returns e.
// It returns nil if the allocator cannot supply an element.
// PushBack 在列表后面插入
func (l *List[T]) PushBack(v T) *Element[T] {
	e, _ := l.pushBack(v)
	return e
}

// InsertBefore inserts a new element e with value v immediately before mark and returns e.
// If mark is not an element of l, or the allocator cannot supply an
// element, the list is not modified and nil is returned.
// The mark must not be nil.
// InsertBefore 在特定元素前面插入
func (l *List[T]) InsertBefore(v T, mark *Element[T]) *Element[T] {
	if mark.list != l {
		return nil
	}
	// see comment in List.Remove about initialization of l
	e, _ := l.insertValue(v, mark.prev)
	return e
}

// InsertAfter inserts a new element e with value v immediately after mark and returns e.
// If mark is not an element of l, or the allocator cannot supply an
// element, the list is not modified and nil is returned.
// The mark must not be nil.
// InsertAfter 在特定元素后面插入
func (l *List[T]) InsertAfter(v T, mark *Element[T]) *Element[T] {
	if mark.list != l {
		return nil
	}
	e, _ := l.insertValue(v, mark)
	return e
}

// MoveToFront moves element e to the front of list l.
// If e is not an element of l, the list is not modified.
// The element must not be nil.
// MoveToFront 将元素移到链表头部
func (l *List[T]) MoveToFront(e *Element[T]) {
	if e.list != l || l.root.next == e {
		return
	}
	l.move(e, &l.root)
}

// MoveToBack moves element e to the back of list l.
// If e is not an element of l, the list is not modified.
// The element must not be nil.
// MoveToBack 将元素移到链表尾部
func (l *List[T]) MoveToBack(e *Element[T]) {
	if e.list != l || l.root.prev == e {
		return
	}
	l.move(e, l.root.prev)
}

// MoveBefore moves element e to its new position before mark.
// If e or mark is not an element of l, or e == mark, the list is not modified.
// The element and mark must not be nil.
// MoveBefore 将元素移到特定元素前面
func (l *List[T]) MoveBefore(e, mark *Element[T]) {
	if e.list != l || e == mark || mark.list != l {
		return
	}
	l.move(e, mark.prev)
}

// MoveAfter moves element e to its new position after mark.
// If e or mark is not an element of l, or e == mark, the list is not modified.
// The element and mark must not be nil.
// MoveAfter 将元素移到特定元素后面
func (l *List[T]) MoveAfter(e, mark *Element[T]) {
	if e.list != l || e == mark || mark.list != l {
		return
	}
	l.move(e, mark)
}

// PushBackList inserts a copy of an other list at the back of list l.
// The lists l and other may be the same. They must not be nil.
// If an element cannot be allocated l is left unchanged.
// PushBackList 在链表尾部插入另一个链表的拷贝
func (l *List[T]) PushBackList(other *List[T]) error {
	_, err := l.InsertSeq(l.End(), other.All())
	return err
}

// PushFrontList inserts a copy of an other list at the front of list l.
// The lists l and other may be the same. They must not be nil.
// If an element cannot be allocated l is left unchanged.
// PushFrontList 在链表头部插入另一个链表的拷贝
func (l *List[T]) PushFrontList(other *List[T]) error {
	_, err := l.InsertSeq(l.Begin(), other.All())
	return err
}

// All returns an iterator over the values of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of l, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Back(); e != nil; e = e.Prev() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns the values of l in a new slice.
func (l *List[T]) Values() []T {
	return slices.Collect(l.All())
}
