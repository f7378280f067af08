// Bounded double-ended queue of computation records. The hub keeps one per
// session so the GUI can show the recent history; the array implementation is
// the default, the list implementation is kept for comparison.
package deque

import "tw/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 队列的容量
	Capacity() int

	// Get returns the i-th record counted from the front.
	Get(i int) *model.Record

	// 正向遍历
	Traverse(f func(i int, r *model.Record))

	// 在队列结尾增加一个元素
	AddLast(r *model.Record)

	// 在队列结尾删除一个元素
	RemoveLast()

	// 在队列头部增加一个元素
	AddFirst(r *model.Record)

	// 在队列头部删除一个元素
	RemoveFirst()

	IsFull() bool

	IsEmpty() bool
}
