package deque

import (
	"tw/model"
)

// ArrDeque is a ring buffer. Array storage keeps the common
// append-newest/evict-oldest path allocation-free.
type ArrDeque struct {
	arr []*model.Record

	// index of the front element
	head int

	// 元素个数
	size int

	// 容量
	capacity int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque{
		arr:      make([]*model.Record, capacity),
		head:     0,
		size:     0,
		capacity: capacity,
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Capacity() int {
	return ad.capacity
}

func (ad *ArrDeque) Get(i int) *model.Record {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[(ad.head+i)%ad.capacity]
}

func (ad *ArrDeque) Traverse(f func(i int, r *model.Record)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[(ad.head+i)%ad.capacity])
	}
}

func (ad *ArrDeque) AddLast(r *model.Record) {
	if ad.IsFull() {
		return
	}
	ad.arr[(ad.head+ad.size)%ad.capacity] = r
	ad.size++
}

func (ad *ArrDeque) RemoveLast() {
	if ad.size > 0 {
		ad.arr[(ad.head+ad.size-1)%ad.capacity] = nil
		ad.size--
	}
}

func (ad *ArrDeque) AddFirst(r *model.Record) {
	if ad.IsFull() {
		return
	}
	ad.head = (ad.head - 1 + ad.capacity) % ad.capacity
	ad.arr[ad.head] = r
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() {
	if ad.size > 0 {
		ad.arr[ad.head] = nil
		ad.head = (ad.head + 1) % ad.capacity
		ad.size--
	}
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
