// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// Buffer is a value-holding discipline: a three-operation state machine of
// write, read, and isEmpty. The six constructors below ([Unbounded],
// [Bounded], [Single], [Latest], [Newest], [New]) are the only producers of
// a Buffer; a Mailbox composes with exactly one for its lifetime.
type Buffer[A any] interface {
	tryWrite(a A) bool
	tryRead() (A, bool)
	isEmpty() bool
}

// sealDrainer is an optional hook a Buffer implements when sealing must
// release some internal guard before a live consumer can fully drain it.
// Mailbox.Seal probes for this via a type assertion, mirroring how callers
// of lfq itself probe for lfq.Drainer.
type sealDrainer interface {
	drainOnSeal()
}

// unboundedBuffer is an ever-growing FIFO. Nothing in the retrieved
// dependency stack offers a lock-free queue with unbounded growth, so this
// falls back to a mutex-guarded slice.
type unboundedBuffer[A any] struct {
	mu sync.Mutex
	q  []A
}

// Unbounded is a FIFO buffer with no capacity limit. write is always
// Accepted.
func Unbounded[A any]() Buffer[A] {
	return &unboundedBuffer[A]{}
}

func (b *unboundedBuffer[A]) tryWrite(a A) bool {
	b.mu.Lock()
	b.q = append(b.q, a)
	b.mu.Unlock()
	return true
}

func (b *unboundedBuffer[A]) tryRead() (A, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.q) == 0 {
		var zero A
		return zero, false
	}
	v := b.q[0]
	b.q[0] = *new(A)
	b.q = b.q[1:]
	return v, true
}

func (b *unboundedBuffer[A]) isEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.q) == 0
}

// boundedBuffer is a fixed-capacity FIFO backed by a lock-free MPMC queue
// from code.hybscloud.com/lfq, gated by an atomix.Uint32 logical size
// counter so back-pressure triggers at exactly n rather than at the queue's
// physical, power-of-two-rounded capacity (lfq's documented minimum
// capacity is 2, so n=1, i.e. Single, could not be represented by the
// physical queue alone).
type boundedBuffer[A any] struct {
	q    lfq.Queue[A]
	n    uint32
	size atomix.Uint32
}

func newBoundedBuffer[A any](n int) *boundedBuffer[A] {
	if n < 1 {
		panic("mbox: bounded capacity must be >= 1")
	}
	phys := n
	if phys < 2 {
		phys = 2
	}
	return &boundedBuffer[A]{q: lfq.NewMPMC[A](phys), n: uint32(n)}
}

// Bounded is a FIFO buffer that holds at most n values; write blocks (via
// the enclosing transaction's retry loop) once full. Bounded(1) is
// equivalent to [Single].
func Bounded[A any](n int) Buffer[A] {
	return newBoundedBuffer[A](n)
}

// Single is a rendezvous buffer: it holds 0 or 1 pending values. It is
// represented as Bounded(1): a second concurrent send simply blocks on the
// same full-buffer path until a recv drains the first value.
func Single[A any]() Buffer[A] {
	return newBoundedBuffer[A](1)
}

func (b *boundedBuffer[A]) tryWrite(a A) bool {
	for {
		cur := b.size.Load()
		if cur >= b.n {
			return false
		}
		if b.size.CompareAndSwap(cur, cur+1) {
			if err := b.q.Enqueue(&a); err != nil {
				// Physical capacity is always >= logical capacity, so this
				// should not happen in practice; roll back the reservation
				// and report Full rather than corrupt the counter.
				b.size.Add(^uint32(0))
				return false
			}
			return true
		}
	}
}

func (b *boundedBuffer[A]) tryRead() (A, bool) {
	v, err := b.q.Dequeue()
	if err != nil {
		var zero A
		return zero, false
	}
	b.size.Add(^uint32(0))
	return v, true
}

func (b *boundedBuffer[A]) isEmpty() bool {
	return b.size.Load() == 0
}

// drainOnSeal releases lfq's FAA threshold guard once no further Enqueue
// calls will be made, per the Drainer contract documented on
// code.hybscloud.com/lfq: without it, Dequeue may keep reporting
// ErrWouldBlock on a sealed, producer-abandoned queue even though items
// remain, waiting for producer activity that will never come.
func (b *boundedBuffer[A]) drainOnSeal() {
	if d, ok := b.q.(lfq.Drainer); ok {
		d.Drain()
	}
}

// latestBuffer is a never-empty, never-full 1-slot register. No confirmed
// atomix type stores an arbitrary generic value atomically (only fixed-width
// integer types are confirmed in the retrieved stack), so this is a
// mutex-guarded field.
type latestBuffer[A any] struct {
	mu  sync.Mutex
	val A
}

// Latest is a 1-slot register initialized to init. write always overwrites
// the slot; read peeks without consuming, so it never blocks and never
// starves a polling reader.
func Latest[A any](init A) Buffer[A] {
	return &latestBuffer[A]{val: init}
}

func (b *latestBuffer[A]) tryWrite(a A) bool {
	b.mu.Lock()
	b.val = a
	b.mu.Unlock()
	return true
}

func (b *latestBuffer[A]) tryRead() (A, bool) {
	b.mu.Lock()
	v := b.val
	b.mu.Unlock()
	return v, true
}

func (b *latestBuffer[A]) isEmpty() bool {
	return false
}

// newestBuffer is a bounded FIFO that drops the oldest value on overflow
// instead of blocking. lfq's Enqueue/Dequeue interface has no atomic
// drop-oldest-and-append operation, so this is a mutex-guarded ring slice.
type newestBuffer[A any] struct {
	mu   sync.Mutex
	ring []A
	n    int
}

func newNewestBuffer[A any](n int) *newestBuffer[A] {
	if n < 1 {
		panic("mbox: newest capacity must be >= 1")
	}
	return &newestBuffer[A]{ring: make([]A, 0, n), n: n}
}

// Newest holds at most n values; once full, write drops the oldest value
// before appending the newest, and never blocks. Newest(1) is equivalent to
// [New].
func Newest[A any](n int) Buffer[A] {
	return newNewestBuffer[A](n)
}

// New is a 1-slot buffer that overwrites on write and is consumed on read
// (unlike [Latest], which never consumes). It is represented as Newest(1).
func New[A any]() Buffer[A] {
	return newNewestBuffer[A](1)
}

func (b *newestBuffer[A]) tryWrite(a A) bool {
	b.mu.Lock()
	if len(b.ring) >= b.n {
		copy(b.ring, b.ring[1:])
		b.ring[len(b.ring)-1] = a
	} else {
		b.ring = append(b.ring, a)
	}
	b.mu.Unlock()
	return true
}

func (b *newestBuffer[A]) tryRead() (A, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.ring) == 0 {
		var zero A
		return zero, false
	}
	v := b.ring[0]
	copy(b.ring, b.ring[1:])
	b.ring = b.ring[:len(b.ring)-1]
	return v, true
}

func (b *newestBuffer[A]) isEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ring) == 0
}
