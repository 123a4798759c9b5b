// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import "code.hybscloud.com/atomix"

// Mailbox is a shared broker: a Buffer plus a monotonic sealed flag and two
// liveness counters, one per side. Callers never construct or reference a
// Mailbox directly; [Spawn] returns [Output]/[Input] handles that wrap it.
type Mailbox[A any] struct {
	buf Buffer[A]

	sealed       atomix.Uint32
	producerRefs atomix.Uint32
	consumerRefs atomix.Uint32
}

func newMailbox[A any](buf Buffer[A]) *Mailbox[A] {
	mb := &Mailbox[A]{buf: buf}
	mb.producerRefs.Store(1)
	mb.consumerRefs.Store(1)
	return mb
}

// trySend is a single, non-blocking send attempt: the mailbox-level
// analogue of this organization's DispatchSession. accepted reports
// whether the value was written; sealed reports whether the mailbox was
// already sealed (in which case accepted is always false). When neither is
// true, the buffer was full and the caller should retry.
func (mb *Mailbox[A]) trySend(a A) (accepted, sealed bool) {
	if mb.sealed.Load() != 0 {
		return false, true
	}
	return mb.buf.tryWrite(a), false
}

// tryRecv is a single, non-blocking receive attempt. got reports whether a
// value was read; exhausted reports whether the mailbox is sealed and
// empty. When neither is true, the caller should retry.
//
// A sealed mailbox is only exhausted once the buffer also reports itself
// empty via isEmpty, not merely on a single failed tryRead: lfq's FAA-based
// queues may spuriously report empty under their livelock-prevention
// threshold even while values remain, so a bare failed read right after
// seal must not be mistaken for drained (see Mailbox.Seal / boundedBuffer's
// sealDrainer).
func (mb *Mailbox[A]) tryRecv() (a A, got, exhausted bool) {
	if v, ok := mb.buf.tryRead(); ok {
		return v, true, false
	}
	if mb.sealed.Load() != 0 && mb.buf.isEmpty() {
		var zero A
		return zero, false, true
	}
	var zero A
	return zero, false, false
}

// Seal idempotently marks the mailbox as sealed. Subsequent sends fail;
// pending values remain readable until drained. If the underlying buffer
// implements sealDrainer, it is given a chance to release any internal
// guard that would otherwise block a live consumer from draining it (see
// boundedBuffer.drainOnSeal).
func (mb *Mailbox[A]) Seal() {
	mb.sealed.Store(1)
	if d, ok := mb.buf.(sealDrainer); ok {
		d.drainOnSeal()
	}
}

func (mb *Mailbox[A]) isSealed() bool {
	return mb.sealed.Load() != 0
}

// addProducerRef bumps the producer-side liveness counter, undoing an
// eventual dropProducerRef.
func (mb *Mailbox[A]) addProducerRef() {
	mb.producerRefs.Add(1)
}

// dropProducerRef releases one producer-side handle, sealing the mailbox
// once the count reaches zero.
func (mb *Mailbox[A]) dropProducerRef() {
	if mb.producerRefs.Add(^uint32(0)) == 0 {
		mb.Seal()
	}
}

func (mb *Mailbox[A]) addConsumerRef() {
	mb.consumerRefs.Add(1)
}

// dropConsumerRef releases one consumer-side handle, sealing the mailbox
// once the count reaches zero.
func (mb *Mailbox[A]) dropConsumerRef() {
	if mb.consumerRefs.Add(^uint32(0)) == 0 {
		mb.Seal()
	}
}
