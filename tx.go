// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// txDispatcher is the structural interface every mailbox effect operation
// implements. DispatchTx is a single, non-blocking attempt: a nil error
// commits the transaction (with the returned value); iox.ErrWouldBlock asks
// the handler to retry. This mirrors this organization's sessionDispatcher,
// minus the shared context parameter — each operation here already carries
// direct pointers to the mailbox(es) it targets.
type txDispatcher interface {
	DispatchTx() (kont.Resumed, error)
}

// sendOp is the effect operation behind (Output[A]).Send for a single
// mailbox.
type sendOp[A any] struct {
	kont.Phantom[bool]
	mb    *Mailbox[A]
	value A
}

func (op sendOp[A]) DispatchTx() (kont.Resumed, error) {
	accepted, sealed := op.mb.trySend(op.value)
	if sealed {
		return false, nil
	}
	if accepted {
		return true, nil
	}
	return nil, iox.ErrWouldBlock
}

// recvOp is the effect operation behind (Input[A]).Recv for a single
// mailbox.
type recvOp[A any] struct {
	kont.Phantom[Option[A]]
	mb *Mailbox[A]
}

func (op recvOp[A]) DispatchTx() (kont.Resumed, error) {
	v, got, exhausted := op.mb.tryRecv()
	if got {
		return Some(v), nil
	}
	if exhausted {
		return None[A](), nil
	}
	return nil, iox.ErrWouldBlock
}

// multiSendOp is the effect operation behind the monoid composition of
// Output. trySend is irrevocable — a mailbox that has already accepted the
// value must never be sent to again, or the value is delivered twice — so
// the op carries a done mask that survives across DispatchTx calls (hence
// the pointer receiver) and each round only attempts mailboxes not yet
// resolved. The transaction commits once every referenced mailbox has
// either accepted or sealed: broadcasting is synchronous across live
// receivers, so the slowest live receiver paces the whole send instead of
// letting an early acceptor commit for everyone.
type multiSendOp[A any] struct {
	kont.Phantom[bool]
	mbs   []*Mailbox[A]
	value A

	done        []bool
	anyAccepted bool
}

func (op *multiSendOp[A]) DispatchTx() (kont.Resumed, error) {
	if op.done == nil {
		op.done = make([]bool, len(op.mbs))
	}
	allResolved := true
	for i, mb := range op.mbs {
		if op.done[i] {
			continue
		}
		accepted, sealed := mb.trySend(op.value)
		switch {
		case accepted:
			op.anyAccepted = true
			op.done[i] = true
		case sealed:
			op.done[i] = true
		default:
			allResolved = false
		}
	}
	if allResolved {
		return op.anyAccepted, nil
	}
	return nil, iox.ErrWouldBlock
}

// altRecvOp is the effect operation behind the Alternative composition of
// Input: like multiSendOp, it attempts every referenced mailbox once per
// dispatch call and commits to the first value found, left to right.
type altRecvOp[A any] struct {
	kont.Phantom[Option[A]]
	mbs []*Mailbox[A]
}

func (op altRecvOp[A]) DispatchTx() (kont.Resumed, error) {
	allExhausted := true
	for _, mb := range op.mbs {
		v, got, exhausted := mb.tryRecv()
		if got {
			return Some(v), nil
		}
		if !exhausted {
			allExhausted = false
		}
	}
	if allExhausted {
		return None[A](), nil
	}
	return nil, iox.ErrWouldBlock
}

// txHandler drives a txDispatcher to completion with adaptive backoff,
// mirroring this organization's sessionHandler + dispatchWait.
type txHandler[R any] struct{}

func (txHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	d, ok := op.(txDispatcher)
	if !ok {
		panic("mbox: unhandled effect in txHandler")
	}
	return dispatchWait(d), true
}

func dispatchWait(d txDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := d.DispatchTx()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a mailbox transaction to completion, blocking on would-block
// with adaptive backoff (iox.Backoff) without spawning goroutines or
// creating channels.
func Exec[R any](tx kont.Eff[R]) R {
	return kont.Handle(tx, txHandler[R]{})
}
