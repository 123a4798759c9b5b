// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import "code.hybscloud.com/kont"

// Input is a receive handle referencing zero, one, or many mailboxes. The
// zero-mailbox value is the alternative identity, [EmptyInput]; one mailbox
// is the plain case returned by [Spawn]; many mailboxes is the result of
// [Input.Or], the race combinator.
type Input[A any] struct {
	mailboxes []*Mailbox[A]
}

// EmptyInput is the Alternative identity for Input: its Recv always
// immediately returns None.
func EmptyInput[A any]() Input[A] {
	return Input[A]{}
}

// Recv is a transaction that reads one value from this endpoint. With zero
// mailboxes it commits to None immediately; with one mailbox it is a plain
// receive; with more than one, every mailbox is attempted once per
// dispatch, the transaction commits to the first value found (left to
// right among those ready in the same dispatch), and it only settles on
// None once every referenced mailbox is sealed and empty.
func (i Input[A]) Recv() kont.Eff[Option[A]] {
	switch len(i.mailboxes) {
	case 0:
		return kont.Pure(None[A]())
	case 1:
		return kont.Perform(recvOp[A]{mb: i.mailboxes[0]})
	default:
		return kont.Perform(altRecvOp[A]{mbs: i.mailboxes})
	}
}

// Or returns an Input that races i against other: its Recv commits to
// whichever of the two has a value ready first, with i's mailboxes checked
// before other's when both are ready in the same dispatch.
func (i Input[A]) Or(other Input[A]) Input[A] {
	merged := make([]*Mailbox[A], 0, len(i.mailboxes)+len(other.mailboxes))
	merged = append(merged, i.mailboxes...)
	merged = append(merged, other.mailboxes...)
	return Input[A]{mailboxes: merged}
}

// Clone returns a handle equivalent to i that holds its own reference on
// every mailbox i references, so that either handle may be Closed
// independently.
func (i Input[A]) Clone() Input[A] {
	for _, mb := range i.mailboxes {
		mb.addConsumerRef()
	}
	return Input[A]{mailboxes: i.mailboxes}
}

// Close releases this handle's consumer-side reference on every mailbox it
// references. The last Close on a mailbox's consumer side seals it.
func (i Input[A]) Close() {
	for _, mb := range i.mailboxes {
		mb.dropConsumerRef()
	}
}

// MapInput receives a value from i and applies f to it, leaving None as
// None. This is the functor map for Input.
func MapInput[A, B any](i Input[A], f func(A) B) kont.Eff[Option[B]] {
	return kont.Map(i.Recv(), func(oa Option[A]) Option[B] {
		v, ok := oa.Get()
		if !ok {
			return None[B]()
		}
		return Some(f(v))
	})
}

// BindInput receives a value from i and passes it, if present, to f,
// flattening the resulting Option. Unlike [RecvBind], the absence of a
// value from i remains observable as None rather than short-circuiting to
// B's zero value.
func BindInput[A, B any](i Input[A], f func(A) kont.Eff[Option[B]]) kont.Eff[Option[B]] {
	return kont.Bind(i.Recv(), func(oa Option[A]) kont.Eff[Option[B]] {
		v, ok := oa.Get()
		if !ok {
			return kont.Pure(None[B]())
		}
		return f(v)
	})
}
