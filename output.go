// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import "code.hybscloud.com/kont"

// Output is a send handle referencing zero, one, or many mailboxes. The
// zero-mailbox value is the monoid identity, [MemptyOutput]; one mailbox is
// the plain case returned by [Spawn]; many mailboxes is the result of
// [Output.Mappend], the fan-out broadcast combinator.
type Output[A any] struct {
	mailboxes []*Mailbox[A]
}

// MemptyOutput is the monoid identity for Output: its Send always
// immediately returns false.
func MemptyOutput[A any]() Output[A] {
	return Output[A]{}
}

// Send is a transaction that writes a into every mailbox this endpoint
// references. With zero mailboxes it commits to false immediately; with one
// mailbox it is a plain send; with more than one, it is a monoid broadcast:
// every mailbox not yet resolved is attempted once per dispatch round, and
// the transaction only commits once each one has either accepted or sealed. A
// full-but-live mailbox paces the broadcast for every round until it either
// drains or seals; the eventual result is true iff at least one mailbox
// ever accepted.
func (o Output[A]) Send(a A) kont.Eff[bool] {
	switch len(o.mailboxes) {
	case 0:
		return kont.Pure(false)
	case 1:
		return kont.Perform(sendOp[A]{mb: o.mailboxes[0], value: a})
	default:
		return kont.Perform(&multiSendOp[A]{mbs: o.mailboxes, value: a})
	}
}

// Mappend returns an Output whose Send broadcasts to every mailbox both o
// and other reference, in a single transaction.
func (o Output[A]) Mappend(other Output[A]) Output[A] {
	merged := make([]*Mailbox[A], 0, len(o.mailboxes)+len(other.mailboxes))
	merged = append(merged, o.mailboxes...)
	merged = append(merged, other.mailboxes...)
	return Output[A]{mailboxes: merged}
}

// Clone returns a handle equivalent to o that holds its own reference on
// every mailbox o references, so that either handle may be Closed
// independently.
func (o Output[A]) Clone() Output[A] {
	for _, mb := range o.mailboxes {
		mb.addProducerRef()
	}
	return Output[A]{mailboxes: o.mailboxes}
}

// Close releases this handle's producer-side reference on every mailbox it
// references. The last Close on a mailbox's producer side seals it.
func (o Output[A]) Close() {
	for _, mb := range o.mailboxes {
		mb.dropProducerRef()
	}
}
