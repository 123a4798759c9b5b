// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

// Option is the result of a Recv transaction: either a value the mailbox
// held, or None if the mailbox is sealed and drained.
type Option[A any] struct {
	value A
	ok    bool
}

// Some wraps a present value.
func Some[A any](v A) Option[A] {
	return Option[A]{value: v, ok: true}
}

// None is the absent value, returned once a mailbox is sealed and empty.
func None[A any]() Option[A] {
	var zero A
	return Option[A]{value: zero, ok: false}
}

// Get returns the wrapped value and whether it was present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[A]) IsNone() bool {
	return !o.ok
}
