// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import (
	"code.hybscloud.com/kont"
)

// SendThen sends v on o and then continues with next.
// Fuses (Output[A]).Send(v) + kont.Then.
func SendThen[A, B any](o Output[A], v A, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(o.Send(v), next)
}

// RecvBind receives a value from i and passes it to f. If i is exhausted,
// f is not called and the zero value of B is returned instead — this is
// the fused convenience for the common case where a None short-circuits to
// "just stop"; when B's own absence must be observable, use [BindInput]
// instead, which returns Option[B].
func RecvBind[A, B any](i Input[A], f func(A) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(i.Recv(), func(oa Option[A]) kont.Eff[B] {
		v, ok := oa.Get()
		if !ok {
			var zero B
			return kont.Pure(zero)
		}
		return f(v)
	})
}

// CloseDone calls closeFn and then returns r. closeFn is expected to be an
// (Output[A]).Close or (Input[A]).Close: unlike Send/Recv, closing a handle
// is a plain reference-count decrement, not a retryable transaction, so it
// is not a kont.Perform effect. It still runs only when the transaction
// reaches this step, after every operation sequenced before it.
func CloseDone[R any](closeFn func(), r R) kont.Eff[R] {
	return kont.Map(kont.Pure(struct{}{}), func(struct{}) R {
		closeFn()
		return r
	})
}
