// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import "code.hybscloud.com/kont"

// Step evaluates a mailbox transaction until its first effect suspension.
// Returns (result, nil) if tx completes without performing any mailbox
// operation, or (zero, suspension) at its first operation, which has not
// been attempted yet: [Advance] attempts it. tx is reified to Expr-world internally
// because single-stepping is only defined there; callers keep writing
// transactions in Cont-world with Bind/Map/Perform as everywhere else.
func Step[R any](tx kont.Eff[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(kont.Reify(tx))
}

// Advance dispatches the suspended operation once more, without blocking.
// On success (nil error) the suspension is consumed and the transaction
// advances to the next effect or to completion. On would-block, the
// suspension is unconsumed and may be retried once the mailbox state has
// had a chance to change — the caller decides when, instead of an
// iox.Backoff loop parking the calling goroutine as [Exec] does.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	d, ok := susp.Op().(txDispatcher)
	if !ok {
		panic("mbox: unhandled effect in Advance")
	}
	v, err := d.DispatchTx()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
