// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

import "iter"

// FromInput adapts i into an iter.Seq that yields every value received
// until i is exhausted (sealed and drained). Each step of the sequence runs
// the Recv transaction to completion with [Exec], so consuming the sequence
// on its own goroutine blocks exactly the way a direct Exec(i.Recv()) loop
// would.
func FromInput[A any](i Input[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			v, ok := Exec(i.Recv()).Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ToOutput returns a consumer of an iter.Seq that sends every value from
// seq into o, running each Send transaction to completion with [Exec] and
// stopping early if o becomes sealed.
func ToOutput[A any](o Output[A]) func(seq iter.Seq[A]) {
	return func(seq iter.Seq[A]) {
		for v := range seq {
			if !Exec(o.Send(v)) {
				return
			}
		}
	}
}
