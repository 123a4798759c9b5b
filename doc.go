// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mbox provides a concurrent mailbox primitive for brokering values
// between independent producer and consumer goroutines, via algebraic effects
// on [code.hybscloud.com/kont].
//
// A [Mailbox] pairs a buffering discipline with a sealed flag and two liveness
// counters. Producers and consumers never touch a Mailbox directly; they hold
// [Output] and [Input] endpoints, and every operation on an endpoint is a
// [code.hybscloud.com/kont.Eff] transaction that either commits or retries.
//
// # Architecture
//
//   - Buffers: [Unbounded], [Bounded], [Single], [Latest], [Newest], [New] are
//     the six buffering disciplines. [Bounded] and [Single] are backed by a
//     lock-free MPMC queue via [code.hybscloud.com/lfq]; the rest fall back to a mutex where
//     no lock-free primitive in the stack fits the discipline.
//   - Non-blocking core: [Mailbox.trySend]/[Mailbox.tryRecv] are single,
//     non-blocking attempts, exactly like this organization's session
//     transport's DispatchSession.
//   - Transactions: operations are dispatched through [code.hybscloud.com/kont]
//     effect operations and retried with [code.hybscloud.com/iox.Backoff] until
//     they commit — see [Exec].
//   - Composition: [Output.Mappend] broadcasts a send across mailboxes in one
//     transaction; [Input.Or] races a receive across mailboxes in one
//     transaction.
//
// # API Topologies
//
//   - Endpoints: [Output.Send], [Input.Recv]. Delegation is [Output.Send]/
//     [Input.Recv] of an [Output]/[Input] itself.
//   - Fused constructors: [SendThen], [RecvBind], [CloseDone].
//   - Lifecycle: [Spawn], [WithSpawn], [Output.Clone]/[Output.Close],
//     [Input.Clone]/[Input.Close].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate a transaction one effect at a
//     time, for callers that cannot block the calling goroutine.
//   - Blocking: [Exec] waits past would-block using adaptive backoff.
//   - Streams: [FromInput] and [ToOutput] adapt an endpoint to/from an
//     [iter.Seq], for use by an external pipeline framework.
//
// # Example
//
//	out, in, seal := mbox.Spawn(mbox.Bounded[int](4))
//	defer seal()
//	go func() {
//		for i := range 5 {
//			if !mbox.Exec(out.Send(i)) {
//				return
//			}
//		}
//		out.Close()
//	}()
//	for v := range mbox.FromInput(in) {
//		println(v)
//	}
package mbox
