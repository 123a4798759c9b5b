// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox

// Spawn creates a new mailbox around buffer and returns its two endpoints
// plus a close function that seals the mailbox. The endpoints start with
// one reference apiece; Output.Close/Input.Close release them
// independently. The returned close function calls Output.Close and
// Input.Close on the two returned endpoints and then seals the mailbox,
// whatever clones are still open; it does not track Close calls made
// directly on those endpoints, so an endpoint closed that way is released
// a second time. Calls after the first do nothing.
func Spawn[A any](buffer Buffer[A]) (Output[A], Input[A], func()) {
	mb := newMailbox(buffer)
	out := Output[A]{mailboxes: []*Mailbox[A]{mb}}
	in := Input[A]{mailboxes: []*Mailbox[A]{mb}}
	closed := false
	closeFn := func() {
		if closed {
			return
		}
		closed = true
		out.Close()
		in.Close()
		mb.Seal()
	}
	return out, in, closeFn
}

// WithSpawn creates a mailbox around buffer, runs body with its two
// endpoints, and runs Spawn's close function (closing both endpoints and
// sealing the mailbox) once body returns, whether normally or by panic.
func WithSpawn[A, R any](buffer Buffer[A], body func(Output[A], Input[A]) R) R {
	out, in, closeFn := Spawn(buffer)
	defer closeFn()
	return body(out, in)
}
