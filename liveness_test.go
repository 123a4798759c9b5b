// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox_test

import (
	"testing"
	"time"

	"code.hybscloud.com/mbox"
)

// TestExecBlocksUntilSealCoverage exercises the iox.Backoff retry path
// inside Exec: the consumer starts before any value or Close arrives, so
// the first several DispatchTx attempts must return would-block before the
// producer's Close seals the mailbox and Recv settles to None.
func TestExecBlocksUntilSealCoverage(t *testing.T) {
	out, in, _ := mbox.Spawn(mbox.Unbounded[int]())

	done := make(chan struct{})
	go func() {
		defer close(done)
		v := mbox.Exec(in.Recv())
		if v.IsSome() {
			t.Error("expected None once mailbox sealed empty")
		}
	}()

	time.Sleep(50 * time.Millisecond) // give the goroutine time to hit bo.Wait()
	out.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Exec(Recv) did not settle after Close")
	}
}

// TestExecSendBlocksUntilDrainCoverage exercises the same backoff path on
// the send side: the producer targets a full Single mailbox, so the first
// several DispatchTx attempts must return would-block before the consumer
// drains it.
func TestExecSendBlocksUntilDrainCoverage(t *testing.T) {
	skipRace(t)
	out, in, closeFn := mbox.Spawn(mbox.Single[int]())
	defer closeFn()

	if !mbox.Exec(out.Send(1)) {
		t.Fatal("first send into empty Single should be accepted")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if !mbox.Exec(out.Send(2)) {
			t.Error("second send should eventually be accepted once drained")
		}
	}()

	time.Sleep(50 * time.Millisecond)
	got := mbox.Exec(in.Recv())
	if v, ok := got.Get(); !ok || v != 1 {
		t.Fatalf("got %+v, want Some(1)", got)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Exec(Send) did not settle after drain")
	}
}
