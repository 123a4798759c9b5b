// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbox_test

import (
	"testing"

	"code.hybscloud.com/mbox"
)

func TestSpawnRoundtrip(t *testing.T) {
	out, in, closeFn := mbox.Spawn(mbox.Unbounded[string]())
	defer closeFn()

	mbox.Exec(out.Send("hi"))
	if v, ok := mbox.Exec(in.Recv()).Get(); !ok || v != "hi" {
		t.Fatalf("got %v, want Some(\"hi\")", v)
	}
}

func TestSpawnCloseFnReleasesBothSides(t *testing.T) {
	out, _, closeFn := mbox.Spawn(mbox.Unbounded[int]())
	closeFn()

	if mbox.Exec(out.Send(1)) {
		t.Fatal("send should be rejected once the spawn's close func has run")
	}
}

func TestSpawnCloseFnIsIdempotent(t *testing.T) {
	_, _, closeFn := mbox.Spawn(mbox.Unbounded[int]())
	closeFn()
	closeFn() // must not double-decrement an already-zero reference count
}

func TestWithSpawnClosesOnReturn(t *testing.T) {
	var out mbox.Output[int]
	result := mbox.WithSpawn(mbox.Unbounded[int](), func(o mbox.Output[int], i mbox.Input[int]) int {
		out = o
		mbox.Exec(o.Send(5))
		v, _ := mbox.Exec(i.Recv()).Get()
		return v
	})
	if result != 5 {
		t.Fatalf("got %d, want 5", result)
	}
	if mbox.Exec(out.Send(6)) {
		t.Fatal("send should be rejected once WithSpawn's body has returned")
	}
}

func TestWithSpawnClosesOnPanic(t *testing.T) {
	var out mbox.Output[int]
	func() {
		defer func() { recover() }()
		mbox.WithSpawn(mbox.Unbounded[int](), func(o mbox.Output[int], i mbox.Input[int]) struct{} {
			out = o
			panic("boom")
		})
	}()
	if mbox.Exec(out.Send(1)) {
		t.Fatal("send should be rejected once WithSpawn's body has panicked")
	}
}
