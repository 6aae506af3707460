// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/faultline"
)

const propertyN = 1000

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// TestPropertyRoundTripPreservesSink: detach(register(construct(S))) ≡ S,
// with contents unchanged by the trip and pass-through writes preserved.
func TestPropertyRoundTripPreservesSink(t *testing.T) {
	resetDispatch(t)
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		before := randString(rng)
		through := randString(rng)

		sink := faultline.NewBuffer(32)
		_, _ = sink.WriteString(before)
		h := faultline.New(sink)
		h.Register()
		_, _ = h.WriteString(through)

		got := h.Detach()
		if got != sink {
			t.Fatal("round trip returned a different sink")
		}
		if want := before + through; got.String() != want {
			t.Fatalf("got %q, want %q", got.String(), want)
		}
		if state := faultline.State(); state != faultline.SlotEmpty {
			t.Fatalf("got state %v, want %v", state, faultline.SlotEmpty)
		}
	}
}

// TestPropertyDispatchFollowsLastRegistration: whatever the history of
// registrations and stale detaches, the fault reaches exactly the most
// recently registered live handler.
func TestPropertyDispatchFollowsLastRegistration(t *testing.T) {
	prev := faultline.SwapHalt(func() {})
	t.Cleanup(func() {
		faultline.SwapHalt(prev)
		faultline.ResetDispatch()
	})

	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		faultline.ResetDispatch()

		n := rng.IntN(4) + 1
		sinks := make([]*faultline.Buffer, n)
		handlers := make([]*faultline.Handler[*faultline.Buffer], n)
		for i := range n {
			sinks[i] = faultline.NewBuffer(64)
			handlers[i] = faultline.New(sinks[i])
			handlers[i].Register()
		}
		last := n - 1

		// Detaching replaced handlers must not disturb the slot.
		for i := range n - 1 {
			if rng.IntN(2) == 0 {
				_ = handlers[i].Detach()
				handlers[i] = nil
			}
		}

		faultline.Fault(faultline.NewInfo("boom", "x.go", 1))

		for i := range n {
			want := ""
			if i == last {
				want = "panicked at x.go:1: boom"
			}
			if got := sinks[i].String(); got != want {
				t.Fatalf("handler %d: got %q, want %q", i, got, want)
			}
		}
	}
}

// TestPropertyStateMachine: a random walk of register/detach/close
// always agrees with the Empty/Registered model, and the walk never
// reaches Halted without a fault.
func TestPropertyStateMachine(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		faultline.ResetDispatch()

		var current *faultline.Handler[*faultline.Buffer]
		want := faultline.SlotEmpty

		steps := rng.IntN(8) + 1
		for range steps {
			switch rng.IntN(3) {
			case 0: // register a fresh handler
				current = faultline.New(faultline.NewBuffer(16))
				current.Register()
				want = faultline.SlotRegistered
			case 1: // detach the current handler
				if current != nil {
					_ = current.Detach()
					current = nil
					want = faultline.SlotEmpty
				}
			case 2: // close the current handler
				if current != nil {
					_ = current.Close()
					current = nil
					want = faultline.SlotEmpty
				}
			}
			if got := faultline.State(); got != want {
				t.Fatalf("got state %v, want %v", got, want)
			}
		}
	}
	faultline.ResetDispatch()
}
