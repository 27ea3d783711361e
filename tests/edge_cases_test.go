package vec_test

import (
	"testing"

	"github.com/pavanmanishd/vec"
)

// TestEdgeCases covers edge cases and potential issues through the
// public API only
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroSizeElementTypes", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for zero-size element type")
			}
		}()
		vec.New[struct{}]()
	})

	t.Run("LongGrowthSequence", func(t *testing.T) {
		v := vec.New[int]()
		defer v.Close()

		const n = 100000
		prevCap := 0
		for i := 0; i < n; i++ {
			v.Push(i)
			c := v.Cap()
			if c < v.Len() {
				t.Fatalf("push %d: capacity %d below length %d", i, c, v.Len())
			}
			if c < prevCap {
				t.Fatalf("push %d: capacity shrank from %d to %d", i, prevCap, c)
			}
			if c != prevCap && prevCap != 0 && c != 2*prevCap {
				t.Fatalf("push %d: capacity jumped from %d to %d, want exact doubling", i, prevCap, c)
			}
			prevCap = c
		}

		if v.Len() != n {
			t.Errorf("length after %d pushes = %d", n, v.Len())
		}
		s := v.Slice()
		for i := 0; i < n; i += 9973 {
			if s[i] != i {
				t.Errorf("element %d = %d, want %d", i, s[i], i)
			}
		}
	})

	t.Run("InterleavedStress", func(t *testing.T) {
		v := vec.New[uint32]()
		defer v.Close()

		// Deterministic push/pop churn checked against a plain slice
		var oracle []uint32
		state := uint32(0x9e3779b9)
		for i := 0; i < 20000; i++ {
			state = state*1664525 + 1013904223
			if state%3 != 0 || len(oracle) == 0 {
				v.Push(state)
				oracle = append(oracle, state)
			} else {
				got, ok := v.Pop()
				if !ok {
					t.Fatalf("step %d: Pop failed with %d elements live", i, len(oracle))
				}
				want := oracle[len(oracle)-1]
				oracle = oracle[:len(oracle)-1]
				if got != want {
					t.Fatalf("step %d: Pop = %d, want %d", i, got, want)
				}
			}
		}

		s := v.Slice()
		if len(s) != len(oracle) {
			t.Fatalf("final length = %d, want %d", len(s), len(oracle))
		}
		for i := range oracle {
			if s[i] != oracle[i] {
				t.Errorf("element %d = %d, want %d", i, s[i], oracle[i])
			}
		}
	})

	t.Run("DrainIsLIFO", func(t *testing.T) {
		v := vec.New[int]()
		defer v.Close()

		for i := 0; i < 100; i++ {
			v.Push(i)
		}
		for want := 99; want >= 0; want-- {
			got, ok := v.Pop()
			if !ok || got != want {
				t.Fatalf("Pop = %d, %v, want %d, true", got, ok, want)
			}
		}
		if _, ok := v.Pop(); ok {
			t.Error("Pop on drained Vec returned ok = true")
		}
	})

	t.Run("MoveLeavesSourceInert", func(t *testing.T) {
		src := vec.New[string]()
		src.Push("a")
		src.Push("b")

		dst := src.Move()
		defer dst.Close()

		if src.Len() != 0 || src.Cap() != 0 {
			t.Errorf("source after Move len = %d cap = %d, want 0 and 0", src.Len(), src.Cap())
		}

		// Closing the inert source must not disturb the moved allocation
		src.Close()
		if got := dst.Slice(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("moved elements = %v, want [a b]", got)
		}
	})

	t.Run("LargeElements", func(t *testing.T) {
		type block struct {
			id      int
			payload [120]byte
		}

		v := vec.New[block]()
		defer v.Close()

		for i := 0; i < 50; i++ {
			b := block{id: i}
			b.payload[0] = byte(i)
			b.payload[119] = byte(i + 1)
			v.Push(b)
		}

		for i, b := range v.All() {
			if b.id != i || b.payload[0] != byte(i) || b.payload[119] != byte(i+1) {
				t.Fatalf("element %d corrupted: id=%d payload=[%d...%d]", i, b.id, b.payload[0], b.payload[119])
			}
		}
	})

	t.Run("ReuseAfterClose", func(t *testing.T) {
		v := vec.New[int]()
		v.Push(1)
		v.Close()

		v.Push(2)
		if got := v.Slice(); len(got) != 1 || got[0] != 2 {
			t.Errorf("Slice after reuse = %v, want [2]", got)
		}
		if v.Cap() != 1 {
			t.Errorf("capacity after reuse = %d, want 1", v.Cap())
		}
		v.Close()
	})

	t.Run("ViewStaysInsideLength", func(t *testing.T) {
		v := vec.New[int]()
		defer v.Close()

		for i := 0; i < 5; i++ {
			v.Push(i)
		}
		v.Pop()
		v.Pop()

		s := v.Slice()
		if len(s) != 3 || cap(s) != 3 {
			t.Errorf("Slice len = %d cap = %d, want 3 and 3", len(s), cap(s))
		}
		count := 0
		for range v.All() {
			count++
		}
		if count != 3 {
			t.Errorf("All yielded %d elements, want 3", count)
		}
	})
}
