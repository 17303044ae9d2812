package slotmap

import "testing"

func Test_Bitset_SetClearTestCount(t *testing.T) {
	b := newBitset(130)

	b.set(0)
	b.set(63)
	b.set(64)
	b.set(129)

	for _, i := range []uint64{0, 63, 64, 129} {
		if !b.test(i) {
			t.Fatalf("bit %d expected set", i)
		}
	}

	if got, want := b.count(), 4; got != want {
		t.Fatalf("count = %d, want %d", got, want)
	}

	b.clear(64)
	if b.test(64) {
		t.Fatal("bit 64 expected clear after clear()")
	}

	if got, want := b.count(), 3; got != want {
		t.Fatalf("count after clear = %d, want %d", got, want)
	}
}

func Test_Bitset_GrowPreservesExistingBitsAndAddressesNewOnes(t *testing.T) {
	b := newBitset(4)
	b.set(2)

	b.grow(200)

	if !b.test(2) {
		t.Fatal("growing must preserve existing bits")
	}

	b.set(199)
	if !b.test(199) {
		t.Fatal("grown bitset must address its new upper range")
	}
}

func Test_Bitset_ResetAllClearsEveryBit(t *testing.T) {
	b := newBitset(128)
	b.set(5)
	b.set(100)

	b.resetAll()

	if b.count() != 0 {
		t.Fatalf("count after resetAll = %d, want 0", b.count())
	}
}
