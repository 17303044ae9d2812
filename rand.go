package slotmap

import "math/rand/v2"

// RandSource supplies the uniformly random machine words used to seed and
// refresh a SlotMap's key salt. Quality need not be cryptographic; only
// statistical uniformity is required (see [SlotMap.InvalidateKeys]).
type RandSource interface {
	Uint64() uint64
}

// defaultRandSource adapts math/rand/v2's auto-seeded top-level generator,
// the same non-cryptographic source of randomness the teacher corpus reaches
// for whenever a scrambling word (not a security boundary) is needed.
type defaultRandSource struct{}

func (defaultRandSource) Uint64() uint64 {
	return rand.Uint64()
}
