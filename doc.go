// Package slotmap provides a contiguous-storage slot map: a container that
// keeps a homogeneous collection of values densely packed in a prefix of an
// array — so the live set is always available as a flat contiguous slice —
// while handing out opaque, stable keys at insertion time that remain valid
// across arbitrary removals of other values.
//
// It is meant as the backing store for things like an entity system, a
// connection table, or any hot set where tight-slice iteration and stable
// external identity both matter.
//
// # Basic Usage
//
//	sm, err := slotmap.New[Entity](slotmap.Config{
//	    Capacity:   1024,
//	    GrowPolicy: slotmap.Doubling,
//	})
//	if err != nil {
//	    // Capacity / type misconfiguration; fix at the call site.
//	}
//
//	k, err := sm.Add(Entity{HP: 10})
//	v, ok := sm.Get(k)
//	sm.Remove(k)
//
//	for _, v := range sm.Slice() {
//	    // tight scan over the live prefix
//	}
//
// # Concurrency
//
// SlotMap is not safe for concurrent use. All methods are synchronous and
// non-blocking; there is no cancellation or timeout model. Exclusive
// ownership is required across any mutating call ([SlotMap.Add],
// [SlotMap.Remove], [SlotMap.Clear], [SlotMap.InvalidateKeys],
// [SlotMap.AssignNewKeys], [SlotMap.Drain], [SlotMap.GetMut]). Shared
// read-only access from multiple observers is fine as long as no mutator is
// active.
//
// # Error Handling
//
// Two categories of failure:
//
// Construction errors ([ErrTypeTooSmall], [ErrNotBitwiseCopyable]): returned
// from [New] when the element type cannot be safely stored in a slot cell.
// These are programmer errors — fix the type, not the input.
//
// Operational signals: [SlotMap.Add] returns [ErrFull] when the map is at
// capacity under [Fixed] growth. Lookups ([SlotMap.Get], [SlotMap.GetMut],
// [SlotMap.Remove], [SlotMap.GetSliceIndex]) report a stale or invalid key
// by returning a boolean "found" rather than an error — there is nothing
// exceptional about looking up a key that has since been removed.
package slotmap
