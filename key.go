package slotmap

// Key is an opaque, stable handle returned by [SlotMap.Add]. Its wire form
// is the owning slot index XOR'd with the container's current salt. Keys
// carry no generation counter: invalidating every outstanding key is done
// wholesale, by resalting (see [SlotMap.InvalidateKeys]), not per-key.
//
// The zero Key is not guaranteed to be invalid; always obtain keys from
// [SlotMap.Add] or [SlotMap.AssignNewKeys].
type Key uint64

// encodeKey scrambles a slot index into an external key using the current
// salt. decodeKey is its inverse (XOR is self-inverse).
func encodeKey(index uint64, salt uint64) Key {
	return Key(index ^ salt)
}

func decodeKey(k Key, salt uint64) uint64 {
	return uint64(k) ^ salt
}
