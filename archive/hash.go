package archive

import "fmt"

// hash1 folds the name right-to-left: h = h*seed + c. Arithmetic is 32-bit
// signed with sign-extended name bytes, truncated to a signed 16-bit value,
// matching the game's original code generation exactly.
func hash1(name string, seed int32) int16 {
	var h int32
	for i := len(name) - 1; i >= 0; i-- {
		h = h*seed + int32(int8(name[i]))
	}
	return int16(h)
}

// hash2 sums i*c over every character except the last, same sign rules.
func hash2(name string) int16 {
	var h int32
	for i := 0; i < len(name)-1; i++ {
		h += int32(i) * int32(int8(name[i]))
	}
	return int16(h)
}

// Hash computes the 32-bit record identifier for an ASCII filename.
//
// The two 16-bit halves are combined by signed addition, not OR: a negative
// low half borrows from the high half. This is a lossy fingerprint; record
// IDs with no known preimage are written out under their hex spelling.
func Hash(name string) uint32 {
	return uint32(int32(hash1(name, 0x101))<<16 + int32(hash2(name)))
}

// NameIndex maps record IDs back to the filenames that produced them.
type NameIndex map[uint32]string

// BuildNameIndex hashes each name into a reverse-lookup index.
func BuildNameIndex(names []string) NameIndex {
	idx := make(NameIndex, len(names))
	for _, name := range names {
		idx[Hash(name)] = name
	}
	return idx
}

// Name resolves id to a filename, falling back to the lowercase hex spelling
// of the id for unknown records.
func (idx NameIndex) Name(id uint32) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return fmt.Sprintf("%x", id)
}
