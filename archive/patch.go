package archive

// PatchExecutable returns a copy of exe with the engine table's first record
// ID zeroed. With the signature blanked the game finds no packed files and
// loads every asset loose from disk by filename instead.
func PatchExecutable(exe []byte) ([]byte, int, error) {
	offset, err := FindTableOffset(exe)
	if err != nil {
		return nil, 0, err
	}
	patched := make([]byte, len(exe))
	copy(patched, exe)
	for i := 0; i < 4; i++ {
		patched[offset+i] = 0
	}
	return patched, offset, nil
}
