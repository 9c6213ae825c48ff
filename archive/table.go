package archive

import (
	"encoding/binary"
	"errors"
)

// TableMagic is the first engine-table record's ID as it appears on disk:
// the hash of ACCOCOLR.BIN (0x4C4D0EEF), stored little-endian, re-read
// big-endian for comparison. It is the signature scanned for to locate the
// table inside the game executable.
const TableMagic = 0xEF0E4D4C

// Engine table geometry. The table holds one record per engine filename plus
// a trailing record whose name is unknown; that last asset is extracted
// under its hex ID.
const EngineTableRecords = 49

// Fixed table offsets inside the per-car and per-scene .LST files.
const (
	CarTableOffset  = 0x1d1
	CarTableRecords = 15

	SceneTableOffset  = 0x4d0
	SceneTableRecords = 29
)

// ErrTableNotFound is returned when the signature scan exhausts the
// executable without finding TableMagic.
var ErrTableNotFound = errors.New("archive: file info table not found in executable")

// FindTableOffset scans exe byte by byte for the engine table signature and
// returns the offset of the first match.
func FindTableOffset(exe []byte) (int, error) {
	for offset := 0; offset+4 <= len(exe); offset++ {
		if binary.BigEndian.Uint32(exe[offset:]) == TableMagic {
			return offset, nil
		}
	}
	return 0, ErrTableNotFound
}
