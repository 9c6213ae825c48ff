// Package archive locates, parses and extracts the game's multiplexed data
// archives.
//
// Assets are identified by a 32-bit hash of their filename (see Hash) and
// located by fixed-size tables of 14-byte records. The engine table lives
// inside the game executable and is found by scanning for the first record's
// ID, which doubles as a signature; per-car and per-scene tables live at
// fixed offsets inside the corresponding .LST files.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the packed on-disk size of one Record (no padding).
const RecordSize = 14

// Data file selectors stored in Record.ArchiveFileID. 'a'..'c' select the
// shared DATA?.DAT archives; 'd' and 'e' select the data file belonging to
// the car or scene whose .LST the record came from. Any other value marks a
// record to skip.
const (
	FileDataA = 'a'
	FileDataB = 'b'
	FileDataC = 'c'
	FileOwnD  = 'd'
	FileOwnE  = 'e'
)

// Record is one archive table entry locating a packed asset.
type Record struct {
	ID            uint32 // filename hash (see Hash)
	ArchiveFileID int16  // data file selector, see File* constants
	Offset        uint32 // byte offset inside the selected data file
	Size          uint32 // stored size; the final byte is an on-disk terminator
}

// ErrShortTable is returned when a buffer cannot hold the requested table.
var ErrShortTable = errors.New("archive: record table extends past end of data")

// ParseRecord decodes one packed little-endian record. b must hold at least
// RecordSize bytes.
func ParseRecord(b []byte) Record {
	return Record{
		ID:            binary.LittleEndian.Uint32(b[0:4]),
		ArchiveFileID: int16(binary.LittleEndian.Uint16(b[4:6])),
		Offset:        binary.LittleEndian.Uint32(b[6:10]),
		Size:          binary.LittleEndian.Uint32(b[10:14]),
	}
}

// ReadTable parses n consecutive records starting at offset inside data.
func ReadTable(data []byte, offset, n int) ([]Record, error) {
	end := offset + n*RecordSize
	if offset < 0 || end > len(data) {
		return nil, fmt.Errorf("%w: %d records at offset %#x in %d bytes",
			ErrShortTable, n, offset, len(data))
	}
	records := make([]Record, n)
	for i := range records {
		records[i] = ParseRecord(data[offset+i*RecordSize:])
	}
	return records, nil
}

// DataFilename maps the record's selector to a concrete data filename.
// ownDataFile is the "<CAR>.DAT" or "<SCENE>.DAT" name used for the 'd'/'e'
// selectors; it is unused for the engine table. The empty string means the
// record does not reference any data file and should be skipped.
func (r Record) DataFilename(ownDataFile string) string {
	switch r.ArchiveFileID {
	case FileDataA:
		return "DATAA.DAT"
	case FileDataB:
		return "DATAB.DAT"
	case FileDataC:
		return "DATAC.DAT"
	case FileOwnD, FileOwnE:
		return ownDataFile
	default:
		return ""
	}
}
