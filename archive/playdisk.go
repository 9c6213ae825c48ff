package archive

import (
	"bytes"
	"errors"
	"fmt"
)

// PLAYDISK.DAT layout: car and scene counts as single bytes at 0xAE, car
// names as 6-byte null-padded fields from 0x12, scene names as 8-byte fields
// from 0x66.
const (
	playDiskCountsOffset = 0xae
	playDiskCarsOffset   = 0x12
	playDiskScenesOffset = 0x66

	playDiskCarNameLen   = 6
	playDiskSceneNameLen = 8
)

// PlayDisk indexes the cars and scenes installed on a play disk.
type PlayDisk struct {
	Cars   []string
	Scenes []string
}

// ErrBadPlayDisk is returned when PLAYDISK.DAT is too short for its own
// name tables.
var ErrBadPlayDisk = errors.New("archive: malformed PLAYDISK.DAT")

// ParsePlayDisk decodes the contents of PLAYDISK.DAT.
func ParsePlayDisk(data []byte) (*PlayDisk, error) {
	if len(data) < playDiskCountsOffset+2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadPlayDisk, len(data))
	}
	numCars := int(data[playDiskCountsOffset])
	numScenes := int(data[playDiskCountsOffset+1])

	cars, err := readNameTable(data, playDiskCarsOffset, playDiskCarNameLen, numCars)
	if err != nil {
		return nil, err
	}
	scenes, err := readNameTable(data, playDiskScenesOffset, playDiskSceneNameLen, numScenes)
	if err != nil {
		return nil, err
	}
	return &PlayDisk{Cars: cars, Scenes: scenes}, nil
}

// readNameTable reads count fixed-width ASCII fields, trimming each at its
// first NUL.
func readNameTable(data []byte, offset, width, count int) ([]string, error) {
	if offset+width*count > len(data) {
		return nil, fmt.Errorf("%w: name table at %#x overruns %d bytes",
			ErrBadPlayDisk, offset, len(data))
	}
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		field := data[offset+i*width : offset+(i+1)*width]
		if j := bytes.IndexByte(field, 0); j >= 0 {
			field = field[:j]
		}
		names = append(names, string(field))
	}
	return names, nil
}
