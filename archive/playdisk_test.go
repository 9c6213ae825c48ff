package archive

import (
	"errors"
	"reflect"
	"testing"
)

// buildPlayDisk assembles a synthetic PLAYDISK.DAT with the given car and
// scene names in their fixed-width null-padded fields.
func buildPlayDisk(cars, scenes []string) []byte {
	data := make([]byte, 0x200)
	data[playDiskCountsOffset] = byte(len(cars))
	data[playDiskCountsOffset+1] = byte(len(scenes))
	for i, car := range cars {
		copy(data[playDiskCarsOffset+i*playDiskCarNameLen:], car)
	}
	for i, scene := range scenes {
		copy(data[playDiskScenesOffset+i*playDiskSceneNameLen:], scene)
	}
	return data
}

func TestParsePlayDisk(t *testing.T) {
	cars := []string{"VETTE", "TESTA"}
	scenes := []string{"SCOTT", "CALI"}

	disk, err := ParsePlayDisk(buildPlayDisk(cars, scenes))
	if err != nil {
		t.Fatalf("ParsePlayDisk: %v", err)
	}
	if !reflect.DeepEqual(disk.Cars, cars) {
		t.Errorf("Cars = %q, want %q", disk.Cars, cars)
	}
	if !reflect.DeepEqual(disk.Scenes, scenes) {
		t.Errorf("Scenes = %q, want %q", disk.Scenes, scenes)
	}
}

func TestParsePlayDisk_Empty(t *testing.T) {
	disk, err := ParsePlayDisk(buildPlayDisk(nil, nil))
	if err != nil {
		t.Fatalf("ParsePlayDisk: %v", err)
	}
	if len(disk.Cars) != 0 || len(disk.Scenes) != 0 {
		t.Errorf("got %d cars, %d scenes, want none", len(disk.Cars), len(disk.Scenes))
	}
}

func TestParsePlayDisk_TooShort(t *testing.T) {
	if _, err := ParsePlayDisk(make([]byte, 0x40)); !errors.Is(err, ErrBadPlayDisk) {
		t.Errorf("error = %v, want ErrBadPlayDisk", err)
	}

	// Counts present but claiming more names than the buffer holds.
	data := make([]byte, playDiskCountsOffset+2)
	data[playDiskCountsOffset] = 200
	if _, err := ParsePlayDisk(data); !errors.Is(err, ErrBadPlayDisk) {
		t.Errorf("overrun error = %v, want ErrBadPlayDisk", err)
	}
}
