package archive

import (
	"fmt"
	"os"
	"path/filepath"
)

// Extractor drives the three extraction campaigns: the engine table embedded
// in the executable, per-car tables from <CAR>.LST, and per-scene tables
// from <SCENE>.LST. Archives are read whole; assets are small.
type Extractor struct {
	// Dir is the directory holding the game files. OutDir receives the
	// extracted assets. Either empty means the current directory.
	Dir    string
	OutDir string

	// Progress, when non-nil, is called with each output filename before it
	// is written.
	Progress func(name string)

	// dataFiles caches whole data archives across records.
	dataFiles map[string][]byte
}

// ExeName is the game executable holding the engine table.
const ExeName = "TD3.EXE"

// PlayDiskName is the play disk index file.
const PlayDiskName = "PLAYDISK.DAT"

// ExtractAll runs every campaign: engine assets, then each car and scene
// named by the play disk.
func (x *Extractor) ExtractAll() error {
	disk, err := x.LoadPlayDisk()
	if err != nil {
		return err
	}
	if err := x.ExtractEngine(); err != nil {
		return err
	}
	for _, car := range disk.Cars {
		if err := x.ExtractCar(car); err != nil {
			return err
		}
	}
	for _, scene := range disk.Scenes {
		if err := x.ExtractScene(scene); err != nil {
			return err
		}
	}
	return nil
}

// LoadPlayDisk reads and parses PLAYDISK.DAT from Dir.
func (x *Extractor) LoadPlayDisk() (*PlayDisk, error) {
	data, err := x.readFile(PlayDiskName)
	if err != nil {
		return nil, err
	}
	return ParsePlayDisk(data)
}

// ExtractEngine locates the record table inside the executable by signature
// scan and extracts its assets. The table has one more record than there are
// known engine filenames; the extra asset lands under its hex ID.
func (x *Extractor) ExtractEngine() error {
	exe, err := x.readFile(ExeName)
	if err != nil {
		return err
	}
	offset, err := FindTableOffset(exe)
	if err != nil {
		return fmt.Errorf("%w (%s)", err, ExeName)
	}
	records, err := ReadTable(exe, offset, EngineTableRecords)
	if err != nil {
		return err
	}
	return x.extractRecords(records, EngineNameIndex(), "")
}

// ExtractCar extracts one car's assets from <CAR>.DAT as indexed by
// <CAR>.LST.
func (x *Extractor) ExtractCar(car string) error {
	lst, err := x.readFile(car + ".LST")
	if err != nil {
		return err
	}
	records, err := ReadTable(lst, CarTableOffset, CarTableRecords)
	if err != nil {
		return fmt.Errorf("%s.LST: %w", car, err)
	}
	return x.extractRecords(records, CarNameIndex(car), car+".DAT")
}

// ExtractScene extracts one scene's assets from <SCENE>.DAT as indexed by
// <SCENE>.LST.
func (x *Extractor) ExtractScene(scene string) error {
	lst, err := x.readFile(scene + ".LST")
	if err != nil {
		return err
	}
	records, err := ReadTable(lst, SceneTableOffset, SceneTableRecords)
	if err != nil {
		return fmt.Errorf("%s.LST: %w", scene, err)
	}
	return x.extractRecords(records, SceneNameIndex(scene), scene+".DAT")
}

// extractRecords writes one output file per record. Records with an unknown
// data file selector are skipped. The stored size includes a trailing
// terminator byte that is not part of the asset and is dropped.
func (x *Extractor) extractRecords(records []Record, idx NameIndex, ownDataFile string) error {
	for _, rec := range records {
		dataName := rec.DataFilename(ownDataFile)
		if dataName == "" {
			continue
		}
		data, err := x.dataFile(dataName)
		if err != nil {
			return err
		}
		end := int(rec.Offset) + int(rec.Size) - 1
		if int(rec.Offset) > len(data) || end > len(data) || end < int(rec.Offset) {
			return fmt.Errorf("archive: record %#x spans [%d, %d) outside %s (%d bytes)",
				rec.ID, rec.Offset, end, dataName, len(data))
		}

		name := idx.Name(rec.ID)
		if x.Progress != nil {
			x.Progress(name)
		}
		if err := os.WriteFile(filepath.Join(x.OutDir, name), data[rec.Offset:end], 0o644); err != nil {
			return err
		}
	}
	return nil
}

// dataFile returns the named data archive, reading it at most once.
func (x *Extractor) dataFile(name string) ([]byte, error) {
	if data, ok := x.dataFiles[name]; ok {
		return data, nil
	}
	data, err := x.readFile(name)
	if err != nil {
		return nil, err
	}
	if x.dataFiles == nil {
		x.dataFiles = make(map[string][]byte)
	}
	x.dataFiles[name] = data
	return data, nil
}

func (x *Extractor) readFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(x.Dir, name))
}
