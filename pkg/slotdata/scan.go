package slotdata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/attestantio/go-eth2-client/spec/phase0"
)

// File is a per-slot record file discovered in an input directory.
type File struct {
	Name string
	Path string
	Slot phase0.Slot
}

// SlotFromFilename extracts the slot number from a record filename of the
// form <prefix>_<slot>.<ext>.
func SlotFromFilename(name string) (phase0.Slot, error) {
	base := strings.SplitN(name, ".", 2)[0]
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return 0, fmt.Errorf("filename %q is not of the form prefix_slot.ext", name)
	}
	slot, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("filename %q has a non-numeric slot: %w", name, err)
	}
	return phase0.Slot(slot), nil
}

// ScanDir lists the record files in dir, ordered by ascending slot.
// Subdirectories are not descended into.
func ScanDir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}
	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		slot, err := SlotFromFilename(entry.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Slot: slot,
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Slot < files[j].Slot
	})
	return files, nil
}
