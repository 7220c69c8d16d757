package slotdata

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/stretchr/testify/require"
)

func TestLoadAll_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	for slot := 10; slot < 26; slot++ {
		content := fmt.Sprintf(`{"all": [%d], "per_attestation": []}`, slot)
		name := fmt.Sprintf("missed_%d.json", slot)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	files, err := ScanDir(dir)
	require.NoError(t, err)

	for _, workers := range []int{1, 4} {
		records, err := LoadAll("test", files, workers, DecodeMissed)
		require.NoError(t, err)
		require.Len(t, records, len(files))
		for i, file := range files {
			require.Equal(t, []phase0.ValidatorIndex{phase0.ValidatorIndex(file.Slot)}, records[i].All)
		}
	}
}

func TestLoadAll_FailsFast(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "missed_1.json"), []byte(`{"all": [], "per_attestation": []}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "missed_2.json"), []byte(`{"all": []}`), 0644))
	files, err := ScanDir(dir)
	require.NoError(t, err)

	_, err = LoadAll("test", files, 2, DecodeMissed)
	require.ErrorContains(t, err, "missed_2.json")
	require.ErrorContains(t, err, `missing field "per_attestation"`)
}

func TestLoadAll_Empty(t *testing.T) {
	records, err := LoadAll("test", nil, 4, DecodeMissed)
	require.NoError(t, err)
	require.Empty(t, records)
}
