package slotdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/stretchr/testify/require"
)

func writeRecord(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDecodeMissed(t *testing.T) {
	path := writeRecord(t, "missed_100.json", `{
		"all": [1, 2, 3],
		"per_attestation": [{"subnet": 7}, {"subnet": 7}, {"subnet": 12}]
	}`)
	record, err := DecodeMissed(path)
	require.NoError(t, err)
	require.Equal(t, []phase0.ValidatorIndex{1, 2, 3}, record.All)
	require.Len(t, record.PerAttestation, 3)
	require.Equal(t, uint64(12), record.PerAttestation[2].Subnet)
}

func TestDecodeMissed_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name:        "malformed JSON",
			content:     `{"all": [1`,
			expectedErr: "failed to decode",
		},
		{
			name:        "missing all",
			content:     `{"per_attestation": []}`,
			expectedErr: `missing field "all"`,
		},
		{
			name:        "missing per_attestation",
			content:     `{"all": []}`,
			expectedErr: `missing field "per_attestation"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRecord(t, "missed_100.json", tt.content)
			_, err := DecodeMissed(path)
			require.ErrorContains(t, err, tt.expectedErr)
			require.ErrorContains(t, err, "missed_100.json")
		})
	}
}

func TestDecodeReward(t *testing.T) {
	path := writeRecord(t, "block_200.json", `{
		"graffiti": "lighthouse",
		"total": 12345,
		"per_attestation_rewards": [{"1": 10, "2": 20}, {}],
		"prev_epoch_rewards": {"1": 10},
		"curr_epoch_rewards": {"2": 20, "3": 30}
	}`)
	record, err := DecodeReward(path)
	require.NoError(t, err)
	require.Equal(t, "lighthouse", record.Graffiti)
	require.Equal(t, phase0.Gwei(12345), record.Total)
	require.Len(t, record.PerAttestationRewards, 2)
	require.Equal(t, phase0.Gwei(30), record.PerAttestationRewards[0].Sum())
	require.Empty(t, record.PerAttestationRewards[1])
	require.Len(t, record.PrevEpochRewards, 1)
	require.Len(t, record.CurrEpochRewards, 2)
}

func TestDecodeReward_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name:        "missing per_attestation_rewards",
			content:     `{"graffiti": "", "total": 0, "prev_epoch_rewards": {}, "curr_epoch_rewards": {}}`,
			expectedErr: `missing field "per_attestation_rewards"`,
		},
		{
			name:        "missing prev_epoch_rewards",
			content:     `{"per_attestation_rewards": [], "curr_epoch_rewards": {}}`,
			expectedErr: `missing field "prev_epoch_rewards"`,
		},
		{
			name:        "missing curr_epoch_rewards",
			content:     `{"per_attestation_rewards": [], "prev_epoch_rewards": {}}`,
			expectedErr: `missing field "curr_epoch_rewards"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRecord(t, "block_200.json", tt.content)
			_, err := DecodeReward(path)
			require.ErrorContains(t, err, tt.expectedErr)
		})
	}
}

func TestDecodeBlock(t *testing.T) {
	path := writeRecord(t, "block_300.json", `{
		"data": {"message": {"body": {"attestations": [
			{"data": {"slot": "298"}},
			{"data": {"slot": "299"}}
		]}}}
	}`)
	record, err := DecodeBlock(path)
	require.NoError(t, err)
	attestations := record.Attestations()
	require.Len(t, attestations, 2)
	require.Equal(t, phase0.Slot(298), attestations[0].Data.Slot.Slot())
	require.Equal(t, phase0.Slot(299), attestations[1].Data.Slot.Slot())
}

func TestDecodeBlock_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name:        "missing data",
			content:     `{}`,
			expectedErr: `missing field "data"`,
		},
		{
			name:        "missing message",
			content:     `{"data": {}}`,
			expectedErr: `missing field "data.message"`,
		},
		{
			name:        "missing body",
			content:     `{"data": {"message": {}}}`,
			expectedErr: `missing field "data.message.body"`,
		},
		{
			name:        "missing attestations",
			content:     `{"data": {"message": {"body": {}}}}`,
			expectedErr: `missing field "data.message.body.attestations"`,
		},
		{
			name:        "unquoted slot",
			content:     `{"data": {"message": {"body": {"attestations": [{"data": {"slot": 298}}]}}}}`,
			expectedErr: "slot is not a quoted number",
		},
		{
			name:        "non-numeric slot",
			content:     `{"data": {"message": {"body": {"attestations": [{"data": {"slot": "x"}}]}}}}`,
			expectedErr: `invalid slot "x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRecord(t, "block_300.json", tt.content)
			_, err := DecodeBlock(path)
			require.ErrorContains(t, err, tt.expectedErr)
		})
	}
}
