// Package slotdata decodes the per-slot JSON records dumped by the beacon node
// instrumentation: missed-attestation records, block reward records and raw
// block records. Decoding is fail-fast: a malformed file or a missing field
// aborts with an error naming the file and field.
package slotdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/attestantio/go-eth2-client/spec/phase0"
)

// RewardMap maps rewarded validators to their attestation reward in Gwei.
type RewardMap map[phase0.ValidatorIndex]phase0.Gwei

// Sum returns the total reward across all validators in the map.
func (m RewardMap) Sum() phase0.Gwei {
	var total phase0.Gwei
	for _, reward := range m {
		total += reward
	}
	return total
}

// MissedRecord lists the validators that missed their attestation duty at a
// slot, with one entry per missed attestation naming its subnet.
type MissedRecord struct {
	All            []phase0.ValidatorIndex `json:"all"`
	PerAttestation []MissedAttestation     `json:"per_attestation"`
}

type MissedAttestation struct {
	Subnet uint64 `json:"subnet"`
}

func (r *MissedRecord) validate() error {
	if r.All == nil {
		return missingField("all")
	}
	if r.PerAttestation == nil {
		return missingField("per_attestation")
	}
	return nil
}

// RewardRecord describes the attestation rewards earned by a block: one reward
// map per included attestation, in block order, plus the validators rewarded
// from the previous and current epoch.
type RewardRecord struct {
	Graffiti              string      `json:"graffiti"`
	Total                 phase0.Gwei `json:"total"`
	PerAttestationRewards []RewardMap `json:"per_attestation_rewards"`
	PrevEpochRewards      RewardMap   `json:"prev_epoch_rewards"`
	CurrEpochRewards      RewardMap   `json:"curr_epoch_rewards"`
}

func (r *RewardRecord) validate() error {
	if r.PerAttestationRewards == nil {
		return missingField("per_attestation_rewards")
	}
	if r.PrevEpochRewards == nil {
		return missingField("prev_epoch_rewards")
	}
	if r.CurrEpochRewards == nil {
		return missingField("curr_epoch_rewards")
	}
	return nil
}

// BlockRecord is the raw beacon block response, reduced to the attestations
// included in the block body.
type BlockRecord struct {
	Data *BlockData `json:"data"`
}

type BlockData struct {
	Message *BlockMessage `json:"message"`
}

type BlockMessage struct {
	Body *BlockBody `json:"body"`
}

type BlockBody struct {
	Attestations []BlockAttestation `json:"attestations"`
}

type BlockAttestation struct {
	Data AttestationData `json:"data"`
}

type AttestationData struct {
	Slot QuotedSlot `json:"slot"`
}

// Attestations returns the block body's attestations in inclusion order.
func (r *BlockRecord) Attestations() []BlockAttestation {
	return r.Data.Message.Body.Attestations
}

func (r *BlockRecord) validate() error {
	switch {
	case r.Data == nil:
		return missingField("data")
	case r.Data.Message == nil:
		return missingField("data.message")
	case r.Data.Message.Body == nil:
		return missingField("data.message.body")
	case r.Data.Message.Body.Attestations == nil:
		return missingField("data.message.body.attestations")
	}
	return nil
}

// QuotedSlot is a slot number encoded as a quoted decimal string, as the
// beacon API encodes uint64s.
type QuotedSlot phase0.Slot

func (s *QuotedSlot) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("slot is not a quoted number: %w", err)
	}
	n, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid slot %q: %w", str, err)
	}
	*s = QuotedSlot(n)
	return nil
}

func (s QuotedSlot) Slot() phase0.Slot {
	return phase0.Slot(s)
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}

// DecodeMissed reads and validates a missed-attestation record.
func DecodeMissed(path string) (*MissedRecord, error) {
	var record MissedRecord
	if err := decode(path, &record, record.validate); err != nil {
		return nil, err
	}
	return &record, nil
}

// DecodeReward reads and validates a block reward record.
func DecodeReward(path string) (*RewardRecord, error) {
	var record RewardRecord
	if err := decode(path, &record, record.validate); err != nil {
		return nil, err
	}
	return &record, nil
}

// DecodeBlock reads and validates a raw block record.
func DecodeBlock(path string) (*BlockRecord, error) {
	var record BlockRecord
	if err := decode(path, &record, record.validate); err != nil {
		return nil, err
	}
	return &record, nil
}

func decode(path string, record any, validate func() error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}
	if err := json.Unmarshal(data, record); err != nil {
		return fmt.Errorf("failed to decode %q: %w", path, err)
	}
	if err := validate(); err != nil {
		return fmt.Errorf("invalid record %q: %w", path, err)
	}
	return nil
}
