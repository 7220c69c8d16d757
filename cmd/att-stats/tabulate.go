package main

import (
	"fmt"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"go.uber.org/zap"

	"github.com/beaconlabs/att-stats/pkg/analysis"
	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

type TabulateCmd struct {
	RewardsDir string `help:"Directory of per-slot block reward records. Overrides the settings file."`
	BlocksDir  string `help:"Directory of per-slot raw block records. Overrides the settings file."`
	Output     string `help:"Path to write the summary CSV to. Overrides the settings file."`
}

func (c *TabulateCmd) Run(logger *zap.Logger, settings *analysis.Settings) error {
	rewardsDir := settings.Tabulate.RewardsDir
	if c.RewardsDir != "" {
		rewardsDir = c.RewardsDir
	}
	blocksDir := settings.Tabulate.BlocksDir
	if c.BlocksDir != "" {
		blocksDir = c.BlocksDir
	}
	output := settings.Tabulate.SummaryCSV
	if c.Output != "" {
		output = c.Output
	}

	rewardFiles, err := slotdata.ScanDir(rewardsDir)
	if err != nil {
		return err
	}
	if len(rewardFiles) == 0 {
		return fmt.Errorf("no reward records in %q", rewardsDir)
	}

	// Join the raw block records with the reward records by slot.
	blockFiles, err := slotdata.ScanDir(blocksDir)
	if err != nil {
		return err
	}
	blocksBySlot := make(map[phase0.Slot]slotdata.File, len(blockFiles))
	for _, file := range blockFiles {
		blocksBySlot[file.Slot] = file
	}
	matchedBlocks := make([]slotdata.File, len(rewardFiles))
	for i, file := range rewardFiles {
		block, ok := blocksBySlot[file.Slot]
		if !ok {
			return fmt.Errorf("no block record for slot %d (reward record %q)", file.Slot, file.Name)
		}
		matchedBlocks[i] = block
	}

	rewards, err := slotdata.LoadAll("Decoding reward records", rewardFiles, settings.Workers, slotdata.DecodeReward)
	if err != nil {
		return err
	}
	blocks, err := slotdata.LoadAll("Decoding block records", matchedBlocks, settings.Workers, slotdata.DecodeBlock)
	if err != nil {
		return err
	}

	// The parent slot is the previously processed file's slot, not the
	// block's chain parent. Gaps in the input set make the two diverge.
	parentSlot := rewardFiles[0].Slot - 1
	rows := make([]analysis.TabulatedRow, len(rewardFiles))
	for i, file := range rewardFiles {
		if file.Slot != parentSlot+1 {
			logger.Warn("gap in input slots: parent slot is the previous file's slot, not the chain parent",
				zap.Uint64("slot", uint64(file.Slot)),
				zap.Uint64("parent_slot", uint64(parentSlot)),
			)
		}
		rows[i] = analysis.Tabulate(file.Slot, parentSlot, rewards[i], blocks[i])
		parentSlot = file.Slot
	}
	if err := exportCSV(rows, output); err != nil {
		return err
	}

	logger.Info("Tabulated block rewards",
		zap.Int("slots", len(rows)),
		zap.String("output", output),
	)
	return nil
}
