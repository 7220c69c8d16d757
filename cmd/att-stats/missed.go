package main

import (
	"fmt"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"go.uber.org/zap"

	"github.com/beaconlabs/att-stats/pkg/analysis"
	"github.com/beaconlabs/att-stats/pkg/beacon"
	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

type MissedCmd struct {
	Dir string `help:"Directory of per-slot missed-attestation records. Overrides the settings file."`
}

func (c *MissedCmd) Run(logger *zap.Logger, settings *analysis.Settings) error {
	dir := settings.Missed.DataDir
	if c.Dir != "" {
		dir = c.Dir
	}
	spec := beacon.Spec{SlotsPerEpoch: phase0.Slot(settings.SlotsPerEpoch)}

	files, err := slotdata.ScanDir(dir)
	if err != nil {
		return err
	}
	records, err := slotdata.LoadAll("Decoding missed attestations", files, settings.Workers, slotdata.DecodeMissed)
	if err != nil {
		return err
	}

	totals := analysis.NewMissedTotals(spec)
	for i, file := range files {
		totals.Add(file.Slot, records[i])
	}

	validatorRows := totals.ValidatorRows()
	subnetRows := totals.SubnetRows()
	if err := exportCSV(validatorRows, settings.Missed.ValidatorsCSV); err != nil {
		return fmt.Errorf("failed to export per-validator misses: %w", err)
	}
	if err := exportCSV(subnetRows, settings.Missed.SubnetsCSV); err != nil {
		return fmt.Errorf("failed to export per-subnet misses: %w", err)
	}
	if err := exportCSV(totals.PositionRows(), settings.Missed.BySlotCSV); err != nil {
		return fmt.Errorf("failed to export per-slot-position misses: %w", err)
	}

	logger.Info("Aggregated missed attestations",
		zap.Int("slots", len(files)),
		zap.Int("validators", len(validatorRows)),
		zap.Int("subnets", len(subnetRows)),
	)
	return nil
}
