package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/beaconlabs/att-stats/pkg/analysis"
	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

type SummarizeCmd struct {
	Dir    string `help:"Directory of per-slot block reward records. Overrides the settings file."`
	Output string `help:"Path to write the summary CSV to. Overrides the settings file."`
}

func (c *SummarizeCmd) Run(logger *zap.Logger, settings *analysis.Settings) error {
	dir := settings.Tabulate.RewardsDir
	if c.Dir != "" {
		dir = c.Dir
	}
	output := settings.Tabulate.SummaryCSV
	if c.Output != "" {
		output = c.Output
	}

	files, err := slotdata.ScanDir(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no reward records in %q", dir)
	}
	records, err := slotdata.LoadAll("Decoding reward records", files, settings.Workers, slotdata.DecodeReward)
	if err != nil {
		return err
	}

	rows := make([]analysis.SummaryRow, len(files))
	for i, file := range files {
		rows[i] = analysis.Summarize(file.Slot, records[i])
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
