// Package analysis aggregates per-slot attestation records into CSV-ready
// summary rows.
package analysis

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the run settings for the aggregation jobs. They are normally
// read from analysis.yaml; absent settings fall back to the defaults below.
type Settings struct {
	SlotsPerEpoch uint64           `yaml:"slots_per_epoch"`
	Workers       int              `yaml:"workers"`
	Missed        MissedSettings   `yaml:"missed"`
	Tabulate      TabulateSettings `yaml:"tabulate"`
}

type MissedSettings struct {
	DataDir       string `yaml:"data_dir"`
	ValidatorsCSV string `yaml:"validators_csv"`
	SubnetsCSV    string `yaml:"subnets_csv"`
	BySlotCSV     string `yaml:"by_slot_csv"`
}

type TabulateSettings struct {
	RewardsDir string `yaml:"rewards_dir"`
	BlocksDir  string `yaml:"blocks_dir"`
	SummaryCSV string `yaml:"summary_csv"`
}

func DefaultSettings() Settings {
	return Settings{
		SlotsPerEpoch: 32,
		Workers:       1,
		Missed: MissedSettings{
			DataDir:       "missed_atts",
			ValidatorsCSV: "missed_atts.csv",
			SubnetsCSV:    "missed_subnets.csv",
			BySlotCSV:     "missed_by_slot.csv",
		},
		Tabulate: TabulateSettings{
			RewardsDir: "block_stats",
			BlocksDir:  "blocks",
			SummaryCSV: "summary.csv",
		},
	}
}

// ParseSettings parses the given YAML document into Settings, applying
// defaults for omitted fields.
func ParseSettings(data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// LoadSettings reads Settings from the given file. A missing file yields the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		settings := DefaultSettings()
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	settings, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %q: %w", path, err)
	}
	return settings, nil
}

func (s *Settings) validate() error {
	if s.SlotsPerEpoch == 0 {
		return errors.New("slots_per_epoch must be positive")
	}
	if s.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if s.Missed.DataDir == "" {
		return errors.New("missing missed.data_dir")
	}
	if s.Missed.ValidatorsCSV == "" || s.Missed.SubnetsCSV == "" || s.Missed.BySlotCSV == "" {
		return errors.New("missing missed output path")
	}
	if s.Tabulate.RewardsDir == "" {
		return errors.New("missing tabulate.rewards_dir")
	}
	if s.Tabulate.BlocksDir == "" {
		return errors.New("missing tabulate.blocks_dir")
	}
	if s.Tabulate.SummaryCSV == "" {
		return errors.New("missing tabulate.summary_csv")
	}
	return nil
}
