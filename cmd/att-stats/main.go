package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/beaconlabs/att-stats/pkg/analysis"
)

type Globals struct {
	LogLevel string `env:"LOG_LEVEL" enum:"debug,info,warn,error" default:"info"          help:"Log level."`
	Settings string `env:"SETTINGS"                               default:"analysis.yaml" help:"Path to the analysis settings file. Defaults apply if absent."`
}

type CLI struct {
	Globals
	Missed    MissedCmd    `cmd:"" help:"Aggregates missed attestations by validator, subnet and slot position."`
	Summarize SummarizeCmd `cmd:"" help:"Tabulates per-slot attestation coverage and reward totals."`
	Tabulate  TabulateCmd  `cmd:"" help:"Tabulates rewards with salvaged attestations and reward ordering."`
}

func main() {
	// Parse .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}

	// Parse CLI.
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("att-stats"),
		kong.Description("Aggregates per-slot attestation reward and miss records into CSV summaries."),
		kong.UsageOnError(),
		kong.Vars{
			"version": "0.0.1",
		},
	)

	// Setup logger.
	logLevel, err := zapcore.ParseLevel(cli.Globals.LogLevel)
	if err != nil {
		log.Fatal(fmt.Errorf("failed to parse log level: %w", err))
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(colorable.NewColorableStdout()),
		logLevel,
	))

	// Load run settings.
	settings, err := analysis.LoadSettings(cli.Globals.Settings)
	ctx.FatalIfErrorf(err)

	// Run the CLI.
	err = ctx.Run(logger, settings)
	ctx.FatalIfErrorf(err)
}
