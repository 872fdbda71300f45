package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"dsconf/adapters/distribution"
	"dsconf/adapters/excel"
	"dsconf/adapters/ztables"
	"dsconf/domain/dataset"
	"dsconf/domain/stats"
	"dsconf/internal"
	"dsconf/internal/config"
	"dsconf/internal/render"
	"dsconf/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// .env is optional; real env vars and flags win
	_ = godotenv.Load()

	cfg := config.Default()
	var ztablesArgs string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "dsconf [flags] [dataset-file ...]",
		Short: "Analyze datasets for the interval associated with a confidence level",
		Long: `Analyze numeric datasets for the confidence interval about the
arithmetic mean and report whether the interval allows rejection of the
null hypothesis (the interval excludes zero).

Values are read from the selected whitespace-delimited column of each
input file, or from stdin when no files are given. Files ending in
.xlsx, .xlsm or .csv are read as spreadsheets (Sheet1 for Excel).

The critical value is resolved from Student's t for samples smaller
than 30 and from the standard normal otherwise, unless -z supplies it
directly or --ztables-path points at an external lookup tool.

When several files are given they are analyzed in order and the run
aborts on the first dataset that fails.

Example:
  dsconf -c 0.95 -p 2 ds1.txt ds2.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ZValueSet = cmd.Flags().Changed("z")
			cfg.ZTablesArgs = strings.Fields(ztablesArgs)
			cfg.Timeout = timeout

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.ValidateFiles(args); err != nil {
				return err
			}

			log := internal.NewLoggerFromVerbosity(cfg.Verbosity)
			return run(cmd.Context(), &cfg, args, log)
		},
	}

	cmd.Flags().Float64VarP(&cfg.ConfidenceLevel, "conf", "c", cfg.ConfidenceLevel,
		"confidence level such that 0 < c < 1")
	cmd.Flags().IntVarP(&cfg.Column, "col", "k", cfg.Column,
		"1-based column where the value exists")
	cmd.Flags().IntVarP(&cfg.Precision, "precision", "p", cfg.Precision,
		"decimal digits of precision for the mean and the interval bounds")
	cmd.Flags().IntVarP(&cfg.Threshold, "threshold", "t", cfg.Threshold,
		"minimum number of data points per dataset")
	cmd.Flags().Float64VarP(&cfg.ZValue, "z", "z", 0,
		"critical value to use directly, skipping the lookup")
	cmd.Flags().StringVar(&cfg.ZTablesPath, "ztables-path", cfg.ZTablesPath,
		"path to the external z/t lookup tool (default: in-process distributions)")
	cmd.Flags().StringVar(&ztablesArgs, "ztables-args", "",
		"extra options passed to the lookup tool")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.Timeout,
		"lookup tool timeout")
	cmd.Flags().BoolVar(&cfg.JSONOutput, "json", false,
		"emit each report as JSON instead of text")
	cmd.Flags().CountVarP(&cfg.Verbosity, "verbose", "v",
		"increase diagnostic verbosity (repeatable)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, files []string, log *internal.Logger) error {
	provider := selectProvider(cfg, log)

	if len(files) == 0 {
		ds, err := dataset.Read(os.Stdin, "stdin", cfg.LoadOptions(), log)
		if err != nil {
			return err
		}
		return analyze(ctx, cfg, provider, ds, log)
	}

	for _, fn := range files {
		ds, err := loadFile(fn, cfg, log)
		if err != nil {
			return err
		}
		if err := analyze(ctx, cfg, provider, ds, log); err != nil {
			return err
		}
	}
	return nil
}

func selectProvider(cfg *config.Config, log *internal.Logger) ports.CriticalValueProvider {
	switch {
	case cfg.ZValueSet:
		log.Info("using fixed critical value %g", cfg.ZValue)
		return distribution.Fixed(cfg.ZValue)
	case cfg.ZTablesPath != "":
		log.Info("using lookup tool %s", cfg.ZTablesPath)
		return ztables.NewProvider(cfg.ZTablesPath, cfg.ZTablesArgs, cfg.Timeout)
	default:
		return distribution.NewProvider()
	}
}

func loadFile(fn string, cfg *config.Config, log *internal.Logger) (*dataset.Dataset, error) {
	log.Info("processing %s", fn)

	if excel.IsSpreadsheet(fn) {
		return excel.NewDataReader(fn).ReadDataset(cfg.LoadOptions(), log)
	}

	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", fn, err)
	}
	defer f.Close()

	return dataset.Read(f, fn, cfg.LoadOptions(), log)
}

func analyze(ctx context.Context, cfg *config.Config, provider ports.CriticalValueProvider,
	ds *dataset.Dataset, log *internal.Logger) error {

	log.Info("size = %d", ds.Size())

	critical, err := provider.CriticalValue(ctx, ds.Size(), cfg.ConfidenceLevel)
	if err != nil {
		return err
	}
	log.Info("critical value = %g", critical)

	report, err := stats.Analyze(ds, cfg.ConfidenceLevel, critical)
	if err != nil {
		return err
	}

	record := stats.NewRunRecord(report)
	log.Debug("analysis %s completed for %s", record.AnalysisID, ds.Source)

	if cfg.JSONOutput {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	return render.Render(os.Stdout, report, cfg.Precision)
}
