// Command tidal calculates tidal constituents and relative sea-level rise
// from a directory of tide-gauge archive files.
//
// Usage:
//
//	tidal <directory> [-v] [--config tidal.yaml]
//	tidal export <directory> -o series.parquet
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harborline/tidal-analysis/internal/adapter/gaugefile"
	"github.com/harborline/tidal-analysis/internal/adapter/parquetout"
	"github.com/harborline/tidal-analysis/internal/analysis"
	"github.com/harborline/tidal-analysis/internal/config"
	"github.com/harborline/tidal-analysis/internal/observability"
	"github.com/harborline/tidal-analysis/internal/pipeline"
)

var (
	cfgFile string
	verbose bool
	outPath string
)

var rootCmd = &cobra.Command{
	Use:          "tidal <directory>",
	Short:        "Calculate tidal constituents and sea-level rise from tide gauge data",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd.Context(), args[0])
	},
}

var exportCmd = &cobra.Command{
	Use:          "export <directory>",
	Short:        "Write the cleaned, joined series to a Parquet file",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default tidal.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	exportCmd.Flags().StringVarP(&outPath, "output", "o", "series.parquet", "output Parquet path")
	rootCmd.AddCommand(exportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// buildPipeline loads config and assembles the stages shared by both
// commands.
func buildPipeline() (*pipeline.Pipeline, *observability.Metrics, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	harmonic := analysis.NewHarmonic(nil)

	return pipeline.New(gaugefile.Reader{}, harmonic, logger, metrics, cfg), metrics, logger, nil
}

func runAnalyze(ctx context.Context, dir string) error {
	p, metrics, logger, err := buildPipeline()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	report, err := p.Run(ctx, dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	printReport(report)
	if verbose {
		metrics.LogSummary(logger)
	}
	return nil
}

func runExport(ctx context.Context, dir string) error {
	p, _, _, err := buildPipeline()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	series, paths, err := p.Ingest(ctx, dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	if err := parquetout.WriteFile(outPath, series); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	fmt.Printf("wrote %d rows from %d files to %s\n", len(series), len(paths), outPath)
	return nil
}

func printReport(r *pipeline.Report) {
	fmt.Printf("Station directory: %s\n", r.Directory)
	fmt.Printf("Files: %d  Rows: %d  Missing: %d\n", len(r.Files), r.Rows, r.Missing)
	if r.BlockRows > 0 {
		fmt.Printf("Longest contiguous block: %s .. %s (%d rows)\n",
			r.BlockStart.Format("2006/01/02 15:04:05"),
			r.BlockEnd.Format("2006/01/02 15:04:05"),
			r.BlockRows)
	}
	fmt.Printf("Sea-level rise: %.6e per day (p=%.4f)\n", r.Trend.Slope, r.Trend.PValue)
	if len(r.Constituents) > 0 {
		fmt.Printf("%-6s %12s %12s\n", "Const", "Amplitude", "Phase(rad)")
		for _, c := range r.Constituents {
			fmt.Printf("%-6s %12.4f %12.4f\n", c.Name, c.Amplitude, c.Phase)
		}
	}
}
