// Package pipeline orchestrates one analysis run: scan a directory of gauge
// archive files, parse and join them, pick the analysis window, and derive
// the sea-level trend and tidal constituents.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harborline/tidal-analysis/internal/analysis"
	"github.com/harborline/tidal-analysis/internal/config"
	"github.com/harborline/tidal-analysis/internal/domain"
	"github.com/harborline/tidal-analysis/internal/observability"
)

// Parser turns one raw gauge archive file into a series.
type Parser interface {
	Parse(path string) (domain.Series, error)
}

// ConstituentAnalyzer fits named tidal constituents to a cleaned series
// against a reference epoch.
type ConstituentAnalyzer interface {
	Analyze(s domain.Series, names []string, epoch time.Time) (amps, phases []float64, err error)
}

// Pipeline wires the parse-join-analyze stages together.
type Pipeline struct {
	parser   Parser
	harmonic ConstituentAnalyzer
	logger   *slog.Logger
	metrics  *observability.Metrics
	cfg      *config.Config
}

// New creates a Pipeline with the given stages and observability.
func New(parser Parser, harmonic ConstituentAnalyzer, logger *slog.Logger, metrics *observability.Metrics, cfg *config.Config) *Pipeline {
	return &Pipeline{
		parser:   parser,
		harmonic: harmonic,
		logger:   logger,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// Report is the result of one analysis run over a station directory.
type Report struct {
	Directory string
	Files     []string
	Rows      int
	Missing   int

	// Longest contiguous block of identically-classified readings.
	BlockStart time.Time
	BlockEnd   time.Time
	BlockRows  int

	Trend        analysis.Trend
	Constituents []domain.ConstituentResult

	GeneratedAt time.Time
}

// Ingest parses every file in dir matching the configured pattern, in
// lexical name order, and joins them into one series with earlier files
// first. It returns the joined series and the file paths it consumed.
func (p *Pipeline) Ingest(ctx context.Context, dir string) (domain.Series, []string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil, fmt.Errorf("input directory: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, p.cfg.FilePattern))
	if err != nil {
		return nil, nil, fmt.Errorf("bad file pattern %q: %w", p.cfg.FilePattern, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no gauge files matching %q in %s", p.cfg.FilePattern, dir)
	}

	var joined domain.Series
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		series, err := p.parser.Parse(path)
		if err != nil {
			p.metrics.ParseFailures.Inc()
			return nil, nil, err
		}

		p.metrics.FilesParsed.Inc()
		p.metrics.RowsParsed.Add(float64(len(series)))
		p.metrics.ValuesMissing.Add(float64(series.Missing()))
		p.logger.Debug("parsed gauge file", "path", path, "rows", len(series), "missing", series.Missing())

		if joined == nil {
			joined = series
			continue
		}
		// Combine prepends its second argument, so the accumulated data
		// stays ahead of the newly parsed file.
		joined, err = domain.Combine(series, joined)
		if err != nil {
			return nil, nil, fmt.Errorf("joining %s: %w", path, err)
		}
	}

	return joined, paths, nil
}

// Run executes a full analysis over dir and assembles the report. The trend
// fits all valid readings; the harmonic fit runs on the mean-centered
// analysis window with the window start as reference epoch.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Report, error) {
	start := time.Now()

	joined, paths, err := p.Ingest(ctx, dir)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Directory: dir,
		Files:     paths,
		Rows:      len(joined),
		Missing:   joined.Missing(),
	}

	block := domain.LongestContiguous(joined)
	if len(block) > 0 {
		report.BlockStart = block[0].Timestamp
		report.BlockEnd = block[len(block)-1].Timestamp
		report.BlockRows = len(block)
	}

	trend, err := analysis.EstimateTrend(joined)
	if err != nil {
		return nil, fmt.Errorf("sea-level trend: %w", err)
	}
	report.Trend = trend

	window, err := p.analysisWindow(joined, block)
	if err != nil {
		return nil, err
	}
	if window.Valid() == 0 {
		// The longest run can legitimately be a run of missing values;
		// there is nothing to fit constituents against.
		p.logger.Warn("analysis window holds no valid readings, skipping harmonic fit")
	} else {
		epoch := window[0].Timestamp
		amps, phases, err := p.harmonic.Analyze(window, p.cfg.Constituents, epoch)
		if err != nil {
			return nil, fmt.Errorf("harmonic analysis: %w", err)
		}
		report.Constituents = make([]domain.ConstituentResult, len(p.cfg.Constituents))
		for i, name := range p.cfg.Constituents {
			report.Constituents[i] = domain.ConstituentResult{Name: name, Amplitude: amps[i], Phase: phases[i]}
		}
	}

	report.GeneratedAt = domain.Now()
	p.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	return report, nil
}

// analysisWindow picks and centers the harmonic fit window: the configured
// calendar year when set, otherwise the longest contiguous block.
func (p *Pipeline) analysisWindow(joined, block domain.Series) (domain.Series, error) {
	if p.cfg.Year != 0 {
		window, err := domain.ExtractYear(p.cfg.Year, joined)
		if err != nil {
			return nil, fmt.Errorf("extracting year %d: %w", p.cfg.Year, err)
		}
		return window, nil
	}

	if len(block) == 0 {
		return nil, nil
	}
	window, err := domain.ExtractRange(
		block[0].Timestamp.Format("20060102"),
		block[len(block)-1].Timestamp.Format("20060102"),
		block,
	)
	if err != nil {
		return nil, fmt.Errorf("centering contiguous block: %w", err)
	}
	return window, nil
}
