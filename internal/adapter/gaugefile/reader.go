// Package gaugefile reads BODC-style tide-gauge archive files into domain
// series. One file is one parse: a malformed row aborts the whole file with
// a parse failure carrying file and line context — there is no per-row
// skip-and-continue at this layer.
package gaugefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/harborline/tidal-analysis/internal/domain"
)

// headerLines is the fixed free-text header every archive file starts with.
const headerLines = 11

// fieldsPerRow is the fixed column layout: index, date, time, sea level,
// sea level rise.
const fieldsPerRow = 5

// Reader parses gauge archive files. The zero value is ready to use.
type Reader struct{}

// Parse reads one archive file into a series, preserving source row order.
// A path that does not exist yields domain.ErrNotFound with the offending
// path; every other malformed-input condition surfaces as a generic
// domain.ErrParseFailure.
func (Reader) Parse(path string) (domain.Series, error) {
	return Parse(path)
}

// Parse reads one archive file into a series. See [Reader.Parse].
func Parse(path string) (domain.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return parse(f, path)
}

func parse(r io.Reader, name string) (domain.Series, error) {
	series := domain.Series{}
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		if line <= headerLines {
			continue
		}

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		reading, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", domain.ErrParseFailure, name, line, err)
		}
		series = append(series, reading)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return series, nil
}

// parseRow decodes one whitespace-delimited data row. The date and time
// columns combine into the timestamp; the two numeric columns pass through
// flag sanitization before coercion.
func parseRow(text string) (domain.Reading, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerRow {
		return domain.Reading{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRow, len(fields))
	}

	ts, err := time.Parse(domain.TimestampLayout, fields[1]+" "+fields[2])
	if err != nil {
		return domain.Reading{}, fmt.Errorf("bad timestamp %q %q", fields[1], fields[2])
	}

	level, err := Sanitize(fields[3])
	if err != nil {
		return domain.Reading{}, fmt.Errorf("sea level: %v", err)
	}

	// The rise column follows the same flag rules but is unused downstream;
	// the archive never guarantees it numeric, so unparseable text maps to
	// missing rather than failing the file.
	rise, err := Sanitize(fields[4])
	if err != nil {
		rise = nil
	}

	return domain.Reading{Timestamp: ts, SeaLevel: level, SeaLevelRise: rise}, nil
}
