// Package parquetout exports cleaned gauge series as Parquet for downstream
// columnar tooling. Missing values encode as NaN alongside an explicit
// validity column, so consumers never have to guess at sentinels.
package parquetout

import (
	"fmt"
	"math"
	"os"
	"time"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/harborline/tidal-analysis/internal/domain"
)

type seriesRow struct {
	TimestampISO string  `parquet:"name=timestamp_iso, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SeaLevel     float64 `parquet:"name=sea_level, type=DOUBLE"`
	SeaLevelRise float64 `parquet:"name=sea_level_rise, type=DOUBLE"`
	ValidLevel   bool    `parquet:"name=valid_level, type=BOOLEAN"`
	ValidRise    bool    `parquet:"name=valid_rise, type=BOOLEAN"`
}

// Marshal serializes a series to Snappy-compressed Parquet bytes, one row
// per reading in series order.
func Marshal(s domain.Series) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(seriesRow), 4)
	if err != nil {
		return nil, fmt.Errorf("parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, r := range s {
		row := seriesRow{
			TimestampISO: r.Timestamp.UTC().Format(time.RFC3339),
			SeaLevel:     valueOrNaN(r.SeaLevel),
			SeaLevelRise: valueOrNaN(r.SeaLevelRise),
			ValidLevel:   r.SeaLevel != nil,
			ValidRise:    r.SeaLevelRise != nil,
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, fmt.Errorf("parquet write: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("parquet finalize: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}

// WriteFile marshals the series and writes it to path.
func WriteFile(path string, s domain.Series) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
