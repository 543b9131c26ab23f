package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	apperrors "github.com/agbru/chunkbench/internal/errors"
)

// WriteCSV serializes the strategy reports in the layout the original
// plotting scripts parse: a "ThreadCount" header listing the swept worker
// counts, then one row per metric ("<Strategy>Avg", "<Strategy>Std") with
// one microsecond value per worker-count column.
//
// Parameters:
//   - w: The destination writer.
//   - reports: The strategy reports; all must cover the same worker counts.
//
// Returns:
//   - error: A ValidationError if the reports disagree on worker counts, or
//     the underlying write error.
func WriteCSV(w io.Writer, reports []StrategyReport) error {
	if len(reports) == 0 {
		return apperrors.NewValidationError("reports", "must not be empty")
	}
	workers := reports[0].Aggregates
	for _, r := range reports[1:] {
		if len(r.Aggregates) != len(workers) {
			return apperrors.NewValidationError("reports",
				"strategy %q covers %d configurations, strategy %q covers %d",
				reports[0].Strategy, len(workers), r.Strategy, len(r.Aggregates))
		}
		for i := range workers {
			if r.Aggregates[i].Workers != workers[i].Workers {
				return apperrors.NewValidationError("reports",
					"worker-count columns differ between strategies at index %d", i)
			}
		}
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(workers)+1)
	header = append(header, "ThreadCount")
	for _, a := range workers {
		header = append(header, strconv.Itoa(a.Workers))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		avgRow := make([]string, 0, len(r.Aggregates)+1)
		stdRow := make([]string, 0, len(r.Aggregates)+1)
		avgRow = append(avgRow, r.Strategy+"Avg")
		stdRow = append(stdRow, r.Strategy+"Std")
		for _, a := range r.Aggregates {
			avgRow = append(avgRow, formatValue(a.Mean))
			stdRow = append(stdRow, formatValue(a.StdDev))
		}
		if err := cw.Write(avgRow); err != nil {
			return err
		}
		if err := cw.Write(stdRow); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the report to path, creating parent directories as
// needed. A path ending in ".zst" (or compress=true) wraps the writer in a
// zstd encoder.
//
// A failed write surfaces as a SinkError; the in-memory reports stay valid,
// so callers can still present them on the terminal.
//
// Parameters:
//   - path: The destination file path.
//   - compress: Forces zstd compression regardless of the path suffix.
//   - reports: The strategy reports to serialize.
//
// Returns:
//   - error: A SinkError wrapping the underlying failure, or nil.
func WriteFile(path string, compress bool, reports []StrategyReport) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.SinkError{Path: path, Cause: err}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.SinkError{Path: path, Cause: err}
	}
	defer file.Close()

	var w io.Writer = file
	var enc *zstd.Encoder
	if compress || strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(file)
		if err != nil {
			return apperrors.SinkError{Path: path, Cause: err}
		}
		w = enc
	}

	if err := WriteCSV(w, reports); err != nil {
		if enc != nil {
			enc.Close()
		}
		return apperrors.SinkError{Path: path, Cause: err}
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return apperrors.SinkError{Path: path, Cause: err}
		}
	}
	if err := file.Close(); err != nil {
		return apperrors.SinkError{Path: path, Cause: err}
	}
	return nil
}

// formatValue renders a microsecond value the way the original emitter did:
// shortest representation that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
