package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/chunkbench/internal/format"
	"github.com/agbru/chunkbench/internal/report"
	"github.com/agbru/chunkbench/internal/ui"
)

// ResultPresenter defines the interface for presenting sweep results. It
// decouples the application shell from presentation concerns, allowing
// different output formats without modifying the run logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-worker comparison of the two
	// strategies' aggregates.
	PresentComparisonTable(reports []report.StrategyReport, out io.Writer)
}

// CLIResultPresenter implements ResultPresenter for terminal output with
// theme-aware styling.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable renders one row per worker count with both
// strategies' mean and population stddev (microseconds), marking the faster
// strategy of each row. Rows where either strategy is missing a
// configuration are skipped; WriteCSV already rejects such reports.
func (CLIResultPresenter) PresentComparisonTable(reports []report.StrategyReport, out io.Writer) {
	if len(reports) == 0 {
		return
	}
	styles := ui.GetTableStyles()

	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("--- Reduction Sweep Summary (microseconds) ---"))

	headers := make([]string, 0, len(reports)+2)
	headers = append(headers, "Workers")
	for _, r := range reports {
		headers = append(headers, r.Strategy+" avg ± std")
	}
	headers = append(headers, "Faster")

	widths := columnWidths(reports, headers)
	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = styles.Header.Render(padRight(h, widths[i]))
	}
	fmt.Fprintln(out, strings.Join(headerCells, "   "))

	rows := len(reports[0].Aggregates)
	for i := 0; i < rows; i++ {
		cells := make([]string, 0, len(headers))
		cells = append(cells, styles.Cell.Render(padRight(fmt.Sprintf("%d", reports[0].Aggregates[i].Workers), widths[0])))

		fastest := 0
		for r := 1; r < len(reports); r++ {
			if reports[r].Aggregates[i].Mean < reports[fastest].Aggregates[i].Mean {
				fastest = r
			}
		}
		for r, rep := range reports {
			cell := padRight(formatAggregate(rep.Aggregates[i]), widths[r+1])
			if r == fastest {
				cells = append(cells, styles.Best.Render(cell))
			} else {
				cells = append(cells, styles.Cell.Render(cell))
			}
		}
		cells = append(cells, styles.Best.Render(reports[fastest].Strategy))
		fmt.Fprintln(out, strings.Join(cells, "   "))
	}
}

// formatAggregate renders an aggregate as "mean ± std".
func formatAggregate(a report.Aggregate) string {
	return fmt.Sprintf("%s ± %s", format.FormatMicroseconds(a.Mean), format.FormatMicroseconds(a.StdDev))
}

// columnWidths computes the display width of each column from the headers
// and every rendered cell.
func columnWidths(reports []report.StrategyReport, headers []string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for i := range reports[0].Aggregates {
		w := len(fmt.Sprintf("%d", reports[0].Aggregates[i].Workers))
		if w > widths[0] {
			widths[0] = w
		}
		for r, rep := range reports {
			if w := len(formatAggregate(rep.Aggregates[i])); w > widths[r+1] {
				widths[r+1] = w
			}
		}
	}
	return widths
}

// padRight pads s with spaces to the given display length.
func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
