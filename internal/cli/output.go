package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/bigshift/internal/bench"
	"github.com/agbru/bigshift/internal/bignum"
	"github.com/agbru/bigshift/internal/format"
	"github.com/agbru/bigshift/internal/ui"
)

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Quiet prints only the resulting value.
	Quiet bool
	// Verbose adds the decimal form of both values.
	Verbose bool
}

// ShiftResult is everything needed to present one shift.
type ShiftResult struct {
	Before   bignum.Nat
	After    bignum.Nat
	Shift    uint
	Err      error
	Duration time.Duration
}

// FormatHex renders z as a 0x-prefixed hexadecimal literal.
func FormatHex(z *bignum.Nat) string {
	return "0x" + z.Big().Text(16)
}

// FormatWord renders a single word as fixed-width hex.
func FormatWord(w bignum.Word) string {
	return fmt.Sprintf("%016x", w)
}

// FormatQuietResult returns the single-line result printed in quiet mode.
func FormatQuietResult(res ShiftResult) string {
	if res.Err != nil {
		status, _ := bignum.StatusOf(res.Err)
		return status.String()
	}
	return FormatHex(&res.After)
}

// DisplayShiftResult prints res according to cfg.
func DisplayShiftResult(out io.Writer, res ShiftResult, cfg OutputConfig) {
	if cfg.Quiet {
		fmt.Fprintln(out, FormatQuietResult(res))
		return
	}

	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Title.Render(fmt.Sprintf("Shift left by %d bits", res.Shift)))
	fmt.Fprintln(out, FormatWordTable(&res.Before, &res.After))

	status, _ := bignum.StatusOf(res.Err)
	var statusText string
	switch {
	case res.Err == nil:
		statusText = st.OK.Render(status.String())
	case status == bignum.StatusOverflow:
		statusText = st.Warn.Render(status.String())
	default:
		statusText = st.Fail.Render(res.Err.Error())
	}

	fmt.Fprintf(out, "Status:   %s (%d)\n", statusText, int(status))
	fmt.Fprintf(out, "Bits:     %d -> %d of %d\n", res.Before.BitLen(), res.After.BitLen(), bignum.CapacityBits)
	fmt.Fprintf(out, "Result:   %s%s%s%s\n", ui.ColorBold(), ui.ColorBlue(), FormatHex(&res.After), ui.ColorReset())
	if cfg.Verbose {
		fmt.Fprintf(out, "Input:    %s%s%s\n", ui.ColorMagenta(), format.FormatNumberString(res.Before.Big().String()), ui.ColorReset())
		fmt.Fprintf(out, "Decimal:  %s%s%s\n", ui.ColorMagenta(), format.FormatNumberString(res.After.Big().String()), ui.ColorReset())
	}
	fmt.Fprintf(out, "Duration: %s%s%s\n", ui.ColorGrey(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	if res.Err != nil {
		fmt.Fprintf(out, "%s%v%s\n", ui.ColorYellow(), res.Err, ui.ColorReset())
	}
}

// FormatWordTable renders the significant words of before and after side by
// side, most significant first. Words that changed are highlighted.
func FormatWordTable(before, after *bignum.Nat) string {
	n := max(before.Len(), after.Len(), 1)
	rows := make([][]string, 0, n)
	changed := make([]bool, 0, n)
	for i := n - 1; i >= 0; i-- {
		b, a := before.Word(i), after.Word(i)
		rows = append(rows, []string{fmt.Sprintf("w[%d]", i), FormatWord(b), FormatWord(a)})
		changed = append(changed, a != b)
	}

	st := ui.CurrentStyles()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Headers("word", "before", "after").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case col == 0:
				return st.Dim
			case col == 2 && row >= 0 && row < len(changed) && changed[row]:
				return st.Changed
			}
			return st.Cell
		})
	return t.String()
}

// DisplayBenchReport prints a summary table for a benchmark run.
func DisplayBenchReport(out io.Writer, r bench.Report, cfg OutputConfig) {
	if cfg.Quiet {
		fmt.Fprintf(out, "%.0f\n", r.OpsPerSecond())
		return
	}

	st := ui.CurrentStyles()
	rows := [][]string{
		{"workers", fmt.Sprintf("%d", r.Workers)},
		{"iterations/worker", format.FormatUint(uint64(r.Iterations))},
		{"pool size", format.FormatUint(uint64(r.PoolSize))},
		{"seed", fmt.Sprintf("%d", r.Seed)},
		{"operations", format.FormatUint(r.Ops)},
		{"succeeded", format.FormatUint(r.Succeeded)},
		{"overflowed", format.FormatUint(r.Overflowed)},
		{"elapsed", format.FormatExecutionDuration(r.Elapsed)},
		{"throughput", format.FormatUint(uint64(r.OpsPerSecond())) + " ops/s"},
	}
	if cfg.Verbose {
		rows = append(rows,
			[]string{"allocated", format.FormatBytes(r.Memory.TotalAlloc)},
			[]string{"mallocs", format.FormatUint(r.Memory.Mallocs)},
			[]string{"gc cycles", fmt.Sprintf("%d", r.Memory.NumGC)},
			[]string{"host cpu", fmt.Sprintf("%.1f%%", r.System.CPUPercent)},
			[]string{"host memory", fmt.Sprintf("%.1f%%", r.System.MemPercent)},
			[]string{"cpu features", formatFeatures(r.CPUFeatures)},
		)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Headers("metric", "value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case col == 0:
				return st.Dim
			}
			return st.Cell
		})

	fmt.Fprintln(out, st.Title.Render("Shift benchmark"))
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "%sAll %s results passed the invariant check.%s\n",
		ui.ColorGreen(), format.FormatUint(r.Ops), ui.ColorReset())
}

func formatFeatures(f []string) string {
	if len(f) == 0 {
		return "none"
	}
	return strings.Join(f, " ")
}

// DisplayError prints err in the error color.
func DisplayError(out io.Writer, err error) {
	msg := strings.TrimSpace(err.Error())
	fmt.Fprintf(out, "%s%sError:%s %s\n", ui.ColorRed(), ui.ColorUnderline(), ui.ColorReset(), msg)
}
