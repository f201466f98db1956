// ColorStdoutWriter prints human-friendly, colorized samples to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"rcpower/internal/battery"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorStdoutWriter prints sample rows using ANSI colors, with a
// one-time configuration overview before the first row.
type ColorStdoutWriter struct {
	cfg  battery.Config
	out  io.Writer
	once sync.Once
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter(cfg battery.Config) *ColorStdoutWriter {
	return &ColorStdoutWriter{cfg: cfg, out: os.Stdout}
}

func (w *ColorStdoutWriter) printOverview() {
	fmt.Fprintln(w.out, "Monitor Configuration:")
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Capacity (mAh):\t%.1f\n", w.cfg.CapacitymAh)
	fmt.Fprintf(tw, "80%% reserve rule:\t%t\n", w.cfg.UseReserveRule)
	fmt.Fprintf(tw, "Effective capacity (mAh):\t%.1f\n", w.cfg.EffectiveCapacitymAh())
	fmt.Fprintf(tw, "Sampling (s):\t%.2f\n", w.cfg.SamplingIntervalS)
	fmt.Fprintf(tw, "Duration (s):\t%.1f\n", w.cfg.DurationS)
	fmt.Fprintf(tw, "Current range (A):\t%.2f - %.2f\n", w.cfg.CurrentMinA, w.cfg.CurrentMaxA)
	tw.Flush()
	fmt.Fprintln(w.out)
}

// Write prints a single colorized sample line.
func (w *ColorStdoutWriter) Write(row battery.SampleRow) error {
	w.once.Do(w.printOverview)
	eta := fmt.Sprintf("%seta=%.1fmin%s", colorMagenta, row.ETAMin, colorReset)
	if row.ETAMin >= battery.ETASentinel {
		eta = fmt.Sprintf("%seta=--%s", colorGray, colorReset)
	}
	fmt.Fprintf(w.out, "%s[%s]%s %st=%.1fs%s %sI=%.2fA%s %sused=%.1fmAh%s %srem=%.1fmAh%s %s\n",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, row.TimeS, colorReset,
		colorYellow, row.CurrentA, colorReset,
		colorCyan, row.ConsumedmAh, colorReset,
		colorGreen, row.RemainingmAh, colorReset,
		eta)
	return nil
}

// WriteBatch prints multiple sample lines.
func (w *ColorStdoutWriter) WriteBatch(rows []battery.SampleRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// WriteStatus prints lifecycle transitions.
func (w *ColorStdoutWriter) WriteStatus(st Status) error {
	w.once.Do(w.printOverview)
	c := colorGreen
	switch st.Phase {
	case PhasePaused:
		c = colorYellow
	case PhaseStopped:
		c = colorRed
	}
	line := fmt.Sprintf("%s[%s]%s %sphase=%s%s", colorGray, st.Timestamp.Format(time.RFC3339), colorReset, c, st.Phase, colorReset)
	if st.Signal != battery.SignalNone {
		line += fmt.Sprintf(" %ssignal=%s%s", colorRed, st.Signal, colorReset)
	}
	fmt.Fprintln(w.out, line)
	return nil
}
