package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"rcpower/internal/battery"
)

// CSVHeader is the column layout of exported sample tables.
var CSVHeader = []string{"Time (s)", "Current (A)", "Consumed (mAh)", "Remaining (mAh)", "Est. Flight (min)"}

// CSVWriter exports sample rows as a delimited table. Time, consumed
// and remaining use one decimal, current two; an unbounded ETA renders
// as "--".
type CSVWriter struct {
	w           *csv.Writer
	closer      io.Closer
	wroteHeader bool
}

// NewCSVWriter wraps an io.Writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// NewCSVFileWriter creates the file at path and writes the table there.
func NewCSVFileWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CSVWriter{w: csv.NewWriter(f), closer: f}, nil
}

// FormatRecord renders one sample at the export precision.
func FormatRecord(row battery.SampleRow) []string {
	eta := fmt.Sprintf("%.1f", row.ETAMin)
	if row.ETAMin >= battery.ETASentinel {
		eta = "--"
	}
	return []string{
		fmt.Sprintf("%.1f", row.TimeS),
		fmt.Sprintf("%.2f", row.CurrentA),
		fmt.Sprintf("%.1f", row.ConsumedmAh),
		fmt.Sprintf("%.1f", row.RemainingmAh),
		eta,
	}
}

// Write appends one sample row, emitting the header first.
func (c *CSVWriter) Write(row battery.SampleRow) error {
	if !c.wroteHeader {
		if err := c.w.Write(CSVHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	if err := c.w.Write(FormatRecord(row)); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// WriteBatch appends multiple sample rows.
func (c *CSVWriter) WriteBatch(rows []battery.SampleRow) error {
	for _, r := range rows {
		if err := c.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes the underlying file, if any.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		if c.closer != nil {
			c.closer.Close()
		}
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// ExportCSV writes a complete sample log to path.
func ExportCSV(path string, rows []battery.SampleRow) error {
	cw, err := NewCSVFileWriter(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		if err := cw.w.Write(CSVHeader); err != nil {
			cw.Close()
			return err
		}
		cw.wroteHeader = true
	}
	if err := cw.WriteBatch(rows); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}
