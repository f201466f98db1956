// Writer implementation printing samples to STDOUT
package sim

import (
	"encoding/json"
	"fmt"

	"rcpower/internal/battery"
)

// StdoutWriter prints sample rows to STDOUT as JSON lines.
type StdoutWriter struct{}

// Write outputs a single sample row.
func (w *StdoutWriter) Write(row battery.SampleRow) error {
	data, _ := json.Marshal(row)
	fmt.Println(string(data))
	return nil
}

// WriteBatch outputs multiple sample rows.
func (w *StdoutWriter) WriteBatch(rows []battery.SampleRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// WriteStatus outputs a status transition.
func (w *StdoutWriter) WriteStatus(st Status) error {
	data, _ := json.Marshal(st)
	fmt.Println(string(data))
	return nil
}
