package sim

import "rcpower/internal/battery"

// MultiWriter fan-outs sample rows and status updates to multiple writers.
type MultiWriter struct {
	writers []SampleWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...SampleWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// Write sends a sample row to all writers.
func (mw *MultiWriter) Write(row battery.SampleRow) error {
	for _, w := range mw.writers {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch sends multiple sample rows to all writers, using batch
// mode where supported.
func (mw *MultiWriter) WriteBatch(rows []battery.SampleRow) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchWriter); ok {
			if err := bw.WriteBatch(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.Write(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteStatus forwards a status update to writers that render it.
func (mw *MultiWriter) WriteStatus(st Status) error {
	for _, w := range mw.writers {
		if sw, ok := w.(StatusWriter); ok {
			if err := sw.WriteStatus(st); err != nil {
				return err
			}
		}
	}
	return nil
}
