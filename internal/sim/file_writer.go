package sim

import (
	"encoding/json"
	"os"

	"rcpower/internal/battery"
)

// FileWriter writes samples and status transitions to JSONL files.
// Sample logs written this way can be fed back through ReplayLogFile.
type FileWriter struct {
	sampleFile *os.File
	statusFile *os.File
	sampleEnc  *json.Encoder
	statusEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. statusPath may be empty to skip
// the status log.
func NewFileWriter(samplePath, statusPath string) (*FileWriter, error) {
	sf, err := os.Create(samplePath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{sampleFile: sf, sampleEnc: json.NewEncoder(sf)}
	if statusPath != "" {
		stf, err := os.Create(statusPath)
		if err != nil {
			sf.Close()
			return nil, err
		}
		fw.statusFile = stf
		fw.statusEnc = json.NewEncoder(stf)
	}
	return fw, nil
}

// Write logs a single sample row.
func (f *FileWriter) Write(row battery.SampleRow) error {
	return f.sampleEnc.Encode(row)
}

// WriteBatch logs multiple sample rows.
func (f *FileWriter) WriteBatch(rows []battery.SampleRow) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatus logs a status transition, if enabled.
func (f *FileWriter) WriteStatus(st Status) error {
	if f.statusEnc == nil {
		return nil
	}
	return f.statusEnc.Encode(st)
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	if f.sampleFile != nil {
		if e := f.sampleFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	if f.statusFile != nil {
		if e := f.statusFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
