package sim

import "rcpower/internal/battery"

// SampleWriter is an interface to support different output writers.
type SampleWriter interface {
	Write(battery.SampleRow) error
}

// Optional: Writers can also support batch mode
type batchWriter interface {
	WriteBatch([]battery.SampleRow) error
}

// StatusWriter renders run status transitions (start, pause, stop).
type StatusWriter interface {
	WriteStatus(Status) error
}
