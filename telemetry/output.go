package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/bugworld/config"
)

// MetricsLog writes one tab-separated line per tick:
// alive, tick, mean health, mean drive, mean aggression. No header.
type MetricsLog struct {
	file *os.File
	w    *gocsv.SafeCSVWriter
}

// NewMetricsLog creates the log file at path.
// Returns nil if path is empty (logging disabled).
func NewMetricsLog(path string) (*MetricsLog, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating metrics log: %w", err)
	}
	return &MetricsLog{file: f, w: newTabWriter(f)}, nil
}

func newTabWriter(out io.Writer) *gocsv.SafeCSVWriter {
	w := csv.NewWriter(out)
	w.Comma = '\t'
	return gocsv.NewSafeCSVWriter(w)
}

// Write appends a snapshot line.
func (m *MetricsLog) Write(s Snapshot) error {
	if m == nil {
		return nil
	}
	if err := gocsv.MarshalCSVWithoutHeaders([]Snapshot{s}, m.w); err != nil {
		return fmt.Errorf("writing metrics log: %w", err)
	}
	return nil
}

// Close flushes and closes the log file.
func (m *MetricsLog) Close() error {
	if m == nil {
		return nil
	}
	m.w.Flush()
	if err := m.w.Error(); err != nil {
		m.file.Close()
		return fmt.Errorf("flushing metrics log: %w", err)
	}
	return m.file.Close()
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	perfFile      *os.File

	// Track if headers have been written
	telemetryHeaderWritten bool
	perfHeaderWritten      bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	// Create output directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	tf, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	pf, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		tf.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}

	return &OutputManager{dir: dir, telemetryFile: tf, perfFile: pf}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	if err := appendCSV([]WindowStats{stats}, om.telemetryFile, &om.telemetryHeaderWritten); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd uint64) error {
	if om == nil {
		return nil
	}
	if err := appendCSV([]PerfStatsCSV{stats.ToCSV(windowEnd)}, om.perfFile, &om.perfHeaderWritten); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// appendCSV writes records, with the header only on the first call.
func appendCSV(records any, w io.Writer, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, w)
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(om.telemetryFile.Close(), om.perfFile.Close())
}
