// Package source reads and writes entry dumps: one JSON document per
// line, optionally wrapped in framed snappy compression. Dumps are the
// ingest format for inference runs, typically exported from an upstream
// calculation archive.
package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"

	"github.com/dd0wney/chemflow/pkg/entry"
	"github.com/dd0wney/chemflow/pkg/validation"
)

// CompressedExt marks a dump as framed-snappy compressed.
const CompressedExt = ".sz"

// maxLineBytes bounds a single JSON line. Entries are small; anything
// near 1 MiB is a corrupt dump, not a record.
const maxLineBytes = 1 << 20

// ReadReport summarizes one dump read. Rejected lines are collected,
// not fatal: a single bad record must not sink a whole ingest.
type ReadReport struct {
	Accepted int
	Rejected int
	Errors   []error
}

// ReadEntries decodes a JSON-lines stream of entries. Undecodable or
// invalid lines are counted and reported but do not stop the read.
func ReadEntries(r io.Reader) ([]entry.Entry, ReadReport, error) {
	var (
		entries []entry.Entry
		report  ReadReport
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var e entry.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			report.Rejected++
			report.Errors = append(report.Errors, fmt.Errorf("line %d: decode: %w", line, err))
			continue
		}
		if err := validation.ValidateEntry(&e); err != nil {
			report.Rejected++
			report.Errors = append(report.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		entries = append(entries, e)
		report.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("failed to read dump: %w", err)
	}

	return entries, report, nil
}

// ReadFile reads an entry dump from disk. Files with the .sz extension
// are decompressed transparently.
func ReadFile(path string) ([]entry.Entry, ReadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadReport{}, fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == CompressedExt {
		r = snappy.NewReader(f)
	}
	return ReadEntries(r)
}

// WriteEntries encodes entries as JSON lines.
func WriteEntries(w io.Writer, entries []entry.Entry) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode entry %s: %w", e.ID, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes an entry dump to disk, compressing when the path
// carries the .sz extension.
func WriteFile(path string, entries []entry.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump: %w", err)
	}
	defer f.Close()

	if filepath.Ext(path) == CompressedExt {
		sw := snappy.NewBufferedWriter(f)
		if err := WriteEntries(sw, entries); err != nil {
			sw.Close()
			return err
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("failed to flush compressed dump: %w", err)
		}
		return f.Close()
	}

	if err := WriteEntries(f, entries); err != nil {
		return err
	}
	return f.Close()
}
