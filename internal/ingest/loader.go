// Package ingest materializes CSV/TSV files into the in-memory dataset the
// metrics core consumes. All normalization the core relies on happens here:
// blank and whitespace-only cells become the missing marker, ragged rows
// are padded with missing cells, and fully numeric columns are promoted to
// numeric storage.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tabqa/tabqa/internal/dataset"
)

// Options controls loading. A zero Delimiter means auto-detect.
type Options struct {
	Delimiter rune
}

// Load reads the whole file into memory and builds a Dataset. Faults here
// (unreadable file, empty input, malformed header) are ingestion errors;
// they never originate from the metrics core.
func Load(path string, opts Options) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty file: %s", path)
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = DetectDelimiter(data, 8192)
		if strings.HasSuffix(strings.ToLower(path), ".tsv") {
			delim = '\t'
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cells := make([][]dataset.Value, len(headers))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		for i := range headers {
			if i < len(record) {
				cells[i] = append(cells[i], dataset.StringValue(record[i]))
			} else {
				// Short row: pad with the missing marker.
				cells[i] = append(cells[i], dataset.Missing())
			}
		}
	}

	cols := make([]*dataset.Column, len(headers))
	for i, header := range headers {
		cols[i] = dataset.NewColumn(strings.TrimSpace(header), promoteNumeric(cells[i]))
	}
	return dataset.New(cols...), nil
}

// promoteNumeric converts a column to numeric storage when every
// non-missing cell parses as a number, mirroring how a typed reader would
// have loaded it.
func promoteNumeric(cells []dataset.Value) []dataset.Value {
	parsed := make([]float64, len(cells))
	for i, v := range cells {
		if v.IsMissing() {
			continue
		}
		f, ok := v.Float()
		if !ok {
			return cells
		}
		parsed[i] = f
	}

	promoted := make([]dataset.Value, len(cells))
	for i, v := range cells {
		if v.IsMissing() {
			promoted[i] = dataset.Missing()
		} else {
			promoted[i] = dataset.NumberValue(parsed[i])
		}
	}
	return promoted
}

// DetectDelimiter picks the most frequent candidate delimiter in the first
// few lines of the data. Defaults to comma.
func DetectDelimiter(data []byte, sampleSize int) rune {
	if sampleSize <= 0 || sampleSize > len(data) {
		sampleSize = len(data)
	}
	sample := data[:sampleSize]

	delimCounts := map[rune]int{
		',':  0,
		';':  0,
		'\t': 0,
		'|':  0,
	}

	lines := 0
	for i := 0; i < len(sample) && lines < 5; i++ {
		if sample[i] == '\n' {
			lines++
		}
		for delim := range delimCounts {
			if sample[i] == byte(delim) {
				delimCounts[delim]++
			}
		}
	}

	maxCount := 0
	best := ','
	for delim, count := range delimCounts {
		if count > maxCount {
			maxCount = count
			best = delim
		}
	}
	return best
}
