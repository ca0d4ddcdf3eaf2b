package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	loksabha "github.com/kailas-cloud/loksabha/pkg/sdk"
)

// Dataset formats.
const (
	formatJSON   = "json"
	formatNDJSON = "ndjson"
	formatCSV    = "csv"
)

// recordReader yields dataset rows in file order. Next returns io.EOF when done.
type recordReader interface {
	Next() (loksabha.Record, error)
}

func newReader(format string, r io.Reader) (recordReader, error) {
	switch format {
	case formatJSON:
		return newJSONReader(r)
	case formatNDJSON:
		return &ndjsonReader{scanner: newLineScanner(r)}, nil
	case formatCSV:
		return newCSVReader(r)
	default:
		return nil, fmt.Errorf("unknown format %q (want json, ndjson or csv)", format)
	}
}

// formatFromPath guesses the format from a file extension.
func formatFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".ndjson"), strings.HasSuffix(path, ".jsonl"):
		return formatNDJSON
	case strings.HasSuffix(path, ".csv"):
		return formatCSV
	default:
		return formatJSON
	}
}

// jsonReader streams the elements of a top-level JSON array.
type jsonReader struct {
	dec  *json.Decoder
	row  int
	done bool
}

func newJSONReader(r io.Reader) (*jsonReader, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errors.New("read json: expected a top-level array")
	}
	return &jsonReader{dec: dec}, nil
}

func (j *jsonReader) Next() (loksabha.Record, error) {
	if j.done || !j.dec.More() {
		j.done = true
		return loksabha.Record{}, io.EOF
	}
	j.row++
	var m map[string]any
	if err := j.dec.Decode(&m); err != nil {
		return loksabha.Record{}, fmt.Errorf("row %d: %w", j.row, err)
	}
	return parseRow(j.row, m)
}

// ndjsonReader reads one JSON object per line. Blank lines are skipped.
type ndjsonReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 4*1024*1024)
	return s
}

func (n *ndjsonReader) Next() (loksabha.Record, error) {
	for n.scanner.Scan() {
		n.line++
		line := bytes.TrimSpace(n.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return loksabha.Record{}, fmt.Errorf("line %d: %w", n.line, err)
		}
		return parseRow(n.line, m)
	}
	if err := n.scanner.Err(); err != nil {
		return loksabha.Record{}, fmt.Errorf("read ndjson: %w", err)
	}
	return loksabha.Record{}, io.EOF
}

// csvReader maps each row onto the header columns. Empty cells are omitted.
type csvReader struct {
	r      *csv.Reader
	header []string
	row    int
}

func newCSVReader(r io.Reader) (*csvReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	return &csvReader{r: cr, header: header}, nil
}

func (c *csvReader) Next() (loksabha.Record, error) {
	fields, err := c.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return loksabha.Record{}, io.EOF
		}
		return loksabha.Record{}, fmt.Errorf("read csv: %w", err)
	}
	c.row++
	if len(fields) > len(c.header) {
		return loksabha.Record{}, fmt.Errorf("row %d: %d fields, header has %d", c.row, len(fields), len(c.header))
	}

	m := make(map[string]any, len(fields))
	for i, v := range fields {
		if v == "" || c.header[i] == "" {
			continue
		}
		m[c.header[i]] = v
	}
	return parseRow(c.row, m)
}

func parseRow(row int, m map[string]any) (loksabha.Record, error) {
	rec, err := loksabha.ParseRecord(m)
	if err != nil {
		return loksabha.Record{}, fmt.Errorf("row %d: %w", row, err)
	}
	return rec, nil
}
