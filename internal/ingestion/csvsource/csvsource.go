// Package csvsource reads header-keyed records from NASA Exoplanet Archive style CSV exports.
package csvsource

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMalformedRow = errors.New("malformed csv row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Record maps header names to cell values. Columns missing from a short row are absent.
type Record map[string]string

// Get returns the cell for col and whether the row carried that column.
func (r Record) Get(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// GetOr returns the cell for col, or def when the column is absent.
func (r Record) GetOr(col, def string) string {
	if v, ok := r[col]; ok {
		return v
	}
	return def
}

type Source struct {
	r      *csv.Reader
	closer io.Closer
	header []string
	line   int
}

// Open opens path and reads its header row.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %q: %w", path, err)
	}
	src, err := NewSource(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	src.closer = f
	return src, nil
}

// NewSource wraps r; the first non-comment line is the header.
func NewSource(r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comment = '#'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv has no header row: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return &Source{r: cr, header: header}, nil
}

func (s *Source) Header() []string {
	out := make([]string, len(s.header))
	copy(out, s.header)
	return out
}

// Line is the input line of the record most recently returned by Next.
func (s *Source) Line() int { return s.line }

// Next returns the next record, io.EOF at the end, or an error wrapping
// ErrMalformedRow for a line that could not be parsed. Reading may continue
// after ErrMalformedRow.
func (s *Source) Next() (Record, error) {
	fields, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			s.line = pe.StartLine
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, pe.StartLine, pe.Err)
		}
		return nil, err
	}
	s.line, _ = s.r.FieldPos(0)

	rec := make(Record, len(s.header))
	for i, col := range s.header {
		if i >= len(fields) {
			break
		}
		rec[col] = fields[i]
	}
	return rec, nil
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
