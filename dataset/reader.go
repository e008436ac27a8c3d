package dataset

import (
	"bufio"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/foodidx/model"
)

var (
	// ErrMalformedLine is the cause recorded for a line that cannot be parsed.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidField is returned by Writer for an id or name that cannot be
	// represented in the file format.
	ErrInvalidField = errors.New("invalid field")
)

const maxLineSize = 1 << 20

// Reader parses records from a record file.
type Reader struct {
	sc      *bufio.Scanner
	attrs   []string
	line    int
	skipped int
	lastErr error
}

// NewReader returns a Reader for r that recognizes attrs. With no attrs the
// default model attributes are recognized.
func NewReader(r io.Reader, attrs ...string) *Reader {
	if len(attrs) == 0 {
		attrs = model.Attributes()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc, attrs: attrs}
}

// Read returns the next record. Malformed lines are skipped. It returns
// io.EOF when the input is exhausted.
func (r *Reader) Read() (*model.Record, error) {
	for r.sc.Scan() {
		r.line++
		line := strings.TrimRight(r.sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := r.parse(line)
		if err != nil {
			r.skipped++
			r.lastErr = &LineError{Line: r.line, Reason: err.Error()}
			continue
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]*model.Record, error) {
	var recs []*model.Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Skipped returns the number of malformed lines skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// LastError describes the most recently skipped line, or nil.
func (r *Reader) LastError() error {
	return r.lastErr
}

func (r *Reader) parse(line string) (*model.Record, error) {
	fields := strings.Split(line, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) < 2 {
		return nil, errors.New("expected id and name")
	}
	if fields[0] == "" {
		return nil, errors.New("empty id")
	}

	rec := model.NewRecord(fields[0], fields[1])
	for i := 2; i < len(fields); i += 2 {
		if !slices.Contains(r.attrs, fields[i]) {
			continue
		}
		if i+1 >= len(fields) {
			return nil, errors.New("attribute " + strconv.Quote(fields[i]) + " has no value")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64)
		if err != nil {
			return nil, errors.New("attribute " + strconv.Quote(fields[i]) + ": bad value " + strconv.Quote(fields[i+1]))
		}
		// Negative values are dropped; the rest of the record is kept.
		rec.Set(fields[i], v)
	}
	return rec, nil
}

// LineError describes a skipped line.
type LineError struct {
	Line   int
	Reason string
}

func (e *LineError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Reason
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }
