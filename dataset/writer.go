package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/foodidx/model"
)

// Writer writes records in the record file format.
type Writer struct {
	w     *bufio.Writer
	attrs []string
	n     int
}

// NewWriter returns a Writer that emits attrs for every record. With no
// attrs the default model attributes are written.
func NewWriter(w io.Writer, attrs ...string) *Writer {
	if len(attrs) == 0 {
		attrs = model.Attributes()
	}
	return &Writer{w: bufio.NewWriter(w), attrs: attrs}
}

// Write writes one record. Attributes the record does not define are
// written as 0. A nil record is ignored.
func (w *Writer) Write(rec *model.Record) error {
	if rec == nil {
		return nil
	}
	if err := checkField(rec.ID); err != nil || rec.ID == "" {
		return fmt.Errorf("%w: id %q", ErrInvalidField, rec.ID)
	}
	if err := checkField(rec.Name); err != nil {
		return fmt.Errorf("%w: name %q", ErrInvalidField, rec.Name)
	}

	var sb strings.Builder
	sb.WriteString(rec.ID)
	sb.WriteByte(',')
	sb.WriteString(rec.Name)
	for _, a := range w.attrs {
		v, _ := rec.Value(a)
		sb.WriteByte(',')
		sb.WriteString(a)
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte('\n')

	if _, err := w.w.WriteString(sb.String()); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.n
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func checkField(s string) error {
	if strings.ContainsAny(s, ",\r\n") {
		return ErrInvalidField
	}
	return nil
}
