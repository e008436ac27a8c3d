package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/foodidx/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, model.Calories, model.Fiber)

	apple := model.NewRecord("1", "Apple")
	apple.Set(model.Calories, 52)
	apple.Set(model.Fiber, 2.4)

	require.NoError(t, w.Write(apple))
	require.NoError(t, w.Write(model.NewRecord("2", "Water")))
	require.NoError(t, w.Write(nil))
	require.NoError(t, w.Flush())

	assert.Equal(t, 2, w.Count())
	assert.Equal(t, "1,Apple,calories,52,fiber,2.4\n2,Water,calories,0,fiber,0\n", buf.String())
}

func TestWriterInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.Record
	}{
		{"empty id", model.NewRecord("", "x")},
		{"comma in id", model.NewRecord("1,2", "x")},
		{"comma in name", model.NewRecord("1", "Salt, sea")},
		{"newline in name", model.NewRecord("1", "a\nb")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{})
			assert.ErrorIs(t, w.Write(tt.rec), ErrInvalidField)
			assert.Equal(t, 0, w.Count())
		})
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	in := model.NewRecord("42", "Oat Milk")
	in.Set(model.Calories, 46)
	in.Set(model.Protein, 1.25)
	require.NoError(t, w.Write(in))
	require.NoError(t, w.Flush())

	out, err := NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, in.ID, out[0].ID)
	assert.Equal(t, in.Name, out[0].Name)
	for _, a := range model.Attributes() {
		want, _ := in.Value(a)
		got, ok := out[0].Value(a)
		assert.True(t, ok, a)
		assert.Equal(t, want, got, a)
	}
}
