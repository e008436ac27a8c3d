package dataset

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hupe1980/foodidx/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	input := strings.Join([]string{
		"1,Apple,calories,52,fiber,2.4",
		"2,Bread,calories,265,,,",
		"",
		"3,Odd,calories",
		"4,Bad,fat,abc",
		"5,Sweet,sugar,10,protein,3",
		",NoID,calories,1",
		"6",
		"7,Neg,fat,-1",
		"8,Windows,protein,8\r",
		"   ",
	}, "\n")

	r := NewReader(strings.NewReader(input))
	recs, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, recs, 5)
	assert.Equal(t, []string{"Apple", "Bread", "Sweet", "Neg", "Windows"},
		[]string{recs[0].Name, recs[1].Name, recs[2].Name, recs[3].Name, recs[4].Name})

	v, ok := recs[0].Value(model.Fiber)
	assert.True(t, ok)
	assert.InDelta(t, 2.4, v, 1e-9)

	v, ok = recs[1].Value(model.Calories)
	assert.True(t, ok)
	assert.Equal(t, 265.0, v)

	assert.False(t, recs[2].Has("sugar"))
	assert.True(t, recs[2].Has(model.Protein))

	assert.Equal(t, "7", recs[3].ID)
	assert.False(t, recs[3].Has(model.Fat))

	assert.Equal(t, "8", recs[4].ID)
	v, _ = recs[4].Value(model.Protein)
	assert.Equal(t, 8.0, v)

	assert.Equal(t, 4, r.Skipped())

	var lineErr *LineError
	require.True(t, errors.As(r.LastError(), &lineErr))
	assert.Equal(t, 8, lineErr.Line)
	assert.ErrorIs(t, r.LastError(), ErrMalformedLine)
}

func TestReaderDropsNegativeValues(t *testing.T) {
	recs, err := NewReader(strings.NewReader("7,Neg,fat,-1,calories,50\n")).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.False(t, recs[0].Has(model.Fat))
	v, ok := recs[0].Value(model.Calories)
	assert.True(t, ok)
	assert.Equal(t, 50.0, v)
}

func TestReaderCustomAttributes(t *testing.T) {
	r := NewReader(strings.NewReader("1,Cola,sugar,10.6,calories,42\n"), "sugar")

	rec, err := r.Read()
	require.NoError(t, err)
	assert.True(t, rec.Has("sugar"))
	assert.False(t, rec.Has(model.Calories))

	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	recs, err := r.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.NoError(t, r.LastError())
}

func TestReaderLineTooLong(t *testing.T) {
	long := "1," + strings.Repeat("x", maxLineSize+1) + "\n"
	_, err := NewReader(strings.NewReader(long)).ReadAll()
	assert.Error(t, err)
}
