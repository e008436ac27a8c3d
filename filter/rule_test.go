package filter

import (
	"testing"

	"github.com/hupe1980/foodidx/bptree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Rule
	}{
		{"calories >= 100", Rule{"calories", bptree.GreaterEqual, 100}},
		{"Fat <= 2.5", Rule{"fat", bptree.LessEqual, 2.5}},
		{"PROTEIN == 0", Rule{"protein", bptree.Equal, 0}},
		{"fiber >= 1e2", Rule{"fiber", bptree.GreaterEqual, 100}},
		{"sugar == 3", Rule{"sugar", bptree.Equal, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in    string
		cause error
	}{
		{"", ErrMalformedRule},
		{"calories", ErrMalformedRule},
		{"calories >=", ErrMalformedRule},
		{"calories >= 100 extra", ErrMalformedRule},
		{"calories  >= 100", ErrMalformedRule},
		{" >= 100", ErrMalformedRule},
		{"calories ~= 100", ErrInvalidComparator},
		{"calories < 100", ErrInvalidComparator},
		{"calories >= abc", ErrInvalidValue},
		{"calories >= -1", ErrInvalidValue},
		{"calories >= NaN", ErrInvalidValue},
		{"calories >= +Inf", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.cause)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.in, pe.Rule)
			assert.NotEmpty(t, pe.Reason)
		})
	}
}

func TestRuleString(t *testing.T) {
	for _, s := range []string{"calories >= 100", "fat <= 2.5", "protein == 0"} {
		r := MustParse(s)
		assert.Equal(t, s, r.String())
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("bogus") })
}
