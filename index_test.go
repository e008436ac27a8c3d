package foodidx

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/foodidx/bptree"
	"github.com/hupe1980/foodidx/model"
	"github.com/hupe1980/foodidx/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, name string, attrs map[string]float64) *model.Record {
	rec := model.NewRecord(id, name)
	for k, v := range attrs {
		rec.Set(k, v)
	}
	return rec
}

func newIndex(t *testing.T, optFns ...Option) *Index {
	t.Helper()
	idx, err := New(optFns...)
	require.NoError(t, err)
	return idx
}

func names(recs []*model.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		idx := newIndex(t)
		assert.Equal(t, model.Attributes(), idx.Attributes())
		assert.Equal(t, 0, idx.Len())

		stats := idx.Stats()
		assert.Equal(t, DefaultBranchingFactor, stats.BranchingFactor)
		assert.Len(t, stats.Trees, len(model.Attributes())+1)
	})

	t.Run("invalid branching factor", func(t *testing.T) {
		_, err := New(WithBranchingFactor(2))
		require.Error(t, err)

		var bfErr *ErrInvalidBranchingFactor
		require.True(t, errors.As(err, &bfErr))
		assert.Equal(t, 2, bfErr.BranchingFactor)

		var treeErr *bptree.ErrInvalidBranchingFactor
		assert.True(t, errors.As(err, &treeErr))
	})

	t.Run("custom attributes", func(t *testing.T) {
		idx := newIndex(t, WithAttributes("Sugar", "calories", "sugar", "", "id"))
		assert.Equal(t, []string{"sugar", "calories"}, idx.Attributes())
	})

	t.Run("nil options", func(t *testing.T) {
		idx := newIndex(t, nil, WithLogger(nil), WithMetricsCollector(nil))
		assert.NotNil(t, idx.Logger())
		idx.Add(record("1", "x", nil))
	})
}

func TestAdd(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(3))

	a := record("1", "Apple", map[string]float64{model.Calories: 52, model.Fiber: 2.4})
	b := record("2", "Bread", map[string]float64{model.Calories: 265})

	idx.Add(a)
	idx.Add(b)
	idx.Add(nil)

	assert.Equal(t, 2, idx.Len())

	stats := idx.Stats()
	assert.Equal(t, 2, stats.Trees[IDAttribute].Entries)
	assert.Equal(t, 2, stats.Trees[model.Calories].Entries)
	assert.Equal(t, 1, stats.Trees[model.Fiber].Entries)
	assert.Equal(t, 0, stats.Trees[model.Protein].Entries)
}

func TestAddSkipsUnindexedAttributes(t *testing.T) {
	idx := newIndex(t, WithAttributes(model.Calories))

	rec := record("1", "Apple", map[string]float64{model.Calories: 52, model.Fat: 0.2})
	rec.Attributes["sugar"] = -3
	idx.Add(rec)

	stats := idx.Stats()
	assert.Equal(t, 1, stats.Trees[model.Calories].Entries)
	assert.NotContains(t, stats.Trees, model.Fat)
}

func TestAddIndexesValuesSetDirectly(t *testing.T) {
	idx := newIndex(t)

	rec := model.NewRecord("1", "Odd")
	rec.Attributes[model.Calories] = -5
	rec.Attributes[model.Fat] = math.NaN()
	idx.Add(rec)

	stats := idx.Stats()
	assert.Equal(t, 1, stats.Trees[model.Calories].Entries)
	assert.Equal(t, 0, stats.Trees[model.Fat].Entries)

	assert.Equal(t, []string{"Odd"}, names(idx.FilterByNutrients([]string{"calories <= 10"})))
	assert.Empty(t, idx.FilterByNutrients([]string{"calories >= 0"}))
}

func TestAddSameRecordTwice(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(3))

	rec := record("7", "Oats", map[string]float64{model.Calories: 389, model.Protein: 16.9})
	idx.Add(rec)
	idx.Add(rec)

	assert.Equal(t, 2, idx.Len())
	assert.Len(t, idx.All(), 2)

	stats := idx.Stats()
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 1, stats.Distinct)
	assert.Equal(t, 2, stats.Trees[IDAttribute].Entries)
	assert.Equal(t, 2, stats.Trees[model.Calories].Entries)
	assert.Equal(t, 2, stats.Trees[model.Protein].Entries)
	assert.Equal(t, 0, stats.Trees[model.Fat].Entries)

	assert.Len(t, idx.LookupID("7"), 2)
	assert.Len(t, idx.FilterByName("oat"), 2)

	// Nutrient filters work on identity and report the record once.
	assert.Equal(t, []*model.Record{rec}, idx.FilterByNutrients([]string{"calories == 389"}))
	assert.Equal(t, []*model.Record{rec}, idx.FilterByNutrients(nil))
}

func TestFilterByName(t *testing.T) {
	idx := newIndex(t)
	idx.Add(record("1", "Green Apple", nil))
	idx.Add(record("2", "Pineapple Juice", nil))
	idx.Add(record("3", "Banana", nil))

	assert.Equal(t, []string{"Green Apple", "Pineapple Juice"}, names(idx.FilterByName("APPLE")))
	assert.Equal(t, []string{"Banana"}, names(idx.FilterByName("nan")))

	got := idx.FilterByName("kiwi")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = idx.FilterByName("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByNameFollowsListOrder(t *testing.T) {
	idx := newIndex(t)
	idx.Add(record("1", "b-tea", nil))
	idx.Add(record("2", "a-tea", nil))

	assert.Equal(t, []string{"b-tea", "a-tea"}, names(idx.FilterByName("tea")))

	idx.All()
	assert.Equal(t, []string{"a-tea", "b-tea"}, names(idx.FilterByName("tea")))
}

func TestFilterByNutrients(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(3))

	a := record("1", "A", map[string]float64{model.Calories: 100})
	b := record("2", "B", map[string]float64{model.Calories: 200})
	c := record("3", "C", map[string]float64{model.Calories: 100})
	idx.Add(c)
	idx.Add(b)
	idx.Add(a)

	t.Run("equal", func(t *testing.T) {
		assert.Equal(t, []*model.Record{a, c}, idx.FilterByNutrients([]string{"calories == 100"}))
	})

	t.Run("malformed rule is skipped", func(t *testing.T) {
		got := idx.FilterByNutrients([]string{"calories ~= 100", "calories == 100"})
		assert.Equal(t, []*model.Record{a, c}, got)
	})

	t.Run("only malformed rules", func(t *testing.T) {
		got := idx.FilterByNutrients([]string{"calories ~= 100", "sugar >= 1", "fat >= -1", "calories >="})
		assert.Equal(t, []*model.Record{a, b, c}, got)
	})

	t.Run("no rules", func(t *testing.T) {
		assert.Equal(t, []*model.Record{a, b, c}, idx.FilterByNutrients(nil))
		assert.Equal(t, []*model.Record{a, b, c}, idx.FilterByNutrients([]string{}))
	})

	t.Run("no match", func(t *testing.T) {
		got := idx.FilterByNutrients([]string{"calories >= 99999"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("range", func(t *testing.T) {
		assert.Equal(t, []*model.Record{b}, idx.FilterByNutrients([]string{"calories >= 150"}))
		assert.Equal(t, []*model.Record{a, c}, idx.FilterByNutrients([]string{"calories <= 150"}))
	})

	t.Run("attribute is case insensitive", func(t *testing.T) {
		assert.Equal(t, []*model.Record{b}, idx.FilterByNutrients([]string{"CALORIES == 200"}))
	})

	t.Run("records without the attribute never match", func(t *testing.T) {
		assert.Empty(t, idx.FilterByNutrients([]string{"fat >= 0"}))
	})
}

func TestFilterByNutrientsConjunction(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(4))

	lean := record("1", "Chicken", map[string]float64{model.Protein: 31, model.Fat: 3.6})
	fatty := record("2", "Salmon", map[string]float64{model.Protein: 20, model.Fat: 13})
	veg := record("3", "Lentils", map[string]float64{model.Protein: 9, model.Fat: 0.4})
	for _, r := range []*model.Record{lean, fatty, veg} {
		idx.Add(r)
	}

	got := idx.FilterByNutrients([]string{"protein >= 10", "fat <= 5"})
	assert.Equal(t, []*model.Record{lean}, got)

	got = idx.FilterByNutrients([]string{"protein >= 50", "fat <= 5"})
	assert.Empty(t, got)
}

func TestFilterByNutrientsSortsList(t *testing.T) {
	idx := newIndex(t)
	idx.Add(record("1", "zucchini", nil))
	idx.Add(record("2", "avocado", nil))

	idx.FilterByNutrients([]string{"calories >= 0"})

	assert.Equal(t, []string{"avocado", "zucchini"}, names(idx.FilterByName("o")))
}

func TestFilterByNutrientsMatchesScan(t *testing.T) {
	rng := testutil.NewRNG(2024)
	idx := newIndex(t, WithBranchingFactor(5))

	const n = 300
	recs := make([]*model.Record, n)
	cal := rng.Amounts(n, 10)
	fat := rng.Amounts(n, 5)
	hasFat := rng.SparsePresence(n, 0.3)
	for i := range n {
		rec := model.NewRecord(string(rune('a'+i%26))+rng.Word(4), rng.Word(6))
		rec.Set(model.Calories, cal[i])
		if hasFat[i] {
			rec.Set(model.Fat, fat[i])
		}
		recs[i] = rec
		idx.Add(rec)
	}

	for range 25 {
		c := rng.Amount(10)
		f := rng.Amount(5)
		rules := []string{
			"calories >= " + format(c),
			"fat <= " + format(f),
		}

		var want []*model.Record
		for _, r := range recs {
			cv, _ := r.Value(model.Calories)
			fv, ok := r.Value(model.Fat)
			if cv >= c && ok && fv <= f {
				want = append(want, r)
			}
		}

		got := idx.FilterByNutrients(rules)
		assert.ElementsMatch(t, want, got, "%v", rules)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Name, got[i].Name)
		}
	}
}

func TestAll(t *testing.T) {
	idx := newIndex(t)
	first := record("1", "pear", nil)
	second := record("2", "pear", nil)
	idx.Add(record("3", "fig", nil))
	idx.Add(first)
	idx.Add(second)

	all := idx.All()
	assert.Equal(t, []string{"fig", "pear", "pear"}, names(all))
	assert.Same(t, first, all[1])
	assert.Same(t, second, all[2])

	all[0] = nil
	assert.NotNil(t, idx.All()[0])

	empty := newIndex(t).All()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLookupID(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(3))
	for i, n := range []string{"a", "b", "c", "d", "e"} {
		idx.Add(record(n, n, map[string]float64{model.Calories: float64(i)}))
	}

	got := idx.LookupID("c")
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Name)

	assert.Empty(t, idx.LookupID("zz"))
}

func TestLookupIDNewestFirst(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(3))
	idx.Add(record("a", "before", nil))
	for i := range 10 {
		idx.Add(record("dup", fmt.Sprintf("v%d", i), nil))
	}
	idx.Add(record("z", "after", nil))

	want := make([]string, 0, 10)
	for i := 9; i >= 0; i-- {
		want = append(want, fmt.Sprintf("v%d", i))
	}
	assert.Equal(t, want, names(idx.LookupID("dup")))
}

func TestDump(t *testing.T) {
	idx := newIndex(t, WithBranchingFactor(3))
	for i, v := range []float64{0.0, 0.5, 0.2, 0.8} {
		idx.Add(record(string(rune('a'+i)), "x", map[string]float64{model.Fat: v}))
	}

	out, err := idx.Dump("Fat")
	require.NoError(t, err)
	assert.Equal(t, "{[0.2 0.5]}\n{[0], [0.2], [0.5 0.8]}\n", out)

	out, err = idx.Dump(IDAttribute)
	require.NoError(t, err)
	assert.Contains(t, out, "[b")

	_, err = idx.Dump("sugar")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestObservability(t *testing.T) {
	var buf bytes.Buffer
	metrics := &BasicMetricsCollector{}
	idx := newIndex(t,
		WithLogger(NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithMetricsCollector(metrics),
	)

	idx.Add(record("1", "Apple", map[string]float64{model.Calories: 52}))
	idx.FilterByName("app")
	idx.FilterByNutrients([]string{"calories == 52", "calories ~= 1", "sugar == 1"})
	idx.LookupID("1")
	idx.LookupID("2")

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.AddCount)
	assert.Equal(t, int64(2), stats.FilterCount)
	assert.Equal(t, int64(1), stats.NameFilters)
	assert.Equal(t, int64(1), stats.NutrientFilters)
	assert.Equal(t, int64(2), stats.FilterResults)
	assert.Equal(t, int64(2), stats.RulesSkipped)
	assert.Equal(t, int64(2), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupMisses)

	logs := buf.String()
	assert.Contains(t, logs, `"msg":"record added"`)
	assert.Contains(t, logs, `"msg":"rule skipped"`)
	assert.Contains(t, logs, "unknown attribute: sugar")
}
