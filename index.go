package foodidx

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/foodidx/bptree"
	"github.com/hupe1980/foodidx/filter"
	"github.com/hupe1980/foodidx/internal/bitmap"
	"github.com/hupe1980/foodidx/model"
)

// IDAttribute names the identifier tree in Stats and Dump.
const IDAttribute = "id"

// Index keeps a master list of records together with one B+ tree keyed by
// record ID and one B+ tree per indexed attribute.
//
// An Index is not safe for concurrent use. Callers sharing an Index across
// goroutines must serialize access, including reads: All and
// FilterByNutrients reorder the master list.
type Index struct {
	branchingFactor int

	ids       *bptree.Tree[string, *model.Record]
	attrs     map[string]*bptree.Tree[float64, *model.Record]
	attrOrder []string

	records []*model.Record

	// rows numbers each distinct record pointer on its first Add.
	rows  map[*model.Record]uint32
	byRow []*model.Record

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty index.
func New(optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)

	ids, err := bptree.New[string, *model.Record](o.branchingFactor)
	if err != nil {
		return nil, &ErrInvalidBranchingFactor{BranchingFactor: o.branchingFactor, cause: err}
	}

	attrs := make(map[string]*bptree.Tree[float64, *model.Record], len(o.attributes))
	for _, a := range o.attributes {
		tree, err := bptree.New[float64, *model.Record](o.branchingFactor)
		if err != nil {
			return nil, &ErrInvalidBranchingFactor{BranchingFactor: o.branchingFactor, cause: err}
		}
		attrs[a] = tree
	}

	return &Index{
		branchingFactor: o.branchingFactor,
		ids:             ids,
		attrs:           attrs,
		attrOrder:       o.attributes,
		rows:            make(map[*model.Record]uint32),
		logger:          o.logger,
		metrics:         o.metricsCollector,
	}, nil
}

// Add indexes rec under its ID and under every indexed attribute it has a
// value for, then appends it to the master list. A nil record is ignored.
//
// Adding the same record twice indexes it twice; filters still return it
// once. Values written directly into Attributes are indexed as they are,
// except NaN, which has no place in key order and is left out of the tree.
func (idx *Index) Add(rec *model.Record) {
	if rec == nil {
		return
	}
	start := time.Now()

	idx.ids.Insert(rec.ID, rec)

	indexed := 0
	for _, a := range idx.attrOrder {
		v, ok := rec.Value(a)
		if !ok || math.IsNaN(v) {
			continue
		}
		idx.attrs[a].Insert(v, rec)
		indexed++
	}

	idx.records = append(idx.records, rec)
	if _, ok := idx.rows[rec]; !ok {
		idx.rows[rec] = uint32(len(idx.byRow))
		idx.byRow = append(idx.byRow, rec)
	}

	idx.logger.LogAdd(rec.ID, indexed)
	idx.metrics.RecordAdd(time.Since(start))
}

// FilterByName returns the records whose name contains term, ignoring case,
// in master list order. An empty term matches nothing.
func (idx *Index) FilterByName(term string) []*model.Record {
	start := time.Now()

	result := []*model.Record{}
	if term != "" {
		needle := strings.ToLower(term)
		for _, rec := range idx.records {
			if strings.Contains(strings.ToLower(rec.Name), needle) {
				result = append(result, rec)
			}
		}
	}

	idx.logger.LogFilter(FilterName, 1, len(result))
	idx.metrics.RecordFilter(FilterName, len(result), time.Since(start))
	return result
}

// FilterByNutrients returns the records matching every rule, sorted by name.
// Each rule has the form "<attribute> <comparator> <value>". Rules that do
// not parse or name an attribute the index does not track are skipped. With
// no usable rules every record is returned.
//
// Like All, it sorts the master list by name as a side effect.
func (idx *Index) FilterByNutrients(rules []string) []*model.Record {
	start := time.Now()

	candidates := bitmap.New()
	for _, rec := range idx.All() {
		candidates.Add(idx.rows[rec])
	}

	for _, s := range rules {
		rule, err := filter.Parse(s)
		if err == nil {
			if _, ok := idx.attrs[rule.Attribute]; !ok {
				err = fmt.Errorf("%w: %s", ErrUnknownAttribute, rule.Attribute)
			}
		}
		if err != nil {
			idx.logger.LogRuleSkipped(s, err)
			idx.metrics.RecordRuleSkipped()
			continue
		}

		candidates.And(idx.match(rule))
		if candidates.IsEmpty() {
			break
		}
	}

	result := make([]*model.Record, 0, candidates.Cardinality())
	for row := range candidates.Iterator() {
		result = append(result, idx.byRow[row])
	}
	slices.SortStableFunc(result, model.ByName)

	idx.logger.LogFilter(FilterNutrients, len(rules), len(result))
	idx.metrics.RecordFilter(FilterNutrients, len(result), time.Since(start))
	return result
}

// match returns the rows of the records satisfying rule.
func (idx *Index) match(rule filter.Rule) *bitmap.Bitmap {
	rows := bitmap.New()
	for _, rec := range idx.attrs[rule.Attribute].RangeSearch(rule.Value, rule.Comparator) {
		rows.Add(idx.rows[rec])
	}
	return rows
}

// All sorts the master list by name, keeps that order, and returns a copy
// of it. Records with equal names keep their relative order.
func (idx *Index) All() []*model.Record {
	slices.SortStableFunc(idx.records, model.ByName)

	out := make([]*model.Record, len(idx.records))
	copy(out, idx.records)
	return out
}

// LookupID returns every record added under id, most recently added first.
func (idx *Index) LookupID(id string) []*model.Record {
	start := time.Now()
	result := idx.ids.RangeSearch(id, bptree.Equal)
	idx.metrics.RecordLookup(len(result), time.Since(start))
	return result
}

// Len returns the number of entries in the master list, counting repeated
// adds of the same record.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Attributes returns the indexed attribute names in configuration order.
func (idx *Index) Attributes() []string {
	return slices.Clone(idx.attrOrder)
}

// Logger returns the logger the index was configured with.
func (idx *Index) Logger() *Logger {
	return idx.logger
}

// TreeStats describes one tree of the index.
type TreeStats struct {
	Entries int `json:"entries"`
	Height  int `json:"height"`
}

// Stats summarizes the index.
type Stats struct {
	Records         int                  `json:"records"`
	Distinct        int                  `json:"distinct"`
	BranchingFactor int                  `json:"branching_factor"`
	Trees           map[string]TreeStats `json:"trees"`
}

// Stats returns the current size of the index and of each tree. The
// identifier tree is reported under IDAttribute.
func (idx *Index) Stats() Stats {
	trees := make(map[string]TreeStats, len(idx.attrs)+1)
	trees[IDAttribute] = TreeStats{Entries: idx.ids.Len(), Height: idx.ids.Height()}
	for a, tree := range idx.attrs {
		trees[a] = TreeStats{Entries: tree.Len(), Height: tree.Height()}
	}

	return Stats{
		Records:         len(idx.records),
		Distinct:        len(idx.byRow),
		BranchingFactor: idx.branchingFactor,
		Trees:           trees,
	}
}

// Dump renders the tree for attr level by level. IDAttribute selects the
// identifier tree.
func (idx *Index) Dump(attr string) (string, error) {
	attr = strings.ToLower(attr)
	if attr == IDAttribute {
		return idx.ids.String(), nil
	}
	tree, ok := idx.attrs[attr]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, attr)
	}
	return tree.String(), nil
}
