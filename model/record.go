package model

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Record is a single food item.
type Record struct {
	ID         string
	Name       string
	Attributes map[string]float64
}

// NewRecord returns a record with no attributes set.
func NewRecord(id, name string) *Record {
	return &Record{
		ID:         id,
		Name:       name,
		Attributes: make(map[string]float64),
	}
}

// Set stores value under attr. Negative and NaN values are rejected and
// leave the record unchanged.
func (r *Record) Set(attr string, value float64) bool {
	if attr == "" || value < 0 || math.IsNaN(value) {
		return false
	}
	if r.Attributes == nil {
		r.Attributes = make(map[string]float64)
	}
	r.Attributes[attr] = value
	return true
}

// Value returns the value stored under attr and whether it was set.
func (r *Record) Value(attr string) (float64, bool) {
	v, ok := r.Attributes[attr]
	return v, ok
}

// Has reports whether attr was set.
func (r *Record) Has(attr string) bool {
	_, ok := r.Attributes[attr]
	return ok
}

func (r *Record) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)", r.Name, r.ID)

	keys := make([]string, 0, len(r.Attributes))
	for k := range r.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%g", k, r.Attributes[k])
	}
	return sb.String()
}

// ByName orders records by Name, comparing bytes.
func ByName(a, b *Record) int {
	return strings.Compare(a.Name, b.Name)
}
