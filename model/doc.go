// Package model defines the record type indexed by foodidx and the set of
// numeric attributes a record may carry.
//
// A Record is identified by an ID string, has a display Name and a sparse
// set of non-negative attribute values. An attribute that was never set is
// absent, which is different from a value of zero: absent attributes are
// not indexed and never match a range rule.
//
//	rec := model.NewRecord("556540ff5d613c9d5f5935a9", "Stewed Plums")
//	rec.Set(model.Calories, 124)
//	rec.Set(model.Fiber, 3.2)
//
//	v, ok := rec.Value(model.Protein) // 0, false
package model
