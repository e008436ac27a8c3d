// Package foodidx provides an in-memory, multi-attribute index over food
// records.
//
// An Index keeps the authoritative list of records together with a set of
// B+ trees: one keyed by record ID and one per indexed nutrient attribute
// (calories, fat, carbohydrate, fiber and protein by default). Every Add
// updates all of them, so the trees always describe exactly the records in
// the list.
//
// # Quick Start
//
//	idx, _ := foodidx.New()
//
//	apple := model.NewRecord("1", "Apple")
//	apple.Set(model.Calories, 52)
//	idx.Add(apple)
//
//	idx.FilterByName("app")                           // [Apple]
//	idx.FilterByNutrients([]string{"calories <= 60"}) // [Apple]
//	idx.LookupID("1")                                 // [Apple]
//
// # Nutrient Rules
//
// FilterByNutrients takes rules of the form "<attribute> <comparator>
// <value>" with comparators "<=", "==" and ">=". Each accepted rule runs a
// range search on its attribute tree; the matching rows are intersected
// using Roaring bitmaps and the evaluation stops as soon as the intersection
// is empty. Rules that fail to parse, use another comparator, carry a
// negative value or name an attribute the index does not track are skipped
// and reported through the Logger and MetricsCollector.
//
// # Ordering
//
// All and FilterByNutrients sort the master list by name and keep it that
// way, so FilterByName results follow name order after either has run.
//
// # Concurrency
//
// An Index is not safe for concurrent use. Wrap it with a mutex if it is
// shared between goroutines.
//
// # Observability
//
//	metrics := &foodidx.BasicMetricsCollector{}
//	idx, _ := foodidx.New(
//	    foodidx.WithLogger(foodidx.NewJSONLogger(slog.LevelDebug)),
//	    foodidx.WithMetricsCollector(metrics),
//	)
//
// Dataset loading and export live in the dataset package; blob storage
// backends in blobstore.
package foodidx
