package foodidx_test

import (
	"fmt"

	"github.com/hupe1980/foodidx"
	"github.com/hupe1980/foodidx/model"
)

func Example() {
	idx, err := foodidx.New(foodidx.WithBranchingFactor(3))
	if err != nil {
		panic(err)
	}

	for _, f := range []struct {
		id, name string
		calories float64
	}{
		{"3", "Cherry", 100},
		{"2", "Banana", 200},
		{"1", "Apple", 100},
	} {
		rec := model.NewRecord(f.id, f.name)
		rec.Set(model.Calories, f.calories)
		idx.Add(rec)
	}

	for _, rec := range idx.FilterByNutrients([]string{"calories == 100", "calories ~= 100"}) {
		fmt.Println(rec.Name)
	}
	fmt.Println(len(idx.FilterByNutrients([]string{"calories >= 99999"})))
	// Output:
	// Apple
	// Cherry
	// 0
}

func ExampleIndex_FilterByName() {
	idx, _ := foodidx.New()
	idx.Add(model.NewRecord("1", "Green Apple"))
	idx.Add(model.NewRecord("2", "Pineapple"))
	idx.Add(model.NewRecord("3", "Banana"))

	for _, rec := range idx.FilterByName("APPLE") {
		fmt.Println(rec.ID, rec.Name)
	}
	// Output:
	// 1 Green Apple
	// 2 Pineapple
}
