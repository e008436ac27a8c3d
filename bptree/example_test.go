package bptree_test

import (
	"fmt"

	"github.com/hupe1980/foodidx/bptree"
)

func ExampleTree_RangeSearch() {
	tree, err := bptree.New[float64, string](3)
	if err != nil {
		panic(err)
	}

	tree.Insert(0.0, "a")
	tree.Insert(0.5, "b")
	tree.Insert(0.2, "c")
	tree.Insert(0.8, "d")

	fmt.Println(tree.RangeSearch(0.4, bptree.Equal))
	fmt.Println(tree.RangeSearch(0.5, bptree.GreaterEqual))
	fmt.Println(tree.RangeSearch(0.5, bptree.LessEqual))
	// Output:
	// []
	// [b d]
	// [a c b]
}

func ExampleTree_String() {
	tree, _ := bptree.New[int, int](3)
	for _, k := range []int{10, 20, 30, 40} {
		tree.Insert(k, k)
	}

	fmt.Print(tree)
	// Output:
	// {[20 30]}
	// {[10], [20], [30 40]}
}
