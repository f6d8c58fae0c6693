package dynarray_test

import (
	"fmt"

	"github.com/tp-group5/algokit/dynarray"
)

// ExampleArray_Sort sorts the active region of an array using its natural order.
func ExampleArray_Sort() {
	a := dynarray.NewOrdered[string](4)
	a.AddRange("pear", "apple", "fig")
	if err := a.Sort(nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a)
	// Output:
	// apple, fig, pear
}
