package linkedlist_test

import (
	"fmt"

	"github.com/tp-group5/algokit/compare"
	"github.com/tp-group5/algokit/linkedlist"
)

// ExampleList_SpliceFrom shows that splicing consumes the source list.
func ExampleList_SpliceFrom() {
	a := linkedlist.From(3, 1)
	b := linkedlist.From(2)
	_ = a.SpliceFrom(b)
	_ = a.Sort(compare.Natural[int]())
	fmt.Println(a, "|", b.Len())
	// Output:
	// 1 -> 2 -> 3 | 0
}
