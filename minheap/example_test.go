package minheap_test

import (
	"fmt"

	"github.com/abidlabs/scikit-network/minheap"
)

// ExampleHeap demonstrates the decrease-key drive pattern: the caller owns
// the priority slice, lowers an entry in place, and asks the heap to
// re-order itself in O(log N).
func ExampleHeap() {
	// 1. Priorities live with the caller, one slot per identifier.
	prio := []float64{5, 3, 8, 1, 9}

	// 2. Construct a heap for the five-identifier universe and fill it.
	h, err := minheap.New(len(prio))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for k := range prio {
		h.Insert(k, prio)
	}

	// 3. Identifier 3 holds the minimum priority (1).
	fmt.Println("min:", h.PopMin(prio))

	// 4. Decrease identifier 2's priority in place, then notify the heap.
	prio[2] = 0
	h.DecreaseKey(2, prio)
	fmt.Println("min:", h.PopMin(prio))

	// 5. Drain the rest in non-decreasing priority order.
	for !h.Empty() {
		fmt.Println("min:", h.PopMin(prio))
	}
	// Output:
	// min: 3
	// min: 2
	// min: 1
	// min: 0
	// min: 4
}
