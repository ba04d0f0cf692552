package segbits_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/segbits"
)

// Example demonstrates storing 3-bit fields.
func Example() {
	a := segbits.New()
	if err := a.Init(3, 1000); err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	a.Set(0, 5)
	a.Set(1, 6)
	a.Set(2, 9) // only the low 3 bits are kept

	fmt.Println(a.Get(0), a.Get(1), a.Get(2))
	fmt.Println(a)
	// Output:
	// 5 6 1
	// BitArray{width: 3, len: 1000, bytes: 375, segments: 2, status: ok}
}

// Example_capacity shows the out-of-memory path.
func Example_capacity() {
	a := segbits.New(segbits.WithSegmentSize(64), segbits.WithMaxSegments(2))

	err := a.Init(8, 129)
	fmt.Println(errors.Is(err, segbits.ErrNoMemory), a.Status(), a.Segments())

	err = a.Init(8, 128)
	fmt.Println(err, a.Status(), a.Segments())
	// Output:
	// true no memory 0
	// <nil> ok 2
}

// Example_checked demonstrates the bounds-checked accessors.
func Example_checked() {
	a := segbits.New()
	if err := a.Init(4, 8); err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	fmt.Println(a.SetChecked(8, 1))
	fmt.Println(a.SetChecked(0, 16))
	fmt.Println(a.SetChecked(0, 15))
	// Output:
	// segbits: index 8 out of range [0, 8)
	// segbits: value 16 does not fit in 4 bits
	// <nil>
}

// Example_memoryBudget shares one budget between two arrays.
func Example_memoryBudget() {
	budget := segbits.NewMemoryBudget(300)

	a := segbits.New(segbits.WithMemoryBudget(budget), segbits.WithRollbackOnFailure(true))
	b := segbits.New(segbits.WithMemoryBudget(budget), segbits.WithRollbackOnFailure(true))

	fmt.Println(a.Init(8, 200), budget.Used())
	fmt.Println(errors.Is(b.Init(8, 200), segbits.ErrNoMemory), budget.Used())

	_ = a.Close()
	fmt.Println(b.Init(8, 200), budget.Used())
	// Output:
	// <nil> 200
	// true 200
	// <nil> 200
}
