package smallbitset_test

import (
	"fmt"

	"github.com/hupe1980/smallbitset"
)

func ExampleSet() {
	var s smallbitset.Set[smallbitset.W12]
	s.Set(0).Set(3).Set(11)
	fmt.Println(s)
	fmt.Println(s.Count(), s.Test(3), s.Test(4))

	s.ShiftRight(3)
	fmt.Println(s)
	// Output:
	// 100000001001
	// 3 true false
	// 000100000001
}

func ExampleFromUint64() {
	a := smallbitset.FromUint64[smallbitset.W9](256)
	fmt.Println(a.Shr(8) == smallbitset.FromUint64[smallbitset.W9](1))
	fmt.Println(a.Uint64())
	// Output:
	// true
	// 256
}

func ExampleParse() {
	s, err := smallbitset.Parse[smallbitset.W5]("10110")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Uint32(), s.Ones())
	// Output: 22 [1 2 4]
}

func ExampleSet_At() {
	var s smallbitset.Set[smallbitset.W4]
	r := s.At(2)
	r.Assign(r.Not())
	fmt.Println(s)
	// Output: 0100
}
