package sort_test

import (
	"fmt"

	sort "github.com/exascience/adasort/sort"
)

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("%s: %d", p.Name, p.Age)
}

func Example() {
	ints := []int{5, 3, 4, 1, 2}
	sort.Sort(ints)
	fmt.Println(ints)

	floats := []float32{3, 0.5, -2, 1}
	sort.Float32s(floats)
	fmt.Println(floats)

	// Output:
	// [1 2 3 4 5]
	// [-2 0.5 1 3]
}

func ExampleStableSortFunc() {
	people := []Person{
		{"Bob", 31},
		{"John", 42},
		{"Michael", 17},
		{"Jenny", 26},
		{"Alice", 31},
	}

	fmt.Println(people)
	sort.StableSortFunc(people, func(a, b Person) bool {
		return a.Age < b.Age
	})
	fmt.Println(people)

	// Output:
	// [Bob: 31 John: 42 Michael: 17 Jenny: 26 Alice: 31]
	// [Michael: 17 Jenny: 26 Bob: 31 Alice: 31 John: 42]
}

func ExampleNew() {
	s, err := sort.New(sort.WithMicroThreshold(8), sort.WithSampleSize(256))
	if err != nil {
		fmt.Println(err)
		return
	}
	data := []float32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	fmt.Println(s.PredictFloat32(data))
	s.Float32s(data)
	fmt.Println(data)

	_, err = sort.New(sort.WithMicroThreshold(2))
	fmt.Println(err)

	// Output:
	// radix
	// [0 1 2 3 4 5 6 7 8 9]
	// sort: micro-threshold must be at least 4: got 2
}
