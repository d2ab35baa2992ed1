package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/arr"
)

func ExampleMap() {
	tripled := arr.Map([]int{1, 2, 3}, func(n, _ int, _ []int) int { return n * 3 })
	fmt.Println(tripled)
	// Output: [3 6 9]
}

func ExampleReduce() {
	sum := arr.Reduce([]int{1, 2, 3}, func(memo, n, _ int, _ []int) int { return memo + n }, 0)
	fmt.Println(sum)
	// Output: 6
}

func ExamplePartition() {
	odd, even := arr.Partition([]int{0, 1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	fmt.Println(odd, even)
	// Output: [1 3 5] [0 2 4]
}

func ExampleFlatten() {
	fmt.Println(arr.Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}}, false))
	fmt.Println(arr.Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}}, true))
	// Output:
	// [1 2 3 4]
	// [1 2 3 [[4]]]
}

func ExampleUniqSorted() {
	fmt.Println(arr.UniqSorted([]int{1, 1, 2, 3, 3, 4}))
	// Output: [1 2 3 4]
}

func ExampleSortedIndex() {
	fmt.Println(arr.SortedIndex([]int{10, 20, 30, 40, 50}, 35))
	// Output: 3
}

func ExampleZip() {
	for _, row := range arr.Zip([]any{"moe", "larry"}, []any{30, 40}) {
		fmt.Println(row)
	}
	// Output:
	// [moe 30]
	// [larry 40]
}

func ExampleRange() {
	r, _ := arr.Range(0, 30, 5)
	fmt.Println(r)
	// Output: [0 5 10 15 20 25]
}
