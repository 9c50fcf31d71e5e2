// Smoke test for the avl package: inserts a handful of values,
// exercises every query, and dumps the tree.
package main

import (
	"fmt"
	"os"

	"go.lepak.sg/avltree/avl"
)

func main() {
	tr, err := avl.New(func(a, b int) int {
		return a - b
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating tree:", err)
		os.Exit(1)
	}

	values := []int{5, 3, 8, 1, 4, 7, 2, 6}
	fmt.Println("inserting:", values)

	for _, v := range values {
		if _, _, err := tr.Put(v); err != nil {
			fmt.Fprintln(os.Stderr, "put:", err)
			os.Exit(1)
		}
	}

	fmt.Println("tree:")
	fmt.Print(tr.String())

	if err := tr.Check(); err != nil {
		fmt.Fprintln(os.Stderr, "check:", err)
		os.Exit(1)
	}

	small, _ := tr.GetSmallest()
	great, _ := tr.GetGreatest()
	fmt.Println("smallest:", small, "greatest:", great)

	for _, k := range []int{0, 4, 9} {
		report(tr, k)
	}

	fmt.Println("deleting 5 (the root)")
	if _, err := tr.Delete(5); err != nil {
		fmt.Fprintln(os.Stderr, "delete:", err)
		os.Exit(1)
	}

	fmt.Println("tree:")
	fmt.Print(tr.String())

	if err := tr.Check(); err != nil {
		fmt.Fprintln(os.Stderr, "check after delete:", err)
		os.Exit(1)
	}

	n := 0
	tr.Clear(func(int) { n++ })
	fmt.Println("cleared", n, "values")
}

func report(tr *avl.Tree[int], k int) {
	fmt.Printf("around %d:", k)

	if v, ok := tr.GetLessThan(k); ok {
		fmt.Printf(" lt=%d", v)
	}
	if v, ok := tr.GetLessOrEqual(k); ok {
		fmt.Printf(" le=%d", v)
	}
	if v, ok := tr.Get(k); ok {
		fmt.Printf(" eq=%d", v)
	}
	if v, ok := tr.GetGreaterOrEqual(k); ok {
		fmt.Printf(" ge=%d", v)
	}
	if v, ok := tr.GetGreaterThan(k); ok {
		fmt.Printf(" gt=%d", v)
	}

	fmt.Println()
}
