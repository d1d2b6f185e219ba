package vntone_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/vntone"
)

func ExampleString() {
	fmt.Printf("%+q\n", vntone.String("Vi\u1ec7t", false))
	fmt.Printf("%+q\n", vntone.String("c\u00e1", false))
	fmt.Printf("%+q\n", vntone.String("c\u00e1", true))
	// Output: "Vi\u00ea\u0323t"
	// "c\u00e1"
	// "ca\u0301"
}

func ExampleDecomposer() {
	d := vntone.NewDecomposer(strings.NewReader("\u1ea0"), true)
	for {
		r, ok := d.Next()
		if !ok {
			break
		}
		fmt.Printf("%U\n", r)
	}
	// Output: U+0041
	// U+0323
}
