package foldeq_test

import (
	"fmt"

	foldeq "go.foldeq.dev/pkg"
)

func ExampleCompiler() {
	res, err := foldeq.NewCompiler().Compile("(2 + 3) * x = 2^10 - 3 - 5")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Parsed)
	fmt.Println(res)
	// Output:
	// 2 + 3 * x = 2 ^ 10 - 3 - 5
	// 5 * x = 1024 - -2
}

func ExampleParseStatement() {
	_, err := foldeq.ParseStatement("(2 + 3 = x")
	fmt.Println(err)
	// Output:
	// 8: expected ')', found '='
}
