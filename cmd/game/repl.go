package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/text-adventure/internal/engine"
)

// runPlain is the line-oriented fallback for terminals without TUI support:
// read one command per line, print the result, repeat until quit or EOF.
func runPlain(st *engine.State) error {
	title := st.World().Title + "!"
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", len(title)))
	fmt.Println()
	fmt.Println(`(Type "help" for commands.)`)
	fmt.Println()
	fmt.Println(st.DescribeLocation())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println()
			fmt.Println(engine.Farewell)
			return scanner.Err()
		}
		out, quit := engine.Dispatch(st, scanner.Text())
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			return nil
		}
	}
}
