// Command gen_rulesheet scrapes a bundled rules-reference HTML page and
// prints its card name/description rows as tab-separated text, for a
// maintainer to diff against internal/catalogue's built-in descriptions
// after a rulebook update.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kevlar-tabletop/citadels/internal/lobby/rulesheet"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Usage: gen_rulesheet <rules_page.html>")
		os.Exit(1)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	entries, err := rulesheet.Parse(string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rules page: %v\n", err)
		os.Exit(1)
	}

	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.Name, e.Description)
	}
}
