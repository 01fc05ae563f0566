// Command word_count counts word occurrences in a text file.
//
// Usage: word_count [flags] <path>
//
// The report is printed and saved next to the input as <path>.results.txt.
package main

import (
	"os"
	"textreports/internal/cli"
	"time"
)

// start marks process start for the reported execution time.
var start = time.Now()

func main() {
	os.Exit(run())
}

func run() int {
	return cli.Execute(cli.WordCountProgram, start, os.Args[1:], os.Stdout, os.Stderr)
}
