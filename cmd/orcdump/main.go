// Command orcdump inspects ORC files: it lists a file's stripes or dumps one
// column's decoded values.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newOrcdumpApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "orcdump: %v\n", err)
		os.Exit(1)
	}
}
