// Command mathsets computes the intersection of math sets read from a data file and, optionally,
// the affiliation of a point to that intersection.
package main

import (
	"fmt"
	"io"
	"os"
)

var (
	osExiter           = os.Exit
	osErr    io.Writer = os.Stderr
)

func main() {
	err := run(os.Args, os.Stdout, osErr)
	if err != nil {
		fmt.Fprintln(osErr, "Error!", err)
		osExiter(1)
		return
	}
}
