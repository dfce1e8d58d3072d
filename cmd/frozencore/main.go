// SPDX-License-Identifier: MIT

// Command frozencore inspects frozen-core rules and builds active orbital
// masks from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
