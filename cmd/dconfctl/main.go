// FILE: lixenwraith/dconf/cmd/dconfctl/main.go

// Command dconfctl reads, writes, lists and snapshots dconf keys.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
