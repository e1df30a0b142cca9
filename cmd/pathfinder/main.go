// main is the entry point for the pathfinder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pathfinder-ke/pathfinder/cmd"
	"github.com/pathfinder-ke/pathfinder/internal/runstore"
)

func main() {
	err := cmd.Execute()

	// Not deferred: os.Exit would skip it.
	runstore.CloseRunStore()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
