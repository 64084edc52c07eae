package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pinctl",
	Short: "Exercise and inspect virtual-memory-backed vectors",
	Long: `pinctl is a small workbench for the vmvec library. It reports the
page geometry the library will use on this machine and runs soak
workloads that demonstrate reservation, incremental commit, and
pointer stability under growth.`,
	Version: "0.1.0",
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}
