package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vmvec/vm"
)

func init() {
	rootCmd.AddCommand(newPagesizeCmd())
}

func newPagesizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pagesize",
		Short: "Print the commit granularity used for rounding",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(vm.OS().PageSize())
		},
	}
}
