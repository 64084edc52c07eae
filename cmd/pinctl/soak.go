package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vmvec/pinned"
)

var (
	soakPages int
	soakElems int
)

func init() {
	cmd := newSoakCmd()
	cmd.Flags().IntVar(&soakPages, "pages", 1024, "Pages of address space to reserve")
	cmd.Flags().IntVar(&soakElems, "elems", 0, "Elements to append (default: fill the reservation)")
	rootCmd.AddCommand(cmd)
}

func newSoakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "soak",
		Short: "Append uint64 elements through a reservation and report growth",
		Long: `The soak command reserves address space up front, appends one element
at a time, and reports every committed-capacity change along with the
address of the first element, demonstrating that growth never moves
anything.

Example:
  pinctl soak --pages 4096
  pinctl soak --pages 16 --elems 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSoak()
		},
	}
}

func runSoak() error {
	v, err := pinned.New[uint64](pinned.Pages(soakPages))
	if err != nil {
		return err
	}
	defer v.Close()

	total := soakElems
	if total <= 0 || total > v.MaxLen() {
		total = v.MaxLen()
	}
	if total == 0 {
		return fmt.Errorf("nothing to do: reservation holds zero elements")
	}

	fmt.Printf("page size:  %d\n", v.PageSize())
	fmt.Printf("reserved:   %d pages, max %d elements\n", soakPages, v.MaxLen())
	fmt.Printf("appending:  %d elements\n\n", total)

	start := time.Now()
	lastCap := -1
	var first *uint64
	for i := 0; i < total; i++ {
		if err := v.Append(uint64(i)); err != nil {
			return fmt.Errorf("append %d: %w", i, err)
		}
		if i == 0 {
			first = v.At(0)
		}
		if v.Cap() != lastCap {
			lastCap = v.Cap()
			fmt.Printf("  len=%-12d cap=%-12d first=%p\n", v.Len(), v.Cap(), v.At(0))
		}
	}
	elapsed := time.Since(start)

	if first != v.At(0) {
		return fmt.Errorf("first element moved: %p -> %p", first, v.At(0))
	}
	fmt.Printf("\n%d elements in %s (%.0f/s), first element never moved\n",
		total, elapsed, float64(total)/elapsed.Seconds())
	return nil
}
