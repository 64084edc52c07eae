package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vmvec/pinned"
)

var (
	infoElems int
	infoBytes int
	infoPages int
)

func init() {
	cmd := newInfoCmd()
	cmd.Flags().IntVar(&infoElems, "elems", 0, "Size spec in uint64 elements")
	cmd.Flags().IntVar(&infoBytes, "bytes", 0, "Size spec in bytes")
	cmd.Flags().IntVar(&infoPages, "pages", 0, "Size spec in pages")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the page-rounded geometry for a size spec",
		Long: `The info command normalizes a size spec (given in exactly one of
elements, bytes, or pages) the same way vector construction does and
prints the resulting reservation geometry for uint64 elements.

Example:
  pinctl info --elems 12345
  pinctl info --bytes 1000000
  pinctl info --pages 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

func runInfo() error {
	var spec pinned.SizeSpec
	switch {
	case infoElems > 0 && infoBytes == 0 && infoPages == 0:
		spec = pinned.Elems(infoElems)
	case infoBytes > 0 && infoElems == 0 && infoPages == 0:
		spec = pinned.Bytes(infoBytes)
	case infoPages > 0 && infoElems == 0 && infoBytes == 0:
		spec = pinned.Pages(infoPages)
	default:
		return fmt.Errorf("exactly one of --elems, --bytes, --pages is required")
	}

	v, err := pinned.New[uint64](spec)
	if err != nil {
		return err
	}
	defer v.Close()

	page := v.PageSize()
	fmt.Printf("spec:       %s\n", spec)
	fmt.Printf("page size:  %d\n", page)
	fmt.Printf("reserved:   %d bytes (%d pages)\n", v.MaxLen()*8, v.MaxLen()*8/page)
	fmt.Printf("max len:    %d uint64 elements\n", v.MaxLen())
	fmt.Printf("committed:  %d bytes\n", v.Cap()*8)
	return nil
}
