package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ning0612/fspreview/internal/format"
)

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size BYTES...",
		Short: "Print the size label for byte counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid byte count %q: %w", arg, err)
				}
				if n < 0 {
					return fmt.Errorf("byte count must be non-negative, got %d", n)
				}
				fmt.Fprintln(cmd.OutOrStdout(), format.HumanReadableFileSize(n))
			}
			return nil
		},
	}
}
