package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ning0612/fspreview/internal/domain"
)

func newIconCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:       "icon KIND",
		Short:     "Print the icon identifier for a path kind (file, folder, symlink)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"file", "folder", "symlink"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParsePathKind(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("size") {
				size = a.cfg.IconSize
			}
			t, err := a.icons.Resolve(kind, size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "icon size in pixels (default from config, else 24)")
	return cmd
}
