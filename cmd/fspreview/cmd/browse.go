package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ning0612/fspreview/internal/adapter"
	"github.com/Ning0612/fspreview/internal/adapter/local"
	"github.com/Ning0612/fspreview/internal/logger"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [DIR]",
		Short: "List a local folder with icons and size labels",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			var browser adapter.Browser
			browser, err = local.New(absDir)
			if err != nil {
				return fmt.Errorf("open %s: %w", dir, err)
			}
			defer browser.Close()

			items, err := browser.List(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("list %s: %w", dir, err)
			}

			listing, err := a.builder.BuildListing(filepath.ToSlash(absDir), items)
			if err != nil {
				return err
			}

			logger.Get().Debug("folder listed", "path", absDir, "items", len(items))
			return a.renderer.RenderListing(cmd.OutOrStdout(), listing)
		},
	}
}
