package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ning0612/fspreview/internal/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	var (
		list   bool
		export bool
	)

	cmd := &cobra.Command{
		Use:   "catalog [STORY]",
		Short: "Render the sample stories (all of them, or one by Group/Name id)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Default(a.builder, a.renderer)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case list:
				for _, s := range c.Stories() {
					fmt.Fprintln(out, s.ID())
				}
				return nil
			case export:
				return c.Export(out)
			case len(args) == 1:
				return c.Render(out, args[0])
			default:
				return c.RenderAll(out)
			}
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list story ids")
	cmd.Flags().BoolVar(&export, "export", false, "write story inputs as YAML")
	cmd.MarkFlagsMutuallyExclusive("list", "export")
	return cmd
}
