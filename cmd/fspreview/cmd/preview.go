package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ning0612/fspreview/internal/adapter/local"
	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/logger"
	"github.com/Ning0612/fspreview/internal/state"
)

func newPreviewCmd(a *app) *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "preview PATH",
		Short: "Render the preview pane for a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			browser, err := local.New(filepath.Dir(absPath))
			if err != nil {
				return fmt.Errorf("open %s: %w", filepath.Dir(absPath), err)
			}
			defer browser.Close()

			meta, err := browser.Stat(cmd.Context(), filepath.Base(absPath))
			if err != nil {
				return fmt.Errorf("stat %s: %w", args[0], err)
			}

			displayPath := filepath.ToSlash(absPath)
			p, err := a.builder.Build(displayPath, meta)
			if err != nil {
				return err
			}
			if err := a.renderer.Render(cmd.OutOrStdout(), p); err != nil {
				return err
			}

			log := logger.With("cmd", "preview")
			log.Info("preview rendered", "path", displayPath, "kind", meta.Kind, "size", p.SizeLabel)

			if noHistory {
				return nil
			}
			if err := a.recordView(displayPath, meta.Kind, meta.Size, p.SizeLabel, string(p.Icon)); err != nil {
				// history is best effort; the preview was already shown
				log.Warn("failed to record view", "path", displayPath, "error", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the preview in the history")
	return cmd
}

func (a *app) openState() (*state.Manager, error) {
	return state.NewManager(a.cfg.DataDir)
}

func (a *app) recordView(path string, kind domain.PathKind, size int64, sizeLabel, iconID string) error {
	mgr, err := a.openState()
	if err != nil {
		return err
	}
	defer mgr.Close()

	record := state.ViewRecord{
		Path:      path,
		Kind:      kind,
		Size:      size,
		SizeLabel: sizeLabel,
		Icon:      iconID,
		ViewedAt:  time.Now(),
	}
	return mgr.RecordView(record)
}
