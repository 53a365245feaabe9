// Package cmd implements the fspreview command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ning0612/fspreview/internal/config"
	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/icon"
	"github.com/Ning0612/fspreview/internal/logger"
	"github.com/Ning0612/fspreview/internal/preview"
	"github.com/Ning0612/fspreview/internal/style"
)

type rootOptions struct {
	configPath string
	platform   string
	logLevel   string
	logFormat  string
	width      int
}

// app holds what every subcommand needs, built once before the command runs
type app struct {
	cfg      *config.Config
	icons    *icon.Resolver
	builder  *preview.Builder
	renderer preview.TextRenderer
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:           "fspreview",
		Short:         "Preview files and browse folders the way the file browser shows them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: search ./config.yaml, ~/.config/fspreview)")
	flags.StringVar(&opts.platform, "platform", "", "platform to render for: desktop or mobile")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flags.IntVar(&opts.width, "width", preview.DefaultWidth, "text width of rendered output")

	root.AddCommand(
		newSizeCmd(),
		newIconCmd(a),
		newPreviewCmd(a),
		newBrowseCmd(a),
		newCatalogCmd(a),
		newHistoryCmd(a),
	)
	return root
}

func (a *app) setup(opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.platform != "" {
		p, err := domain.ParsePlatform(opts.platform)
		if err != nil {
			return err
		}
		cfg.Platform = p
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return err
	}

	icons, err := icon.NewResolver(cfg.Platform)
	if err != nil {
		return err
	}
	theme, err := style.Default(cfg.Platform)
	if err != nil {
		return err
	}
	builder, err := preview.NewBuilder(icons, theme)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.icons = icons
	a.builder = builder
	a.renderer = preview.TextRenderer{Width: opts.width}

	logger.Get().Debug("configured", "platform", cfg.Platform, "data_dir", cfg.DataDir)
	return nil
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return run(NewRootCmd())
}

func run(root *cobra.Command) int {
	defer logger.Shutdown()

	if err := root.Execute(); err != nil {
		logger.Get().Error("command failed", "error", err)
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
