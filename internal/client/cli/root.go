package cli

import (
	"github.com/izm4457/password-manager/internal/buildinfo"
	"github.com/izm4457/password-manager/internal/client/config"
	"github.com/izm4457/password-manager/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pwimport command tree. Configuration is loaded and
// the logger built once, before any subcommand runs.
func NewRootCmd() *cobra.Command {
	var (
		app   *App
		flush = func() {}
	)

	root := &cobra.Command{
		Use:           "pwimport",
		Short:         "Import passwords from CSV exports into an encrypted store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, f, err := logging.New(cfg.LogBackend, cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			flush = f
			app = NewApp(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			flush()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Create an empty password store",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Init(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored services and usernames",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.List(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
				return nil
			},
		},
		newImportCmd(func() *App { return app }),
		newPreviewCmd(func() *App { return app }),
	)

	return root
}

func newImportCmd(app func() *App) *cobra.Command {
	var opts ImportOptions

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a CSV export, reviewing the column mapping first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Import(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "commit without the interactive review")
	cmd.Flags().StringArrayVar(&opts.Mappings, "map", nil, "override the detected mapping, e.g. --map password=3 (repeatable)")
	return cmd
}

func newPreviewCmd(app func() *App) *cobra.Command {
	var opts ImportOptions

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Show the detected column mapping and a preview without importing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Preview(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.Mappings, "map", nil, "override the detected mapping, e.g. --map password=3 (repeatable)")
	return cmd
}
